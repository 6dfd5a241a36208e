package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/parse"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgerror"
)

// File persists records as one JSON array on disk, rewritten on every
// mutation. Records are held in memory ordered by internal id; external-id
// lookups use a linear Scan, matching the flat layout of the file.
type File struct {
	mu   sync.Mutex
	path string
	txs  []entity.Transaction
}

// OpenFile loads the store at path. A missing file is an empty store (first
// run); a file that exists but does not decode is an error.
func OpenFile(path string) (*File, error) {
	s := &File{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open transaction file: %w", err)
	}

	if err := json.Unmarshal(data, &s.txs); err != nil {
		return nil, fmt.Errorf("decode transaction file: %w", err)
	}

	return s, nil
}

func (s *File) ReplaceAll(ctx context.Context, txs []entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.txs
	s.txs = slices.Clone(txs)
	if err := s.persist(); err != nil {
		s.txs = prev
		return pkgerror.NewServer(err)
	}
	return nil
}

func (s *File) List(ctx context.Context, filter usecase.TxFilter, page, pageSize int) ([]entity.Transaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	start := (page - 1) * pageSize
	end := start + pageSize
	items := make([]entity.Transaction, 0, pageSize)

	for _, tx := range s.txs {
		if !filter.Matches(tx) {
			continue
		}
		if total >= start && total < end {
			items = append(items, tx)
		}
		total++
	}

	return items, total, nil
}

func (s *File) Get(ctx context.Context, internalID int64) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(internalID); i >= 0 {
		return s.txs[i], nil
	}
	return entity.Transaction{}, pkgerror.ErrNotFound
}

func (s *File) GetByTransactionID(ctx context.Context, transactionID string) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx, ok := Scan(s.txs, transactionID); ok {
		return tx, nil
	}
	return entity.Transaction{}, pkgerror.ErrNotFound
}

func (s *File) Create(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.InternalID = nextInternalID(s.txs)
	if tx.TransactionID == "" {
		tx.TransactionID = parse.LocalID(tx.InternalID)
	}

	s.txs = append(s.txs, tx)
	if err := s.persist(); err != nil {
		s.txs = s.txs[:len(s.txs)-1]
		return entity.Transaction{}, pkgerror.NewServer(err)
	}

	return tx, nil
}

func (s *File) Update(ctx context.Context, internalID int64, fn func(tx *entity.Transaction)) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(internalID)
	if i < 0 {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}

	prev := s.txs[i]
	tx := prev
	fn(&tx)
	tx.InternalID = internalID

	s.txs[i] = tx
	if err := s.persist(); err != nil {
		s.txs[i] = prev
		return entity.Transaction{}, pkgerror.NewServer(err)
	}

	return tx, nil
}

func (s *File) Delete(ctx context.Context, internalID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(internalID)
	if i < 0 {
		return pkgerror.ErrNotFound
	}

	prev := s.txs
	s.txs = append(slices.Clone(s.txs[:i]), s.txs[i+1:]...)
	if err := s.persist(); err != nil {
		s.txs = prev
		return pkgerror.NewServer(err)
	}

	return nil
}

func (s *File) find(internalID int64) int {
	for i, tx := range s.txs {
		if tx.InternalID == internalID {
			return i
		}
	}
	return -1
}

// persist rewrites the whole file. Write goes through a temp file and rename
// so a crash mid-write cannot truncate the previous contents.
func (s *File) persist() error {
	data, err := json.MarshalIndent(s.txs, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
