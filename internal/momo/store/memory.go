package store

import (
	"context"
	"slices"
	"sync"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/parse"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgerror"
)

// Memory keeps records in a mutex-guarded map plus an external-id index.
// It is the default driver and the one integration tests run against.
type Memory struct {
	mu    sync.RWMutex
	txs   map[int64]entity.Transaction
	byExt Index
}

func NewMemory() *Memory {
	return &Memory{
		txs:   make(map[int64]entity.Transaction),
		byExt: make(Index),
	}
}

func (s *Memory) ReplaceAll(ctx context.Context, txs []entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txs = make(map[int64]entity.Transaction, len(txs))
	for _, tx := range txs {
		s.txs[tx.InternalID] = tx
	}
	s.byExt = BuildIndex(txs)

	return nil
}

func (s *Memory) List(ctx context.Context, filter usecase.TxFilter, page, pageSize int) ([]entity.Transaction, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.txs))
	for id := range s.txs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	total := 0
	start := (page - 1) * pageSize
	end := start + pageSize
	items := make([]entity.Transaction, 0, pageSize)

	for _, id := range ids {
		tx := s.txs[id]
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

func (s *Memory) Get(ctx context.Context, internalID int64) (entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[internalID]
	if !ok {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}
	return tx, nil
}

func (s *Memory) GetByTransactionID(ctx context.Context, transactionID string) (entity.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.byExt.Lookup(transactionID)
	if !ok {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}
	return tx, nil
}

func (s *Memory) Create(ctx context.Context, tx entity.Transaction) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]entity.Transaction, 0, len(s.txs))
	for _, existing := range s.txs {
		all = append(all, existing)
	}

	tx.InternalID = nextInternalID(all)
	if tx.TransactionID == "" {
		tx.TransactionID = parse.LocalID(tx.InternalID)
	}

	s.txs[tx.InternalID] = tx
	s.byExt[tx.TransactionID] = tx

	return tx, nil
}

func (s *Memory) Update(ctx context.Context, internalID int64, fn func(tx *entity.Transaction)) (entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.txs[internalID]
	if !ok {
		return entity.Transaction{}, pkgerror.ErrNotFound
	}

	fn(&tx)
	tx.InternalID = internalID // identity is not updatable

	s.txs[internalID] = tx
	s.byExt[tx.TransactionID] = tx

	return tx, nil
}

func (s *Memory) Delete(ctx context.Context, internalID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.txs[internalID]
	if !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.txs, internalID)
	delete(s.byExt, tx.TransactionID)

	return nil
}
