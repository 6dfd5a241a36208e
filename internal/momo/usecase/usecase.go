package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/parse"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/source"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgerror"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkguid"
)

// Store is the persistence boundary for transaction records. All drivers
// keep records ordered by internal id.
type Store interface {
	ReplaceAll(ctx context.Context, txs []entity.Transaction) error
	List(ctx context.Context, filter TxFilter, page, pageSize int) ([]entity.Transaction, int, error)
	Get(ctx context.Context, internalID int64) (entity.Transaction, error)
	GetByTransactionID(ctx context.Context, transactionID string) (entity.Transaction, error)
	Create(ctx context.Context, tx entity.Transaction) (entity.Transaction, error)
	Update(ctx context.Context, internalID int64, fn func(tx *entity.Transaction)) (entity.Transaction, error)
	Delete(ctx context.Context, internalID int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.ReviewEvent) error
}

type Dependency struct {
	Store   Store
	Events  EventPublisher
	EventID pkguid.NumberID
}

type Usecase struct {
	store   Store
	events  EventPublisher
	eventID pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store:   dep.Store,
		events:  dep.Events,
		eventID: dep.EventID,
	}
}

// Import decodes an SMS backup, parses every message into a record and
// installs the batch as the new store contents. A source that cannot be read
// fails the whole call and leaves the store untouched; per-message extraction
// problems never do.
func (u *Usecase) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	messages, err := source.ReadMessages(r)
	if err != nil {
		return ImportResult{}, pkgerror.NewUnavailable(err)
	}
	return u.install(ctx, messages)
}

// ImportFile runs Import against a backup file on disk.
func (u *Usecase) ImportFile(ctx context.Context, path string) (ImportResult, error) {
	messages, err := source.ReadFile(path)
	if err != nil {
		return ImportResult{}, pkgerror.NewUnavailable(err)
	}
	return u.install(ctx, messages)
}

func (u *Usecase) install(ctx context.Context, messages []entity.RawMessage) (ImportResult, error) {
	if u.store == nil {
		return ImportResult{}, pkgerror.NewServer(errors.New("missing store dependency"))
	}

	txs := parse.Parse(messages)
	if err := u.store.ReplaceAll(ctx, txs); err != nil {
		return ImportResult{}, normalizeErr(err)
	}

	reviewed := 0
	for _, tx := range txs {
		if tx.Type != entity.TxOther {
			continue
		}
		reviewed++
		u.publishReview(ctx, tx)
	}

	slog.InfoContext(ctx, "import complete", "count", len(txs), "review", reviewed)

	return ImportResult{Count: len(txs), Reviewed: reviewed}, nil
}

func (u *Usecase) publishReview(ctx context.Context, tx entity.Transaction) {
	if u.events == nil || u.eventID == nil {
		return
	}

	event := entity.ReviewEvent{
		EventID:    u.eventID.Generate(),
		InternalID: tx.InternalID,
		Type:       tx.Type,
		Raw:        tx.Raw,
	}
	if err := u.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish review event", "internal_id", tx.InternalID, "error", err)
	}
}

func (u *Usecase) List(ctx context.Context, filter TxFilter, page, pageSize int) (ListResult, error) {
	if page < 1 || pageSize < 1 {
		return ListResult{}, pkgerror.NewInvalidInput(errors.New("invalid pagination"))
	}

	txs, total, err := u.store.List(ctx, filter, page, pageSize)
	if err != nil {
		return ListResult{}, mapStoreErr(err)
	}

	return ListResult{
		Transactions: txs,
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
	}, nil
}

func (u *Usecase) Get(ctx context.Context, internalID int64) (entity.Transaction, error) {
	if internalID < 1 {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("internal id must be positive"))
	}

	tx, err := u.store.Get(ctx, internalID)
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

// Lookup resolves a record by the external transaction id quoted in the
// message (or the synthesized local-N id).
func (u *Usecase) Lookup(ctx context.Context, transactionID string) (entity.Transaction, error) {
	if transactionID == "" {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("transaction_id is required"))
	}

	tx, err := u.store.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

func (u *Usecase) Create(ctx context.Context, input CreateInput) (entity.Transaction, error) {
	txType := input.Type
	if txType == "" {
		txType = entity.TxOther
	}
	if !txType.Valid() {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("invalid transaction type"))
	}

	tx, err := u.store.Create(ctx, entity.Transaction{
		TransactionID: input.TransactionID,
		Type:          txType,
		Amount:        input.Amount,
		Fee:           input.Fee,
		Balance:       input.Balance,
		Sender:        input.Sender,
		Receiver:      input.Receiver,
		Timestamp:     input.Timestamp,
		Raw:           input.Raw,
	})
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

func (u *Usecase) Update(ctx context.Context, internalID int64, input UpdateInput) (entity.Transaction, error) {
	if internalID < 1 {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("internal id must be positive"))
	}
	if input.Type != "" && !input.Type.Valid() {
		return entity.Transaction{}, pkgerror.NewInvalidInput(errors.New("invalid transaction type"))
	}

	tx, err := u.store.Update(ctx, internalID, func(tx *entity.Transaction) {
		if input.Type != "" {
			tx.Type = input.Type
		}
		if input.Amount != nil {
			tx.Amount = input.Amount
		}
		if input.Fee != nil {
			tx.Fee = input.Fee
		}
		if input.Balance != nil {
			tx.Balance = input.Balance
		}
		if input.Sender != nil {
			tx.Sender = input.Sender
		}
		if input.Receiver != nil {
			tx.Receiver = input.Receiver
		}
		if input.Timestamp != nil {
			tx.Timestamp = input.Timestamp
		}
	})
	if err != nil {
		return entity.Transaction{}, mapStoreErr(err)
	}
	return tx, nil
}

func (u *Usecase) Delete(ctx context.Context, internalID int64) error {
	if internalID < 1 {
		return pkgerror.NewInvalidInput(errors.New("internal id must be positive"))
	}

	if err := u.store.Delete(ctx, internalID); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("transaction not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
