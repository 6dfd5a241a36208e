package usecase

import (
	"slices"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

// TxFilter narrows listings to specific transaction types. Empty means all.
type TxFilter struct {
	Types []entity.TransactionType
}

func (f TxFilter) Matches(tx entity.Transaction) bool {
	if len(f.Types) == 0 {
		return true
	}
	return slices.Contains(f.Types, tx.Type)
}

type ImportResult struct {
	Count    int
	Reviewed int // records that fell through to the keyword fallback as "other"
}

type ListResult struct {
	Transactions []entity.Transaction
	Page         int
	PageSize     int
	Total        int
}

// CreateInput carries the caller-supplied fields of a new record. The store
// assigns the internal id and synthesizes a transaction id when absent.
type CreateInput struct {
	TransactionID string
	Type          entity.TransactionType
	Amount        *int64
	Fee           *int64
	Balance       *int64
	Sender        *entity.Party
	Receiver      *entity.Party
	Timestamp     *string
	Raw           string
}

// UpdateInput lists the mutable fields of a record. Nil fields are left
// untouched; identity fields (internal id, raw body, source attributes) are
// never updatable.
type UpdateInput struct {
	Type      entity.TransactionType
	Amount    *int64
	Fee       *int64
	Balance   *int64
	Sender    *entity.Party
	Receiver  *entity.Party
	Timestamp *string
}
