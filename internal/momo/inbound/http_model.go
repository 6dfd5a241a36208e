package inbound

import (
	"net/http"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

type Transaction struct {
	ID            int64                  `json:"id"`
	TransactionID string                 `json:"transaction_id"`
	Type          entity.TransactionType `json:"transaction_type"`
	Amount        *int64                 `json:"amount"`
	Fee           *int64                 `json:"fee"`
	Balance       *int64                 `json:"balance"`
	Sender        *entity.Party          `json:"sender"`
	Receiver      *entity.Party          `json:"receiver"`
	Timestamp     *string                `json:"timestamp"`
	Raw           string                 `json:"raw"`
}

func toHTTPTransaction(tx entity.Transaction) Transaction {
	return Transaction{
		ID:            tx.InternalID,
		TransactionID: tx.TransactionID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Fee:           tx.Fee,
		Balance:       tx.Balance,
		Sender:        tx.Sender,
		Receiver:      tx.Receiver,
		Timestamp:     tx.Timestamp,
		Raw:           tx.Raw,
	}
}

type ImportResponse struct {
	Count    int `json:"count"`
	Reviewed int `json:"reviewed"`
}

func (ImportResponse) StatusCode() int {
	return http.StatusCreated
}

func (ImportResponse) Message() string {
	return "import complete"
}

type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	page         int
	pageSize     int
	total        int
}

func (r ListTransactionsResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}

type TransactionResponse struct {
	Transaction
}

type CreatedTransactionResponse struct {
	Transaction
}

func (CreatedTransactionResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreatedTransactionResponse) Message() string {
	return "transaction created"
}

// transactionRequest is the JSON body for create and update. On update,
// omitted fields leave the stored value untouched.
type transactionRequest struct {
	TransactionID string                 `json:"transaction_id"`
	Type          entity.TransactionType `json:"transaction_type"`
	Amount        *int64                 `json:"amount"`
	Fee           *int64                 `json:"fee"`
	Balance       *int64                 `json:"balance"`
	Sender        *entity.Party          `json:"sender"`
	Receiver      *entity.Party          `json:"receiver"`
	Timestamp     *string                `json:"timestamp"`
	Raw           string                 `json:"raw"`
}
