package entity

// TransactionType is the category assigned to a parsed notification.
//
// Values are lowercase because they travel verbatim into the JSON output
// consumed by downstream tooling.
type TransactionType string

const (
	TxReceive  TransactionType = "receive"
	TxPayment  TransactionType = "payment"
	TxTransfer TransactionType = "transfer"
	TxDeposit  TransactionType = "deposit"
	TxOther    TransactionType = "other"
)

// Valid reports whether t is one of the defined categories.
func (t TransactionType) Valid() bool {
	switch t {
	case TxReceive, TxPayment, TxTransfer, TxDeposit, TxOther:
		return true
	default:
		return false
	}
}
