package store

import "github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"

// Index is a hash lookup over records keyed by external transaction id, the
// constant-time counterpart to Scan. The memory driver answers external-id
// lookups from one of these.
type Index map[string]entity.Transaction

// BuildIndex indexes txs by transaction id. Later records win on duplicate
// ids, matching the last-write behavior of a rebuilt map.
func BuildIndex(txs []entity.Transaction) Index {
	ix := make(Index, len(txs))
	for _, tx := range txs {
		ix[tx.TransactionID] = tx
	}
	return ix
}

func (ix Index) Lookup(transactionID string) (entity.Transaction, bool) {
	tx, ok := ix[transactionID]
	return tx, ok
}

// Scan walks records in order until the transaction id matches: the linear
// alternative used by drivers that keep records as a flat sequence.
func Scan(txs []entity.Transaction, transactionID string) (entity.Transaction, bool) {
	for _, tx := range txs {
		if tx.TransactionID == transactionID {
			return tx, true
		}
	}
	return entity.Transaction{}, false
}

// nextInternalID continues the sequence after the highest assigned id, so
// API-created records never collide with imported ones.
func nextInternalID(txs []entity.Transaction) int64 {
	var max int64
	for _, tx := range txs {
		if tx.InternalID > max {
			max = tx.InternalID
		}
	}
	return max + 1
}
