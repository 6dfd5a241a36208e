package store

import (
	"fmt"
	"testing"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

func TestBuildIndexAndLookup(t *testing.T) {
	t.Parallel()

	ix := BuildIndex(seedTxs())

	tx, ok := ix.Lookup("ext-2")
	if !ok || tx.InternalID != 2 {
		t.Fatalf("Lookup() = %+v ok = %v", tx, ok)
	}

	if _, ok := ix.Lookup("missing"); ok {
		t.Fatal("Lookup() matched a missing id")
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	txs := seedTxs()

	tx, ok := Scan(txs, "local-3")
	if !ok || tx.InternalID != 3 {
		t.Fatalf("Scan() = %+v ok = %v", tx, ok)
	}

	if _, ok := Scan(txs, "missing"); ok {
		t.Fatal("Scan() matched a missing id")
	}
}

func TestNextInternalID(t *testing.T) {
	t.Parallel()

	if got := nextInternalID(nil); got != 1 {
		t.Fatalf("nextInternalID(nil) = %d, want 1", got)
	}
	if got := nextInternalID(seedTxs()); got != 4 {
		t.Fatalf("nextInternalID() = %d, want 4", got)
	}
}

func benchTxs(n int) []entity.Transaction {
	txs := make([]entity.Transaction, n)
	for i := range txs {
		txs[i] = entity.Transaction{
			InternalID:    int64(i + 1),
			TransactionID: fmt.Sprintf("tx-%d", i+1),
			Type:          entity.TxOther,
		}
	}
	return txs
}

// The two benchmarks compare the linear scan against the keyed index on the
// same batch; lookups mix hits near the end of the sequence with misses.
func BenchmarkScan(b *testing.B) {
	txs := benchTxs(10000)
	ids := []string{"tx-9999", "tx-5000", "absent"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Scan(txs, ids[i%len(ids)])
	}
}

func BenchmarkIndexLookup(b *testing.B) {
	txs := benchTxs(10000)
	ix := BuildIndex(txs)
	ids := []string{"tx-9999", "tx-5000", "absent"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Lookup(ids[i%len(ids)])
	}
}
