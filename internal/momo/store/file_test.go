package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/usecase"
	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/pkg/pkgerror"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "transactions.json")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() err = %v", err)
	}

	if err := s.ReplaceAll(ctx, seedTxs()); err != nil {
		t.Fatalf("ReplaceAll() err = %v", err)
	}

	// A fresh handle must see what the first one persisted.
	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() reopen err = %v", err)
	}

	tx, err := reopened.Get(ctx, 2)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if tx.TransactionID != "ext-2" || tx.Type != entity.TxPayment {
		t.Fatalf("Get() after reload = %+v", tx)
	}
}

func TestFileStoreMutationsPersist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "transactions.json")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() err = %v", err)
	}
	if err := s.ReplaceAll(ctx, seedTxs()); err != nil {
		t.Fatalf("ReplaceAll() err = %v", err)
	}

	created, err := s.Create(ctx, entity.Transaction{Type: entity.TxDeposit})
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}
	if created.InternalID != 4 || created.TransactionID != "local-4" {
		t.Fatalf("Create() = %+v", created)
	}

	if _, err := s.Update(ctx, 1, func(tx *entity.Transaction) {
		tx.Type = entity.TxTransfer
	}); err != nil {
		t.Fatalf("Update() err = %v", err)
	}

	if err := s.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() reopen err = %v", err)
	}

	_, total, err := reopened.List(ctx, usecase.TxFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("List() err = %v", err)
	}
	if total != 3 {
		t.Fatalf("List() total = %d, want 3", total)
	}

	updated, err := reopened.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if updated.Type != entity.TxTransfer {
		t.Fatalf("Get() type = %q, want transfer persisted", updated.Type)
	}

	if _, err := reopened.Get(ctx, 2); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("Get() deleted err = %v", err)
	}
}

func TestFileStoreScanLookup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := OpenFile(filepath.Join(t.TempDir(), "tx.json"))
	if err != nil {
		t.Fatalf("OpenFile() err = %v", err)
	}
	if err := s.ReplaceAll(ctx, seedTxs()); err != nil {
		t.Fatalf("ReplaceAll() err = %v", err)
	}

	tx, err := s.GetByTransactionID(ctx, "ext-1")
	if err != nil {
		t.Fatalf("GetByTransactionID() err = %v", err)
	}
	if tx.InternalID != 1 {
		t.Fatalf("GetByTransactionID() = %+v", tx)
	}
}

func TestOpenFileMissingIsEmpty(t *testing.T) {
	t.Parallel()

	s, err := OpenFile(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("OpenFile() err = %v", err)
	}

	_, total, err := s.List(context.Background(), usecase.TxFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("List() err = %v", err)
	}
	if total != 0 {
		t.Fatalf("List() total = %d, want 0", total)
	}
}
