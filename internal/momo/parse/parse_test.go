package parse

import (
	"reflect"
	"testing"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

func sampleMessages() []entity.RawMessage {
	return []entity.RawMessage{
		{
			entity.AttrBody: "You have received 2000 RWF from Jane Smith (*********013) on your mobile money account at 2024-05-10 16:30:51. Your new balance: 2000 RWF. Financial Transaction Id: 76662021700.",
			entity.AttrDate: "1715351451000",
		},
		{
			entity.AttrBody:         "TxId: 73214484437. Your payment of 1,000 RWF to Jane Smith 12845 has been completed at 2024-05-10 16:31:39. Your new balance: 1,000 RWF. Fee was 0 RWF.",
			entity.AttrReadableDate: "10 May 2024 4:31:39 PM",
		},
		{
			entity.AttrBody: "no monetary content at all",
		},
	}
}

func TestParseAssignsContiguousInternalIDs(t *testing.T) {
	t.Parallel()

	got := Parse(sampleMessages())
	if len(got) != 3 {
		t.Fatalf("Parse() returned %d records, want 3", len(got))
	}

	for i, tx := range got {
		if tx.InternalID != int64(i+1) {
			t.Fatalf("Parse() record %d internal id = %d, want %d", i, tx.InternalID, i+1)
		}
		if tx.TransactionID == "" {
			t.Fatalf("Parse() record %d has empty transaction id", i)
		}
		if !tx.Type.Valid() {
			t.Fatalf("Parse() record %d type = %q, not a defined variant", i, tx.Type)
		}
	}
}

func TestParseExtractsStructuredFields(t *testing.T) {
	t.Parallel()

	got := Parse(sampleMessages())

	recv := got[0]
	if recv.Type != entity.TxReceive {
		t.Fatalf("received record type = %q, want receive", recv.Type)
	}
	if recv.TransactionID != "76662021700" {
		t.Fatalf("received record transaction id = %q", recv.TransactionID)
	}
	if recv.Amount == nil || *recv.Amount != 2000 {
		t.Fatalf("received record amount = %v, want 2000", recv.Amount)
	}
	if recv.Sender == nil || recv.Sender.Name != "Jane Smith" {
		t.Fatalf("received record sender = %+v", recv.Sender)
	}
	if recv.Timestamp == nil || *recv.Timestamp != "2024-05-10T14:30:51Z" {
		t.Fatalf("received record timestamp = %v", recv.Timestamp)
	}

	pay := got[1]
	if pay.Type != entity.TxPayment {
		t.Fatalf("payment record type = %q, want payment", pay.Type)
	}
	if pay.TransactionID != "73214484437" {
		t.Fatalf("payment record transaction id = %q", pay.TransactionID)
	}
	if pay.Fee == nil || *pay.Fee != 0 {
		t.Fatalf("payment record fee = %v, want 0", pay.Fee)
	}
	if pay.Balance == nil || *pay.Balance != 1000 {
		t.Fatalf("payment record balance = %v, want 1000", pay.Balance)
	}
	if pay.Timestamp == nil || *pay.Timestamp != "10 May 2024 4:31:39 PM" {
		t.Fatalf("payment record timestamp = %v, want readable date verbatim", pay.Timestamp)
	}
}

func TestParseSynthesizesLocalID(t *testing.T) {
	t.Parallel()

	messages := make([]entity.RawMessage, 7)
	for i := range messages {
		messages[i] = entity.RawMessage{entity.AttrBody: "nothing to see"}
	}

	got := Parse(messages)
	if got[6].TransactionID != "local-7" {
		t.Fatalf("Parse() record 7 transaction id = %q, want local-7", got[6].TransactionID)
	}
	if got[6].Type != entity.TxOther {
		t.Fatalf("Parse() record 7 type = %q, want other", got[6].Type)
	}
}

func TestParseKeywordFallbackReceive(t *testing.T) {
	t.Parallel()

	got := Parse([]entity.RawMessage{{entity.AttrBody: "Funds received, details to follow"}})
	if got[0].Type != entity.TxReceive {
		t.Fatalf("Parse() fallback type = %q, want receive", got[0].Type)
	}
}

func TestParseDepositOverridesPayment(t *testing.T) {
	t.Parallel()

	body := "TxId: 55. Your payment of 600 RWF to Acme has been completed via bank deposit."
	got := Parse([]entity.RawMessage{{entity.AttrBody: body}})

	if got[0].Type != entity.TxDeposit {
		t.Fatalf("Parse() type = %q, want deposit", got[0].Type)
	}
}

func TestParseIdempotent(t *testing.T) {
	t.Parallel()

	messages := sampleMessages()
	first := Parse(messages)
	second := Parse(messages)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("Parse() is not idempotent over the same input")
	}
}

func TestParsePreservesRawAndAttributes(t *testing.T) {
	t.Parallel()

	msg := entity.RawMessage{
		entity.AttrBody: "hello",
		"protocol":      "0",
		"address":       "M-Money",
	}

	got := Parse([]entity.RawMessage{msg})
	if got[0].Raw != "hello" {
		t.Fatalf("Parse() raw = %q", got[0].Raw)
	}
	if got[0].SourceAttrs["address"] != "M-Money" || got[0].SourceAttrs["protocol"] != "0" {
		t.Fatalf("Parse() source attributes = %#v", got[0].SourceAttrs)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Parse(nil); len(got) != 0 {
		t.Fatalf("Parse(nil) returned %d records", len(got))
	}
}
