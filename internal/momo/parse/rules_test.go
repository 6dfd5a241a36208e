package parse

import (
	"testing"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

func TestMatchReceived(t *testing.T) {
	t.Parallel()

	sig, ok := matchReceived("You have received 2,000 RWF from Jane Smith (*********013) on your mobile money account")
	if !ok {
		t.Fatal("matchReceived() expected a match")
	}
	if sig.txType != entity.TxReceive {
		t.Fatalf("matchReceived() type = %q, want receive", sig.txType)
	}
	if sig.amount == nil || *sig.amount != 2000 {
		t.Fatalf("matchReceived() amount = %v, want 2000", sig.amount)
	}
	if sig.sender == nil || sig.sender.Name != "Jane Smith" {
		t.Fatalf("matchReceived() sender = %+v, want Jane Smith", sig.sender)
	}
	if sig.sender.Phone != "*********013" {
		t.Fatalf("matchReceived() phone = %q", sig.sender.Phone)
	}
	if sig.receiver != nil {
		t.Fatalf("matchReceived() receiver = %+v, want nil", sig.receiver)
	}
}

func TestMatchReceivedWithoutPhone(t *testing.T) {
	t.Parallel()

	sig, ok := matchReceived("You have received 500 RWF from Alex Doe on your account")
	if !ok {
		t.Fatal("matchReceived() expected a match")
	}
	if sig.sender == nil || sig.sender.Phone != "" {
		t.Fatalf("matchReceived() sender = %+v, want name only", sig.sender)
	}
}

func TestMatchPayment(t *testing.T) {
	t.Parallel()

	sig, ok := matchPayment("TxId: 73214484437. Your payment of 1,000 RWF to Jane Smith 12845 has been completed")
	if !ok {
		t.Fatal("matchPayment() expected a match")
	}
	if sig.txType != entity.TxPayment {
		t.Fatalf("matchPayment() type = %q, want payment", sig.txType)
	}
	if sig.externalID != "73214484437" {
		t.Fatalf("matchPayment() external id = %q", sig.externalID)
	}
	if sig.amount == nil || *sig.amount != 1000 {
		t.Fatalf("matchPayment() amount = %v, want 1000", sig.amount)
	}
	if sig.receiver == nil || sig.receiver.Phone != "" {
		t.Fatalf("matchPayment() receiver = %+v, want name without phone", sig.receiver)
	}
}

func TestMatchTransferOnlyClaimsUnsetType(t *testing.T) {
	t.Parallel()

	sig, ok := matchTransfer("10000 RWF transferred to Samuel Carter (250791666666) from 36521838 at 2024-01-01")
	if !ok {
		t.Fatal("matchTransfer() expected a match")
	}
	if !sig.typeWhenUnset {
		t.Fatal("matchTransfer() must not override an earlier type claim")
	}
	if sig.receiver == nil || sig.receiver.Name != "Samuel Carter" || sig.receiver.Phone != "250791666666" {
		t.Fatalf("matchTransfer() receiver = %+v", sig.receiver)
	}
}

func TestMatchDeposit(t *testing.T) {
	t.Parallel()

	if _, ok := matchDeposit("A BANK DEPOSIT of 40000 RWF has been added"); !ok {
		t.Fatal("matchDeposit() expected case-insensitive match")
	}
	if _, ok := matchDeposit("a cash deposit"); ok {
		t.Fatal("matchDeposit() matched without the bank deposit phrase")
	}
}

func TestApplyRulesPaymentReceiverBeatsTransfer(t *testing.T) {
	t.Parallel()

	// Matches both the payment and transfer patterns; payment runs first and
	// its receiver must survive.
	body := "TxId: 999. Your payment of 600 RWF to Samuel Carter (250791666666) has been completed"

	tx := entity.Transaction{}
	applyRules(body, &tx)

	if tx.Type != entity.TxPayment {
		t.Fatalf("applyRules() type = %q, want payment", tx.Type)
	}
	if tx.Receiver == nil || tx.Receiver.Phone != "" {
		t.Fatalf("applyRules() receiver = %+v, want payment-derived receiver without phone", tx.Receiver)
	}
}

func TestApplyRulesDepositOverridesEarlierClaim(t *testing.T) {
	t.Parallel()

	body := "TxId: 888. Your payment of 600 RWF to Acme Ltd completed via bank deposit"

	tx := entity.Transaction{}
	applyRules(body, &tx)

	if tx.Type != entity.TxDeposit {
		t.Fatalf("applyRules() type = %q, want deposit override", tx.Type)
	}
	if tx.Receiver == nil {
		t.Fatal("applyRules() payment receiver must survive the deposit override")
	}
}

func TestApplyRulesExternalIDKeptWhenAlreadySet(t *testing.T) {
	t.Parallel()

	tx := entity.Transaction{TransactionID: "pre-set"}
	applyRules("TxId: 42. Your payment of 1 RWF to Bob done", &tx)

	if tx.TransactionID != "pre-set" {
		t.Fatalf("applyRules() transaction id = %q, want pre-set kept", tx.TransactionID)
	}
}

func TestClassifyFallbackPriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		body string
		want entity.TransactionType
	}{
		{"funds were transferred and a deposit followed", entity.TxTransfer},
		{"a deposit and a payment", entity.TxDeposit},
		{"payment received", entity.TxPayment},
		{"you received something", entity.TxReceive},
		{"hello world", entity.TxOther},
	}

	for _, tc := range cases {
		if got := classifyFallback(tc.body); got != tc.want {
			t.Fatalf("classifyFallback(%q) = %q, want %q", tc.body, got, tc.want)
		}
	}
}
