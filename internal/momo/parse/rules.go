package parse

import (
	"regexp"
	"strings"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

var (
	receivedRe = regexp.MustCompile(`(?i)You have received\s+([0-9,]+)\s*RWF\s+from\s+([A-Za-z .\-]+)\s*\(?([+\d*]{6,})?\)?`)
	paymentRe  = regexp.MustCompile(`(?i)TxId:\s*([0-9A-Za-z\-]+).*payment of\s+([0-9,]+)\s*RWF\s+to\s+([A-Za-z .\-0-9]+)`)
	transferRe = regexp.MustCompile(`(?i)(?:transferred to|to)\s+([A-Za-z .\-]+)\s*\(?([+\d*]{6,})\)?`)
)

// signal is the partial outcome contributed by one structured rule: a type
// claim plus whatever fields the pattern captured.
type signal struct {
	txType        entity.TransactionType
	typeWhenUnset bool // claim the type only when no earlier rule did
	amount        *int64
	externalID    string
	sender        *entity.Party
	receiver      *entity.Party
}

type rule struct {
	name  string
	match func(body string) (signal, bool)
}

// rules are folded left-to-right over the draft record by applyRules. Order
// matters: payment's receiver beats transfer's, and deposit, evaluated last
// with no typeWhenUnset guard, overrides any earlier type claim.
var rules = []rule{
	{name: "received", match: matchReceived},
	{name: "payment", match: matchPayment},
	{name: "transfer", match: matchTransfer},
	{name: "deposit", match: matchDeposit},
}

func applyRules(body string, tx *entity.Transaction) {
	for _, r := range rules {
		sig, ok := r.match(body)
		if !ok {
			continue
		}

		if sig.txType != "" && (!sig.typeWhenUnset || tx.Type == "") {
			tx.Type = sig.txType
		}
		if sig.amount != nil {
			tx.Amount = sig.amount
		}
		if sig.externalID != "" && tx.TransactionID == "" {
			tx.TransactionID = sig.externalID
		}
		if sig.sender != nil && tx.Sender == nil {
			tx.Sender = sig.sender
		}
		if sig.receiver != nil && tx.Receiver == nil {
			tx.Receiver = sig.receiver
		}
	}
}

// matchReceived handles "You have received N RWF from NAME (PHONE)". The
// captured amount replaces the generic first-match amount when it parses.
func matchReceived(body string) (signal, bool) {
	m := receivedRe.FindStringSubmatch(body)
	if m == nil {
		return signal{}, false
	}

	sig := signal{
		txType: entity.TxReceive,
		amount: parseAmount(m[1]),
	}

	name := strings.TrimSpace(m[2])
	phone := m[3]
	if name != "" || phone != "" {
		sig.sender = &entity.Party{Name: name, Phone: phone}
	}

	return sig, true
}

// matchPayment handles "TxId: ID ... payment of N RWF to NAME". The id
// captured here is used only when the generic label scan found none.
func matchPayment(body string) (signal, bool) {
	m := paymentRe.FindStringSubmatch(body)
	if m == nil {
		return signal{}, false
	}

	return signal{
		txType:     entity.TxPayment,
		externalID: strings.TrimSpace(m[1]),
		amount:     parseAmount(m[2]),
		receiver:   &entity.Party{Name: strings.TrimSpace(m[3])},
	}, true
}

// matchTransfer handles "transferred to NAME (PHONE)". It claims the type
// only when nothing matched before it.
func matchTransfer(body string) (signal, bool) {
	m := transferRe.FindStringSubmatch(body)
	if m == nil {
		return signal{}, false
	}

	return signal{
		txType:        entity.TxTransfer,
		typeWhenUnset: true,
		receiver: &entity.Party{
			Name:  strings.TrimSpace(m[1]),
			Phone: m[2],
		},
	}, true
}

func matchDeposit(body string) (signal, bool) {
	if !strings.Contains(strings.ToLower(body), "bank deposit") {
		return signal{}, false
	}
	return signal{txType: entity.TxDeposit}, true
}

// classifyFallback resolves a type for bodies no structured rule claimed.
// Keyword priority is fixed; first match wins. It always yields a type.
func classifyFallback(body string) entity.TransactionType {
	low := strings.ToLower(body)

	switch {
	case strings.Contains(low, "transferred"):
		return entity.TxTransfer
	case strings.Contains(low, "deposit"):
		return entity.TxDeposit
	case strings.Contains(low, "payment"):
		return entity.TxPayment
	case strings.Contains(low, "received"):
		return entity.TxReceive
	default:
		return entity.TxOther
	}
}
