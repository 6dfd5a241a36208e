package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns tuned for the provider's SMS templates. Each extractor scans the
// body independently and takes the first match.
var (
	amountRe  = regexp.MustCompile(`(?i)(\d{1,3}(?:[,\s]\d{3})*|\d+)\s*RWF`)
	txIDRe    = regexp.MustCompile(`(?i)(?:TxId:|Financial Transaction Id:)\s*([0-9A-Za-z\-]+)`)
	feeRe     = regexp.MustCompile(`(?i)Fee\s*was[: ]*\s*([0-9,]+)\s*RWF`)
	balanceRe = regexp.MustCompile(`(?i)new\s+balance\s*:?\s*([0-9,]+)\s*RWF`)
)

func extractTransactionID(body string) string {
	m := txIDRe.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractAmount takes the first RWF-denominated quantity in the body as the
// transaction amount. Fee and balance mentions usually appear later and have
// their own extractors; a structured rule may still overwrite this value.
func extractAmount(body string) *int64 {
	m := amountRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return parseAmount(m[1])
}

func extractFee(body string) *int64 {
	m := feeRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return parseAmount(m[1])
}

func extractBalance(body string) *int64 {
	m := balanceRe.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return parseAmount(m[1])
}

// parseAmount strips grouping separators (comma or space) and parses the
// remainder as an integer. A malformed quantity resolves to nil; it never
// fails the message.
func parseAmount(raw string) *int64 {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(raw)

	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(cleaned, 64)
		if ferr != nil {
			return nil
		}
		v = int64(f)
	}

	return &v
}
