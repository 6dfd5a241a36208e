package parse

import (
	"fmt"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

// Parse converts every message into exactly one transaction record, order
// preserved. Internal ids are assigned by 1-based input position and a stand-in
// transaction id is synthesized when the body quoted none. Messages are
// processed independently; a bad message degrades to null fields and type
// "other", it is never skipped.
func Parse(messages []entity.RawMessage) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(messages))

	for i, msg := range messages {
		tx := parseMessage(msg)
		tx.InternalID = int64(i + 1)
		if tx.TransactionID == "" {
			tx.TransactionID = LocalID(tx.InternalID)
		}
		out = append(out, tx)
	}

	return out
}

// LocalID is the stand-in transaction id for records whose message body
// quoted no external id.
func LocalID(internalID int64) string {
	return fmt.Sprintf("local-%d", internalID)
}

func parseMessage(msg entity.RawMessage) entity.Transaction {
	body := msg.Body()

	attrs := make(map[string]string, len(msg))
	for k, v := range msg {
		attrs[k] = v
	}

	tx := entity.Transaction{
		TransactionID: extractTransactionID(body),
		Amount:        extractAmount(body),
		Fee:           extractFee(body),
		Balance:       extractBalance(body),
		Timestamp:     resolveTimestamp(msg.Date(), msg.ReadableDate()),
		Raw:           body,
		SourceAttrs:   attrs,
	}

	applyRules(body, &tx)
	if tx.Type == "" {
		tx.Type = classifyFallback(body)
	}

	return tx
}
