// Package source reads SMS backup documents and hands the pipeline raw
// messages. It is the only place a whole-batch failure can originate: a
// source that cannot be read yields ErrUnavailable and no partial batch.
package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/momo/entity"
)

// ErrUnavailable marks a message source that could not be read at all.
// Callers use it to tell a dead source apart from an empty one.
var ErrUnavailable = errors.New("sms source unavailable")

// ReadMessages decodes an SMS backup stream (<smses><sms .../></smses>) into
// raw messages in document order, preserving every attribute of each
// element. Elements other than <sms> are ignored.
func ReadMessages(r io.Reader) ([]entity.RawMessage, error) {
	decoder := xml.NewDecoder(r)
	messages := []entity.RawMessage{}

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "sms" {
			continue
		}

		msg := make(entity.RawMessage, len(start.Attr))
		for _, attr := range start.Attr {
			msg[attr.Name.Local] = attr.Value
		}
		messages = append(messages, msg)

		if err := decoder.Skip(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	return messages, nil
}

// ReadFile opens and decodes the backup at path.
func ReadFile(path string) ([]entity.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	return ReadMessages(f)
}
