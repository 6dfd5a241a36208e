package parse

import (
	"regexp"
	"strconv"
	"time"
)

var epochRe = regexp.MustCompile(`^\d+$`)

// resolveTimestamp prefers the numeric epoch-millisecond attribute and
// renders it as RFC 3339 UTC. Any conversion failure falls back to the
// readable date verbatim, whatever format the backup tool wrote; the
// fallback is deliberately not reformatted. Both absent yields nil.
func resolveTimestamp(date, readable string) *string {
	if date != "" && epochRe.MatchString(date) {
		if ms, err := strconv.ParseInt(date, 10, 64); err == nil {
			t := time.UnixMilli(ms).UTC()
			if t.Year() <= 9999 {
				s := t.Format(time.RFC3339)
				return &s
			}
		}
	}

	if readable == "" {
		return nil
	}
	return &readable
}
