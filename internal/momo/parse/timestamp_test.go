package parse

import "testing"

func TestResolveTimestampEpoch(t *testing.T) {
	t.Parallel()

	got := resolveTimestamp("1700000000000", "14/11/23 22:13")
	if got == nil || *got != "2023-11-14T22:13:20Z" {
		t.Fatalf("resolveTimestamp() = %v, want 2023-11-14T22:13:20Z", got)
	}
}

func TestResolveTimestampNonNumericFallsBack(t *testing.T) {
	t.Parallel()

	got := resolveTimestamp("not-a-number", "14/11/23 22:13")
	if got == nil || *got != "14/11/23 22:13" {
		t.Fatalf("resolveTimestamp() = %v, want readable date verbatim", got)
	}
}

func TestResolveTimestampOverflowFallsBack(t *testing.T) {
	t.Parallel()

	// Too large for int64 milliseconds; must degrade, never error.
	got := resolveTimestamp("99999999999999999999999", "backup day")
	if got == nil || *got != "backup day" {
		t.Fatalf("resolveTimestamp() = %v, want fallback", got)
	}
}

func TestResolveTimestampAbsurdYearFallsBack(t *testing.T) {
	t.Parallel()

	// Fits int64 but renders past year 9999.
	got := resolveTimestamp("999999999999999999", "readable")
	if got == nil || *got != "readable" {
		t.Fatalf("resolveTimestamp() = %v, want fallback", got)
	}
}

func TestResolveTimestampBothAbsent(t *testing.T) {
	t.Parallel()

	if got := resolveTimestamp("", ""); got != nil {
		t.Fatalf("resolveTimestamp() = %v, want nil", got)
	}
}
