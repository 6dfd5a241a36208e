package pkguid

import "github.com/google/uuid"

// UUID generates RFC 4122 version 7 UUID strings. V7 ids sort by creation
// time, which keeps correlation ids readable in log order.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (u *UUID) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
