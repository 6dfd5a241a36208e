package pkgconfig

import "io"

// Config is the read surface application code depends on. Viper implements
// it; tests can substitute a map-backed fake.
type Config interface {
	GetString(key string) string
	GetInt(key string) int64
	GetBool(key string) bool
	GetArray(key string) []string
	io.Closer
}
