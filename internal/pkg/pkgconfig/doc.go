// Package pkgconfig reads configuration values from a file. Application code
// depends on the Config interface, so where values come from (file, env
// override) stays a wiring detail.
package pkgconfig
