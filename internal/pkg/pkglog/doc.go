// Package pkglog configures application logging on top of slog.
//
// Logs go out as JSON with stable keys ("ts", "severity") and every record
// carries the service name plus, when the context holds one, the request
// correlation ID.
package pkglog
