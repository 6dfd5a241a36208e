// Package pkgerror defines the error taxonomy shared across the service.
//
// Errors carry a user-facing message, a high-level type, and a stable code
// so the HTTP edge can map them to status codes without inspecting error
// strings. Sentinel errors support errors.Is checks from the stores upward.
package pkgerror
