// Package pkgrouter wraps httprouter with the middleware every endpoint
// shares: panic recovery, correlation ID propagation, request logging and
// optional basic auth, plus JSON envelopes for success and error responses.
package pkgrouter
