package pkglog

import "context"

type correlationIDContextKey struct{}

// GetCorrelationID returns the correlation ID stored in the context, or
// "[invalid_correlation_id]" when none was set. Middleware sets the value at
// the start of the request lifecycle.
func GetCorrelationID(ctx context.Context) string {
	cid, ok := ctx.Value(correlationIDContextKey{}).(string)
	if !ok {
		return "[invalid_correlation_id]"
	}
	return cid
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey{}, cid)
}
