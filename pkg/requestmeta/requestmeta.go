// Package requestmeta carries per-request metadata (client IP) through
// context so audit entries created deep in the service layer can record
// it without widening every service signature.
package requestmeta

import "context"

type ctxKey int

const clientIPKey ctxKey = iota

// WithClientIP returns a context carrying the caller's IP address.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIP returns the caller's IP address, or "" when not set.
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
