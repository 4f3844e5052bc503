package goPassgen

import "context"

type requestIDContextKey struct{}
type subjectContextKey struct{}

// WithRequestID attaches a caller correlation ID to ctx. It is copied into
// audit events.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// WithSubject attaches the identity a password is being generated for. It is
// copied into audit events and becomes the receipt subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey{}, subject)
}

func requestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

func subjectFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	s, _ := ctx.Value(subjectContextKey{}).(string)
	return s
}
