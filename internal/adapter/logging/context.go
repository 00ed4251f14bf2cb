package logging

import "context"

type fieldsKey struct{}

// WithFields returns a context whose log lines carry the given key/value
// pairs ahead of the call-site arguments.
func WithFields(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	existing := contextFields(ctx)
	merged := make([]any, 0, len(existing)+len(args))
	merged = append(merged, existing...)
	merged = append(merged, args...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func contextFields(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]any)
	// copy so appends by the caller never alias the stored slice
	return append([]any(nil), fields...)
}
