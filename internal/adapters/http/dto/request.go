package dto

import "context"

// payloadKey is the context key for the decoded request body.
type payloadKey struct{}

// WithPayload stores a decoded request body in ctx. Body-parsing middleware
// calls this once per request; handlers read it back via PayloadFromContext.
func WithPayload(ctx context.Context, payload map[string]any) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// PayloadFromContext returns the decoded request body, or an empty map when
// no body parser ran or the request had no body.
func PayloadFromContext(ctx context.Context) map[string]any {
	if p, ok := ctx.Value(payloadKey{}).(map[string]any); ok && p != nil {
		return p
	}
	return map[string]any{}
}
