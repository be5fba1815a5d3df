package usecase

import "context"

type actorContextKey struct{}

// WithActor attaches the caller identity supplied by the auth layer, for
// attribution on activity rows.
func WithActor(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actorID)
}

// ActorFrom extracts the caller identity, when present.
func ActorFrom(ctx context.Context) *int64 {
	if id, ok := ctx.Value(actorContextKey{}).(int64); ok {
		return &id
	}
	return nil
}
