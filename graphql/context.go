package graphql

import (
	"context"
	"net/http"
	"strconv"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyActorID contextKey = "actorID"

// HeaderActor identifies the requesting user for audit logging.
const HeaderActor = "X-Actor-Id"

// ActorIDFromContext returns the requesting user ID, 0 if anonymous.
func ActorIDFromContext(ctx context.Context) uint {
	if v := ctx.Value(CtxKeyActorID); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// WithActorID attaches the requesting user ID to the context.
func WithActorID(ctx context.Context, actorID uint) context.Context {
	return context.WithValue(ctx, CtxKeyActorID, actorID)
}

// GetActorID extracts the actor from the request header.
func GetActorID(r *http.Request) uint {
	if h := r.Header.Get(HeaderActor); h != "" {
		if id, err := strconv.ParseUint(h, 10, 32); err == nil {
			return uint(id)
		}
	}
	return 0
}
