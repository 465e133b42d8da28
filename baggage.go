package arizeotel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/baggage"
)

// SetBaggage adds a key-value pair to baggage in the context.
//
// Keys must be valid HTTP header tokens and values must not contain control
// characters, per the W3C Baggage specification. Returns an error if either
// violates those constraints.
func SetBaggage(ctx context.Context, key, value string) (context.Context, error) {
	bag := baggage.FromContext(ctx)
	member, err := baggage.NewMember(key, value)
	if err != nil {
		return ctx, fmt.Errorf("create baggage member: %w", err)
	}
	bag, err = bag.SetMember(member)
	if err != nil {
		return ctx, fmt.Errorf("set baggage member: %w", err)
	}

	return baggage.ContextWithBaggage(ctx, bag), nil
}

// GetBaggage retrieves a value from baggage in the context.
func GetBaggage(ctx context.Context, key string) string {
	return baggage.FromContext(ctx).Member(key).Value()
}

// SetSession tags the context with a session ID so that spans emitted
// downstream, in this process and across service boundaries, group under one
// conversation in Arize and Phoenix.
func SetSession(ctx context.Context, sessionID string) (context.Context, error) {
	return SetBaggage(ctx, AttrSessionID, sessionID)
}

// MustSetSession is SetSession for session IDs known to be valid baggage
// values. Panics otherwise.
func MustSetSession(ctx context.Context, sessionID string) context.Context {
	newCtx, err := SetSession(ctx, sessionID)
	if err != nil {
		panic(fmt.Sprintf("arizeotel: invalid session id %q: %v", sessionID, err))
	}

	return newCtx
}

// SessionID returns the session ID carried by the context, or "".
func SessionID(ctx context.Context) string {
	return GetBaggage(ctx, AttrSessionID)
}

// SetUser tags the context with the end user a trace belongs to.
func SetUser(ctx context.Context, userID string) (context.Context, error) {
	return SetBaggage(ctx, AttrUserID, userID)
}

// UserID returns the user ID carried by the context, or "".
func UserID(ctx context.Context) string {
	return GetBaggage(ctx, AttrUserID)
}
