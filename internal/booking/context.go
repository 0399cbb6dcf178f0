package booking

import "context"

type contextKey string

const stateKey contextKey = "bookingState"

// NewContext attaches the session's booking state. The transport's
// session middleware is the only expected caller.
func NewContext(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}

// FromContext returns the session's booking state. Outside an active
// session scope it fails with ErrNoSession; consumers must treat that
// as fatal rather than fall back to a default state.
func FromContext(ctx context.Context) (*State, error) {
	state, ok := ctx.Value(stateKey).(*State)
	if !ok || state == nil {
		return nil, ErrNoSession
	}

	return state, nil
}
