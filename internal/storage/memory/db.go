// Package memory is the whole "backend": per-session booking states
// and confirmed bookings live in process memory and die with it.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/puribeach/booking/internal/booking"
	"github.com/puribeach/booking/internal/checkout"
	"github.com/puribeach/booking/internal/logger"
)

type Config struct {
	L *logger.Logger
}

type DB struct {
	mu            sync.Mutex
	l             *logger.Logger
	sessions      map[string]*booking.State
	confirmations map[string]*checkout.Confirmation
	refs          []string
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:             conf.L,
		sessions:      make(map[string]*booking.State),
		confirmations: make(map[string]*checkout.Confirmation),
	}
}

// Session returns the booking state for the given session, creating a
// fresh default one on first sight. The map access is guarded; the
// state itself is not, a session has a single interactive client by
// construction.
func (db *DB) Session(sessionID string, now time.Time) *booking.State {
	db.mu.Lock()
	defer db.mu.Unlock()

	state, exists := db.sessions[sessionID]
	if !exists {
		state = booking.NewState(now)
		db.sessions[sessionID] = state

		db.l.LogInfo("New booking session %v", sessionID)
	}

	return state
}

// DropSession removes the session's state entirely. A subsequent
// Session call starts from defaults again.
func (db *DB) DropSession(sessionID string) {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.sessions, sessionID)
}

func (db *DB) SaveConfirmation(_ context.Context, confirmation *checkout.Confirmation) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.confirmations[confirmation.Reference]; exists {
		return fmt.Errorf("reference %v: %w", confirmation.Reference, ErrReferenceExists)
	}

	db.confirmations[confirmation.Reference] = confirmation
	db.refs = append(db.refs, confirmation.Reference)

	return nil
}

func (db *DB) ConfirmationByRef(_ context.Context, ref string) (*checkout.Confirmation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	confirmation, exists := db.confirmations[ref]
	if !exists {
		return nil, booking.ErrRecordNotFound
	}

	return confirmation, nil
}

// Confirmations lists confirmed bookings in creation order for the
// admin views.
func (db *DB) Confirmations(_ context.Context) []*checkout.Confirmation {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]*checkout.Confirmation, 0, len(db.refs))

	for _, ref := range db.refs {
		result = append(result, db.confirmations[ref])
	}

	return result
}
