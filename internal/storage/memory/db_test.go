package memory

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/puribeach/booking/internal/booking"
	"github.com/puribeach/booking/internal/checkout"
	"github.com/puribeach/booking/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB() *DB {
	return New(Config{L: logger.New(log.Default())})
}

func TestSession_CreateOnDemand(t *testing.T) {
	db := newTestDB()
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	state := db.Session("s-1", now)
	require.NotNil(t, state)
	assert.Equal(t, now, state.CheckIn)

	state.SetGuests(5)

	again := db.Session("s-1", now.Add(48*time.Hour))
	assert.Same(t, state, again, "same session id returns the same state")
	assert.Equal(t, 5, again.Guests)

	other := db.Session("s-2", now)
	assert.NotSame(t, state, other)
	assert.Equal(t, 2, other.Guests)
}

func TestDropSession(t *testing.T) {
	db := newTestDB()
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	state := db.Session("s-1", now)
	state.SetGuests(6)

	db.DropSession("s-1")

	fresh := db.Session("s-1", now)
	assert.NotSame(t, state, fresh)
	assert.Equal(t, 2, fresh.Guests)
}

func TestConfirmations(t *testing.T) {
	db := newTestDB()
	ctx := context.Background()

	first := &checkout.Confirmation{Reference: "PBRAAA", Guests: 2}
	second := &checkout.Confirmation{Reference: "PBRBBB", Guests: 4}

	require.NoError(t, db.SaveConfirmation(ctx, first))
	require.NoError(t, db.SaveConfirmation(ctx, second))

	err := db.SaveConfirmation(ctx, &checkout.Confirmation{Reference: "PBRAAA"})
	assert.ErrorIs(t, err, ErrReferenceExists)

	got, err := db.ConfirmationByRef(ctx, "PBRBBB")
	require.NoError(t, err)
	assert.Same(t, second, got)

	_, err = db.ConfirmationByRef(ctx, "PBRZZZ")
	assert.ErrorIs(t, err, booking.ErrRecordNotFound)

	list := db.Confirmations(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "PBRAAA", list[0].Reference)
	assert.Equal(t, "PBRBBB", list[1].Reference)
}
