package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestNewState_Defaults(t *testing.T) {
	now := date(2025, 1, 10)
	state := NewState(now)

	assert.Equal(t, now, state.CheckIn)
	assert.Equal(t, now.Add(24*time.Hour), state.CheckOut)
	assert.Equal(t, 2, state.Guests)
	assert.Nil(t, state.SelectedRoom)
	assert.Empty(t, state.SelectedPackages)
	assert.Equal(t, GuestDetails{}, state.GuestDetails)
	assert.Equal(t, 1, state.Nights())
}

func TestSetCheckIn_AdvancesCheckOut(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 12))

	state.SetCheckIn(date(2025, 1, 12))

	assert.Equal(t, date(2025, 1, 12), state.CheckIn)
	assert.Equal(t, date(2025, 1, 13), state.CheckOut, "check-out must be auto-advanced to the next day")
	assert.True(t, state.CheckOut.After(state.CheckIn))
}

func TestSetCheckIn_KeepsLaterCheckOut(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 20))

	state.SetCheckIn(date(2025, 1, 12))

	assert.Equal(t, date(2025, 1, 20), state.CheckOut)
}

// SetCheckOut intentionally performs no repair; the date picker is the
// only guard against an inverted range.
func TestSetCheckOut_NoRepair(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 12))

	state.SetCheckOut(date(2025, 1, 5))

	assert.Equal(t, date(2025, 1, 5), state.CheckOut)
	assert.Equal(t, date(2025, 1, 10), state.CheckIn)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three full nights",
			checkIn:  date(2025, 1, 10),
			checkOut: date(2025, 1, 13),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  date(2025, 1, 10),
			checkOut: date(2025, 1, 11),
			want:     1,
		},
		{
			name:     "sub-day remainder rounds up",
			checkIn:  date(2025, 1, 10),
			checkOut: date(2025, 1, 12).Add(6 * time.Hour),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(tt.checkIn)
			state.SetCheckOut(tt.checkOut)

			assert.Equal(t, tt.want, state.Nights())
		})
	}
}

func TestTogglePackage_Idempotence(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	pkg := Package{ID: "breakfast", Name: "Daily Breakfast", Price: 450, PriceType: PerPerson}

	state.TogglePackage(pkg)
	require.Len(t, state.SelectedPackages, 1)

	state.TogglePackage(pkg)
	assert.Empty(t, state.SelectedPackages)
}

func TestTogglePackage_UniqueByID(t *testing.T) {
	state := NewState(date(2025, 1, 10))

	state.TogglePackage(Package{ID: "breakfast", Price: 450, PriceType: PerPerson})
	state.TogglePackage(Package{ID: "pickup", Price: 1800, PriceType: PerBooking})
	state.TogglePackage(Package{ID: "breakfast", Price: 999, PriceType: PerDay})

	require.Len(t, state.SelectedPackages, 1)
	assert.Equal(t, "pickup", state.SelectedPackages[0].ID)
}

func TestPricing_EndToEnd(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 12))
	state.SetGuests(3)
	state.SetSelectedRoom(&Room{ID: "sea-view", BasePrice: 5500, MaxGuests: 3})
	state.TogglePackage(Package{ID: "breakfast", Price: 450, PriceType: PerPerson})
	state.TogglePackage(Package{ID: "pickup", Price: 1800, PriceType: PerBooking})

	require.Equal(t, 2, state.Nights())
	assert.Equal(t, 11000, state.RoomTotal())
	assert.Equal(t, 4500, state.PackagesTotal())
	assert.Equal(t, 2790, state.Taxes())
	assert.Equal(t, 18290, state.TotalPrice())

	breakdown := state.Breakdown()
	assert.Equal(t, Breakdown{
		Nights:        2,
		RoomTotal:     11000,
		PackagesTotal: 4500,
		Taxes:         2790,
		TotalPrice:    18290,
	}, breakdown)
}

func TestPackagesTotal_PerDay(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 13))
	state.SetGuests(4)
	state.TogglePackage(Package{ID: "spa", Price: 700, PriceType: PerDay})

	assert.Equal(t, 2100, state.PackagesTotal(), "per_day ignores the guest count")
}

func TestPackagesTotal_UnknownTypeFallsBackToFlat(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 14))
	state.SetGuests(5)
	state.TogglePackage(Package{ID: "mystery", Price: 1234, PriceType: "per_hour"})

	assert.Equal(t, 1234, state.PackagesTotal(), "unrecognized price type behaves like per_booking")
}

func TestNoRoom_ZeroRoomTotal(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckOut(date(2025, 1, 12))
	state.TogglePackage(Package{ID: "pickup", Price: 1800, PriceType: PerBooking})

	assert.Equal(t, 0, state.RoomTotal())
	assert.Equal(t, state.PackagesTotal()+state.Taxes(), state.TotalPrice())
	assert.Equal(t, 324, state.Taxes(), "taxes computed on packages alone")
}

func TestReset_RestoresDefaults(t *testing.T) {
	state := NewState(date(2025, 1, 10))
	state.SetCheckIn(date(2025, 3, 1))
	state.SetCheckOut(date(2025, 3, 8))
	state.SetGuests(6)
	state.SetSelectedRoom(&Room{ID: "premium-suite", BasePrice: 9500})
	state.TogglePackage(Package{ID: "breakfast", Price: 450, PriceType: PerPerson})
	state.SetGuestDetails(GuestDetails{Name: "Priya Sharma", Email: "priya@example.com", Phone: "9876543210"})

	now := date(2025, 4, 2)
	state.Reset(now)

	assert.Equal(t, now, state.CheckIn)
	assert.Equal(t, now.Add(24*time.Hour), state.CheckOut)
	assert.Equal(t, 2, state.Guests)
	assert.Nil(t, state.SelectedRoom)
	assert.Empty(t, state.SelectedPackages)
	assert.Equal(t, GuestDetails{}, state.GuestDetails)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNoSession)

	state := NewState(date(2025, 1, 10))
	ctx := NewContext(context.Background(), state)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, state, got)
}
