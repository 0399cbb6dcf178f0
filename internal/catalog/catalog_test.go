package catalog

import (
	"testing"

	"github.com/puribeach/booking/internal/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Contents(t *testing.T) {
	c := New()

	assert.Len(t, c.Rooms(), 3)
	assert.Len(t, c.Packages(), 6)
	assert.Len(t, c.Reviews(), 5)
	assert.Equal(t, "Puri Beach Resort", c.Hotel().Name)
}

func TestCatalog_RoomByID(t *testing.T) {
	c := New()

	room, err := c.RoomByID("sea-view")
	require.NoError(t, err)
	assert.Equal(t, 5500, room.BasePrice)
	assert.Equal(t, 3, room.MaxGuests)

	_, err = c.RoomByID("penthouse")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCatalog_PackageByID(t *testing.T) {
	c := New()

	pkg, err := c.PackageByID("breakfast")
	require.NoError(t, err)
	assert.Equal(t, booking.PerPerson, pkg.PriceType)
	assert.Equal(t, 450, pkg.Price)

	_, err = c.PackageByID("helicopter-tour")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

// Every catalog package must carry one of the three known pricing
// models; the store's flat fallback is for forward compatibility only.
func TestCatalog_PackagePriceTypes(t *testing.T) {
	known := map[booking.PriceType]bool{
		booking.PerPerson:  true,
		booking.PerDay:     true,
		booking.PerBooking: true,
	}

	for _, pkg := range New().Packages() {
		assert.True(t, known[pkg.PriceType], "package %s has unknown price type %q", pkg.ID, pkg.PriceType)
		assert.Positive(t, pkg.Price, "package %s", pkg.ID)
	}
}
