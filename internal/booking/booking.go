package booking

import (
	"math"
	"time"
)

const (
	defaultGuests = 2

	// Flat GST applied on the pre-tax subtotal.
	taxRate = 0.18

	day = 24 * time.Hour
)

// State is the booking-in-progress a visitor assembles while browsing:
// date range, guest count, selected room, selected add-on packages and,
// at checkout time, contact details. One instance lives per session and
// every screen reads and writes the same instance. All monetary figures
// are derived on demand, never stored.
type State struct {
	CheckIn          time.Time    `json:"check_in"`
	CheckOut         time.Time    `json:"check_out"`
	Guests           int          `json:"guests"`
	SelectedRoom     *Room        `json:"selected_room"`
	SelectedPackages []Package    `json:"selected_packages"`
	GuestDetails     GuestDetails `json:"guest_details"`
}

// NewState returns the default booking: tonight for one night, two
// guests, nothing selected.
func NewState(now time.Time) *State {
	//nolint:exhaustruct
	return &State{
		CheckIn:          now,
		CheckOut:         now.Add(day),
		Guests:           defaultGuests,
		SelectedPackages: []Package{},
	}
}

// SetCheckIn moves the check-in date. When the current check-out does
// not stay strictly after the new check-in, check-out is advanced to
// the following day. Callers are never rejected; this mutator repairs
// the range instead of validating it. Past dates are the caller's
// problem, the store applies no such check.
func (s *State) SetCheckIn(d time.Time) {
	if !s.CheckOut.After(d) {
		s.CheckOut = d.Add(day)
	}

	s.CheckIn = d
}

// SetCheckOut replaces the check-out date unconditionally. Unlike
// SetCheckIn it performs no repair: keeping check-out after check-in is
// the date picker's job, which disables earlier days. The asymmetry is
// part of the contract, see the store tests.
func (s *State) SetCheckOut(d time.Time) {
	s.CheckOut = d
}

// SetGuests replaces the guest count. The selector only offers 1..6, so
// the store does not clamp.
func (s *State) SetGuests(count int) {
	s.Guests = count
}

// SetSelectedRoom replaces the chosen room; nil clears the selection.
func (s *State) SetSelectedRoom(room *Room) {
	s.SelectedRoom = room
}

// TogglePackage removes the package when one with the same ID is
// already selected, otherwise appends it. Two identical toggles in a
// row are a no-op.
func (s *State) TogglePackage(pkg Package) {
	for i, selected := range s.SelectedPackages {
		if selected.ID == pkg.ID {
			s.SelectedPackages = append(s.SelectedPackages[:i], s.SelectedPackages[i+1:]...)

			return
		}
	}

	s.SelectedPackages = append(s.SelectedPackages, pkg)
}

// SetGuestDetails replaces the contact record wholesale.
func (s *State) SetGuestDetails(details GuestDetails) {
	s.GuestDetails = details
}

// Reset restores the defaults, dropping every selection made so far.
func (s *State) Reset(now time.Time) {
	*s = *NewState(now)
}

// Nights derives the night count from the date range by duration
// arithmetic, rounding any sub-day remainder up. It is >= 1 only while
// the check-in/check-out ordering holds.
func (s *State) Nights() int {
	return int(math.Ceil(s.CheckOut.Sub(s.CheckIn).Hours() / 24)) //nolint:gomnd
}

// RoomTotal is zero until a room is chosen.
func (s *State) RoomTotal() int {
	if s.SelectedRoom == nil {
		return 0
	}

	return s.SelectedRoom.BasePrice * s.Nights()
}

// PackagesTotal sums the per-package contributions: per_person scales
// with guests and nights, per_day with nights, per_booking is flat. An
// unrecognized price type falls back to the flat rate.
func (s *State) PackagesTotal() int {
	nights := s.Nights()

	var total int

	for _, pkg := range s.SelectedPackages {
		switch pkg.PriceType {
		case PerPerson:
			total += pkg.Price * s.Guests * nights
		case PerDay:
			total += pkg.Price * nights
		case PerBooking:
			total += pkg.Price
		default:
			total += pkg.Price
		}
	}

	return total
}

// Taxes is 18% GST on the pre-tax subtotal, rounded to the nearest
// whole currency unit.
func (s *State) Taxes() int {
	subtotal := s.RoomTotal() + s.PackagesTotal()

	return int(math.Round(float64(subtotal) * taxRate))
}

func (s *State) TotalPrice() int {
	return s.RoomTotal() + s.PackagesTotal() + s.Taxes()
}

// Breakdown snapshots every derived figure at once.
func (s *State) Breakdown() Breakdown {
	return Breakdown{
		Nights:        s.Nights(),
		RoomTotal:     s.RoomTotal(),
		PackagesTotal: s.PackagesTotal(),
		Taxes:         s.Taxes(),
		TotalPrice:    s.TotalPrice(),
	}
}
