package booking

// PriceType selects how a package's listed price scales with the
// guest count and the number of nights.
type PriceType string

const (
	PerPerson  PriceType = "per_person"
	PerDay     PriceType = "per_day"
	PerBooking PriceType = "per_booking"
)

// Room is a catalog entity. The store never mutates it; prices are
// whole currency units per night.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   int      `json:"base_price"`
	MaxGuests   int      `json:"max_guests"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
	Size        string   `json:"size"`
}

// Package is an add-on (meals, transport, experience) priced under one
// of the three PriceType models.
type Package struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	PriceType   PriceType `json:"price_type"`
	Icon        string    `json:"icon"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
}

type GuestDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Breakdown bundles the derived price figures for the summary panel
// and the confirmation receipt.
type Breakdown struct {
	Nights        int `json:"nights"`
	RoomTotal     int `json:"room_total"`
	PackagesTotal int `json:"packages_total"`
	Taxes         int `json:"taxes"`
	TotalPrice    int `json:"total_price"`
}
