// Package catalog holds the hotel's static reference data: rooms,
// add-on packages, guest reviews and contact info. The booking store
// treats these as immutable inputs it does not own.
package catalog

import (
	"errors"

	"github.com/puribeach/booking/internal/booking"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrPackageNotFound = errors.New("package not found")
)

type Review struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
	RoomType  string `json:"room_type"`
	Verified  bool   `json:"verified"`
}

type HotelInfo struct {
	Name         string  `json:"name"`
	Tagline      string  `json:"tagline"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"total_reviews"`
}

type Catalog struct {
	hotel    HotelInfo
	rooms    []booking.Room
	packages []booking.Package
	reviews  []Review
}

func New() *Catalog {
	return &Catalog{
		hotel:    hotelInfo,
		rooms:    rooms,
		packages: packages,
		reviews:  reviews,
	}
}

func (c *Catalog) Hotel() HotelInfo {
	return c.hotel
}

func (c *Catalog) Rooms() []booking.Room {
	return c.rooms
}

func (c *Catalog) Packages() []booking.Package {
	return c.packages
}

func (c *Catalog) Reviews() []Review {
	return c.reviews
}

func (c *Catalog) RoomByID(id string) (*booking.Room, error) {
	for i := range c.rooms {
		if c.rooms[i].ID == id {
			room := c.rooms[i]

			return &room, nil
		}
	}

	return nil, ErrRoomNotFound
}

func (c *Catalog) PackageByID(id string) (booking.Package, error) {
	for _, pkg := range c.packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}

	return booking.Package{}, ErrPackageNotFound
}
