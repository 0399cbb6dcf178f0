package catalog

import "github.com/puribeach/booking/internal/booking"

var hotelInfo = HotelInfo{
	Name:         "Puri Beach Resort",
	Tagline:      "Where Temple Meets Ocean",
	Description:  "Experience divine serenity at our premium beachfront resort, just 5 minutes from Shree Jagannath Temple. Book your stay + darshan + food in 3 clicks.",
	Address:      "Sea Beach Road, Puri, Odisha 752001",
	Phone:        "+91 98765 43210",
	Email:        "reservations@puribeachresort.com",
	CheckInTime:  "2:00 PM",
	CheckOutTime: "11:00 AM",
	Rating:       4.8,
	TotalReviews: 1247,
}

var rooms = []booking.Room{
	{
		ID:          "deluxe",
		Name:        "Deluxe Room",
		Description: "Comfortable and elegant room with modern amenities and city view. Perfect for solo travelers or couples.",
		BasePrice:   3500,
		MaxGuests:   2,
		Amenities:   []string{"King Bed", "AC", "WiFi", "TV", "Mini Bar", "Room Service"},
		Image:       "/assets/room-deluxe.jpg",
		Size:        "320 sq ft",
	},
	{
		ID:          "sea-view",
		Name:        "Sea View Room",
		Description: "Wake up to breathtaking views of Puri Beach. Spacious room with private balcony overlooking the Bay of Bengal.",
		BasePrice:   5500,
		MaxGuests:   3,
		Amenities:   []string{"King Bed", "AC", "WiFi", "TV", "Mini Bar", "Balcony", "Ocean View", "Room Service"},
		Image:       "/assets/hero-room.jpg",
		Size:        "450 sq ft",
	},
	{
		ID:          "premium-suite",
		Name:        "Premium Suite",
		Description: "Luxurious suite with separate living area, panoramic ocean views, and premium amenities for an unforgettable stay.",
		BasePrice:   9500,
		MaxGuests:   4,
		Amenities:   []string{"King Bed", "AC", "WiFi", "TV", "Living Area", "Jacuzzi", "Balcony", "Ocean View", "Butler Service"},
		Image:       "/assets/room-suite.jpg",
		Size:        "750 sq ft",
	},
}

var packages = []booking.Package{
	{
		ID:          "beach-view-upgrade",
		Name:        "Beach View Upgrade",
		Description: "Upgrade to a room with stunning beach views and private balcony",
		Price:       1500,
		PriceType:   booking.PerBooking,
		Icon:        "🏖️",
		Image:       "/assets/puri-beach.jpg",
		Category:    "Room Upgrade",
	},
	{
		ID:          "breakfast",
		Name:        "Daily Breakfast",
		Description: "Traditional Odia breakfast with fresh local delicacies",
		Price:       450,
		PriceType:   booking.PerPerson,
		Icon:        "🍳",
		Image:       "/assets/food-thali.jpg",
		Category:    "Meals",
	},
	{
		ID:          "full-board",
		Name:        "Full Board Meals",
		Description: "Breakfast, Lunch & Dinner - Authentic Odia cuisine experience",
		Price:       1200,
		PriceType:   booking.PerPerson,
		Icon:        "🍽️",
		Image:       "/assets/food-thali.jpg",
		Category:    "Meals",
	},
	{
		ID:          "temple-darshan",
		Name:        "Temple Darshan Assistance",
		Description: "Guided visit to Shree Jagannath Temple with priority entry assistance",
		Price:       800,
		PriceType:   booking.PerPerson,
		Icon:        "🛕",
		Image:       "/assets/jagannath-temple.jpg",
		Category:    "Experience",
	},
	{
		ID:          "airport-pickup",
		Name:        "Airport/Railway Pickup",
		Description: "Comfortable AC vehicle pickup from Bhubaneswar Airport or Puri Railway Station",
		Price:       1800,
		PriceType:   booking.PerBooking,
		Icon:        "🚗",
		Image:       "/assets/puri-beach.jpg",
		Category:    "Transport",
	},
	{
		ID:          "honeymoon-package",
		Name:        "Honeymoon Special",
		Description: "Room decoration, cake, candlelight dinner, and couples spa session",
		Price:       4500,
		PriceType:   booking.PerBooking,
		Icon:        "💕",
		Image:       "/assets/hero-room.jpg",
		Category:    "Experience",
	},
}

var reviews = []Review{
	{
		ID:        "1",
		GuestName: "Priya Sharma",
		Rating:    5,
		Comment:   "Absolutely divine experience! The temple darshan assistance made our trip so convenient. The room was spotless and the sea view was breathtaking.",
		Date:      "2025-01-15",
		RoomType:  "Sea View Room",
		Verified:  true,
	},
	{
		ID:        "2",
		GuestName: "Rahul Patel",
		Rating:    5,
		Comment:   "Best hotel in Puri! The food was authentic Odia cuisine and the staff went above and beyond. Temple is just 5 mins away.",
		Date:      "2025-01-10",
		RoomType:  "Premium Suite",
		Verified:  true,
	},
	{
		ID:        "3",
		GuestName: "Ananya Krishnan",
		Rating:    4,
		Comment:   "Lovely stay with my family. Kids loved the beach access. The breakfast spread was excellent with so many options.",
		Date:      "2025-01-05",
		RoomType:  "Deluxe Room",
		Verified:  true,
	},
	{
		ID:        "4",
		GuestName: "Suresh Mohanty",
		Rating:    5,
		Comment:   "As a local Odia, I can vouch for the authenticity of this place. Perfect blend of comfort and tradition. Highly recommend the full board meals!",
		Date:      "2024-12-28",
		RoomType:  "Sea View Room",
		Verified:  true,
	},
	{
		ID:        "5",
		GuestName: "Meera & Vikram",
		Rating:    5,
		Comment:   "Our honeymoon was magical! The special package made everything perfect - from the decorated room to the candlelight dinner by the beach.",
		Date:      "2024-12-20",
		RoomType:  "Premium Suite",
		Verified:  true,
	},
}
