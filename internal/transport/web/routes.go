package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/puribeach/booking/internal/booking"
	"github.com/puribeach/booking/internal/catalog"
	"github.com/puribeach/booking/internal/checkout"
	"github.com/puribeach/booking/internal/money"
)

const (
	dateLayout = "2006-01-02"

	minGuests = 1
	maxGuests = 6
)

type bookingView struct {
	Booking   *booking.State    `json:"booking"`
	Breakdown booking.Breakdown `json:"breakdown"`
}

type formattedBreakdown struct {
	RoomTotal     string `json:"room_total"`
	PackagesTotal string `json:"packages_total"`
	Taxes         string `json:"taxes"`
	TotalPrice    string `json:"total_price"`
}

type receiptView struct {
	Confirmation *checkout.Confirmation `json:"confirmation"`
	Formatted    formattedBreakdown     `json:"formatted"`
}

func formatBreakdown(b booking.Breakdown) formattedBreakdown {
	return formattedBreakdown{
		RoomTotal:     money.Format(b.RoomTotal),
		PackagesTotal: money.Format(b.PackagesTotal),
		Taxes:         money.Format(b.Taxes),
		TotalPrice:    money.Format(b.TotalPrice),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

// stateFromRequest resolves the session's booking state. A miss means
// the route is wired without the session middleware; that is fatal to
// the request, never silently answered with defaults.
func (s *Server) stateFromRequest(w http.ResponseWriter, r *http.Request) *booking.State {
	state, err := booking.FromContext(r.Context())
	if err != nil {
		s.l.LogErrorf("Booking store misconfiguration: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return nil
	}

	return state
}

func (s *Server) hotelHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Hotel())
}

func (s *Server) roomsHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Rooms())
}

func (s *Server) roomHandler(w http.ResponseWriter, r *http.Request) {
	room, err := s.catalog.RoomByID(r.PathValue("id"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	s.writeJSON(w, http.StatusOK, room)
}

func (s *Server) packagesHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Packages())
}

func (s *Server) reviewsHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Reviews())
}

func (s *Server) bookingHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

type datesInput struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

// datesHandler is the date picker's edge: check-in goes through the
// store's self-repairing mutator, while a check-out not after check-in
// is rejected here, the same way the picker disables those days. The
// store itself never repairs check-out.
func (s *Server) datesHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	var input datesInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if input.CheckIn != nil {
		checkIn, err := time.Parse(dateLayout, *input.CheckIn)
		if err != nil {
			http.Error(w, "check_in must be a YYYY-MM-DD date", http.StatusBadRequest)

			return
		}

		state.SetCheckIn(checkIn)
	}

	if input.CheckOut != nil {
		checkOut, err := time.Parse(dateLayout, *input.CheckOut)
		if err != nil {
			http.Error(w, "check_out must be a YYYY-MM-DD date", http.StatusBadRequest)

			return
		}

		if !checkOut.After(state.CheckIn) {
			http.Error(w, "check_out must be after check_in", http.StatusBadRequest)

			return
		}

		state.SetCheckOut(checkOut)
	}

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

type guestsInput struct {
	Guests int `json:"guests"`
}

func (s *Server) guestsHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	var input guestsInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	// The store does not clamp; the selector offers 1..6 and so does
	// this endpoint.
	if input.Guests < minGuests || input.Guests > maxGuests {
		http.Error(w, fmt.Sprintf("guests must be between %d and %d", minGuests, maxGuests), http.StatusBadRequest)

		return
	}

	state.SetGuests(input.Guests)

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

type roomInput struct {
	RoomID *string `json:"room_id"`
}

func (s *Server) roomSelectHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	var input roomInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if input.RoomID == nil {
		state.SetSelectedRoom(nil)

		s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})

		return
	}

	room, err := s.catalog.RoomByID(*input.RoomID)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	state.SetSelectedRoom(room)

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

func (s *Server) packageToggleHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	pkg, err := s.catalog.PackageByID(r.PathValue("id"))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	state.TogglePackage(pkg)

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

func (s *Server) guestDetailsHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	var details booking.GuestDetails

	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	state.SetGuestDetails(details)

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	state := s.stateFromRequest(w, r)
	if state == nil {
		return
	}

	state.Reset(time.Now())

	s.writeJSON(w, http.StatusOK, bookingView{Booking: state, Breakdown: state.Breakdown()})
}

func (s *Server) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var input checkout.Input

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	confirmation, err := s.checkout.Confirm(r.Context(), &input)
	if inputErr := booking.IsInputError(err); inputErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)

		if err = json.NewEncoder(w).Encode(inputErr.Fields()); err != nil {
			s.l.LogErrorf("Could not encode validation err: %v", err.Error())
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}

		return
	}

	if errors.Is(err, checkout.ErrNoRoomSelected) {
		http.Error(w, "select a room first", http.StatusConflict)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not confirm booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, receiptView{
		Confirmation: confirmation,
		Formatted:    formatBreakdown(confirmation.Breakdown),
	})
}

func (s *Server) confirmationHandler(w http.ResponseWriter, r *http.Request) {
	confirmation, err := s.db.ConfirmationByRef(r.Context(), r.PathValue("ref"))
	if errors.Is(err, booking.ErrRecordNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not load confirmation: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, receiptView{
		Confirmation: confirmation,
		Formatted:    formatBreakdown(confirmation.Breakdown),
	})
}

type adminBookingsView struct {
	Bookings     []*checkout.Confirmation `json:"bookings"`
	Count        int                      `json:"count"`
	TotalRevenue string                   `json:"total_revenue"`
}

func (s *Server) adminBookingsHandler(w http.ResponseWriter, r *http.Request) {
	confirmations := s.db.Confirmations(r.Context())

	var revenue int

	for _, confirmation := range confirmations {
		revenue += confirmation.Breakdown.TotalPrice
	}

	s.writeJSON(w, http.StatusOK, adminBookingsView{
		Bookings:     confirmations,
		Count:        len(confirmations),
		TotalRevenue: money.Format(revenue),
	})
}

type adminPackageView struct {
	booking.Package
	FormattedPrice string `json:"formatted_price"`
}

func (s *Server) adminPackagesHandler(w http.ResponseWriter, _ *http.Request) {
	packages := s.catalog.Packages()
	view := make([]adminPackageView, 0, len(packages))

	for _, pkg := range packages {
		view = append(view, adminPackageView{Package: pkg, FormattedPrice: money.Format(pkg.Price)})
	}

	s.writeJSON(w, http.StatusOK, view)
}

type adminHotelView struct {
	Hotel catalog.HotelInfo `json:"hotel"`
	Rooms []booking.Room    `json:"rooms"`
}

func (s *Server) adminHotelHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, adminHotelView{
		Hotel: s.catalog.Hotel(),
		Rooms: s.catalog.Rooms(),
	})
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	common := []func(http.Handler) http.Handler{s.loggerMiddleware(), s.recoverMiddleware()}
	session := append([]func(http.Handler) http.Handler{s.sessionMiddleware()}, common...)

	handle := func(pattern string, h http.HandlerFunc, middlewares []func(http.Handler) http.Handler) {
		r.Handle(pattern, s.applyMiddlewares(h, middlewares...))
	}

	handle("GET /api/hotel/v1", s.hotelHandler, common)
	handle("GET /api/rooms/v1", s.roomsHandler, common)
	handle("GET /api/rooms/v1/{id}", s.roomHandler, common)
	handle("GET /api/packages/v1", s.packagesHandler, common)
	handle("GET /api/reviews/v1", s.reviewsHandler, common)

	handle("GET /api/booking/v1", s.bookingHandler, session)
	handle("PUT /api/booking/v1/dates", s.datesHandler, session)
	handle("PUT /api/booking/v1/guests", s.guestsHandler, session)
	handle("PUT /api/booking/v1/room", s.roomSelectHandler, session)
	handle("POST /api/booking/v1/packages/{id}/toggle", s.packageToggleHandler, session)
	handle("PUT /api/booking/v1/guest-details", s.guestDetailsHandler, session)
	handle("DELETE /api/booking/v1", s.resetHandler, session)

	handle("POST /api/checkout/v1", s.checkoutHandler, session)
	handle("GET /api/confirmations/v1/{ref}", s.confirmationHandler, common)

	handle("GET /api/admin/bookings/v1", s.adminBookingsHandler, common)
	handle("GET /api/admin/packages/v1", s.adminPackagesHandler, common)
	handle("GET /api/admin/hotel/v1", s.adminHotelHandler, common)

	handle(fmt.Sprintf("GET %s", s.conf.LivenessEndpoint), s.livenessHandler, common)
}
