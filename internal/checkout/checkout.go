// Package checkout turns a session's booking-in-progress into a
// confirmed booking. Payment is mocked: validation is real, the charge
// always succeeds and nothing leaves the process.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/puribeach/booking/internal/booking"
	"github.com/puribeach/booking/internal/logger"
)

type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "upi"
	PaymentCard       PaymentMethod = "card"
	PaymentNetbanking PaymentMethod = "netbanking"
)

var (
	ErrNoRoomSelected = errors.New("no room selected")
	ErrNextRef        = errors.New("get next booking reference from generator")
)

// Indian mobile numbers only, matching the checkout form.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// Confirmation is the receipt handed to the guest: an immutable
// snapshot of the booking at the moment payment "succeeded".
type Confirmation struct {
	Reference     string               `json:"reference"`
	GuestDetails  booking.GuestDetails `json:"guest_details"`
	Room          booking.Room         `json:"room"`
	Packages      []booking.Package    `json:"packages"`
	CheckIn       time.Time            `json:"check_in"`
	CheckOut      time.Time            `json:"check_out"`
	Guests        int                  `json:"guests"`
	Breakdown     booking.Breakdown    `json:"breakdown"`
	PaymentMethod PaymentMethod        `json:"payment_method"`
	CreatedAt     time.Time            `json:"created_at"`
}

type Input struct {
	GuestDetails  booking.GuestDetails `json:"guest_details"`
	PaymentMethod PaymentMethod        `json:"payment_method"`
}

type refGenerator interface {
	NextRef(ctx context.Context) (string, error)
}

type registry interface {
	SaveConfirmation(ctx context.Context, confirmation *Confirmation) error
}

type Manager struct {
	l        *logger.Logger
	registry registry
	refGen   refGenerator
}

func New(l *logger.Logger, registry registry, refGen refGenerator) *Manager {
	return &Manager{
		l:        l,
		registry: registry,
		refGen:   refGen,
	}
}

func (in *Input) validate() error {
	inputErr := booking.NewInputError()

	if strings.TrimSpace(in.GuestDetails.Name) == "" {
		inputErr.AddError("guest_details.name", "name is required")
	}

	if strings.TrimSpace(in.GuestDetails.Email) == "" {
		inputErr.AddError("guest_details.email", "email is required")
	} else if _, err := mail.ParseAddress(in.GuestDetails.Email); err != nil {
		inputErr.AddError("guest_details.email", "provide valid email")
	}

	if strings.TrimSpace(in.GuestDetails.Phone) == "" {
		inputErr.AddError("guest_details.phone", "phone number is required")
	} else if !phonePattern.MatchString(in.GuestDetails.Phone) {
		inputErr.AddError("guest_details.phone", "provide valid Indian mobile number")
	}

	switch in.PaymentMethod {
	case PaymentUPI, PaymentCard, PaymentNetbanking:
	default:
		inputErr.AddError("payment_method", "choose upi, card or netbanking")
	}

	if inputErr.FieldsCount() > 0 {
		return inputErr
	}

	return nil
}

// Confirm validates the guest details, records them on the session's
// booking, mock-charges the chosen payment method and stores the
// resulting confirmation. The booking-in-progress is left untouched
// afterwards; the guest resets it explicitly if they start over.
func (m *Manager) Confirm(ctx context.Context, input *Input) (*Confirmation, error) {
	state, err := booking.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get booking state: %w", err)
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	if state.SelectedRoom == nil {
		return nil, ErrNoRoomSelected
	}

	state.SetGuestDetails(input.GuestDetails)

	ref, err := m.refGen.NextRef(ctx)
	if err != nil {
		return nil, ErrNextRef
	}

	confirmation := &Confirmation{
		Reference:     ref,
		GuestDetails:  state.GuestDetails,
		Room:          *state.SelectedRoom,
		Packages:      append([]booking.Package{}, state.SelectedPackages...),
		CheckIn:       state.CheckIn,
		CheckOut:      state.CheckOut,
		Guests:        state.Guests,
		Breakdown:     state.Breakdown(),
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.registry.SaveConfirmation(ctx, confirmation); err != nil {
		return nil, fmt.Errorf("save confirmation to registry: %w", err)
	}

	m.l.LogInfo("Booking %v confirmed for %v, total %v", confirmation.Reference, confirmation.GuestDetails.Email, confirmation.Breakdown.TotalPrice)

	return confirmation, nil
}
