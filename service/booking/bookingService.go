package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SelinaMogicato/Car4You/model"
	sessionrepo "github.com/SelinaMogicato/Car4You/repository/session"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"
	ErrIncomplete      ErrCode = "BOOKING_INCOMPLETE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

// Snapshot is the whole-state read: current selections plus derived totals.
type Snapshot struct {
	State  model.BookingState `json:"state"`
	Totals Totals             `json:"totals"`
}

// Confirmation is returned when a completed booking is confirmed. Nothing
// is persisted or charged; the reference exists for the confirmation screen
// and the (out-of-scope) email.
type Confirmation struct {
	Reference   string             `json:"reference"`
	State       model.BookingState `json:"state"`
	Totals      Totals             `json:"totals"`
	ConfirmedAt time.Time          `json:"confirmed_at"`
}

type Sessions interface {
	Create(ctx context.Context) (string, *model.BookingState, error)
	Get(ctx context.Context, id string) (*model.BookingState, error)
	Save(ctx context.Context, id string, st *model.BookingState) error
	Delete(ctx context.Context, id string) error
}

// Catalog is the slice of the catalog the engine prices against.
type Catalog interface {
	VehicleByID(id string) (model.Vehicle, bool)
	InsuranceByID(id string) (model.InsuranceOption, bool)
	ExtraByID(id string) (model.ExtraOption, bool)
}

type Service interface {
	// StartSession creates a fresh BookingState and returns its session id.
	StartSession(ctx context.Context) (string, *Snapshot, error)
	// EndSession discards the session's state.
	EndSession(ctx context.Context, sid string) error

	Snapshot(ctx context.Context, sid string) (*Snapshot, error)

	// Mutators. All total: a syntactically valid value always lands, and
	// derived totals in the returned snapshot reflect the new state.
	SetVehicle(ctx context.Context, sid, vehicleID string) (*Snapshot, error)
	SetLocations(ctx context.Context, sid, pickup, ret string) (*Snapshot, error)
	SetDates(ctx context.Context, sid string, pickup, ret time.Time) (*Snapshot, error)
	SetTransmission(ctx context.Context, sid string, t model.Transmission) (*Snapshot, error)
	SetColor(ctx context.Context, sid, color string) (*Snapshot, error)
	SetPriceRange(ctx context.Context, sid string, min, max float64) (*Snapshot, error)
	SetPriority(ctx context.Context, sid string, p model.Priority) (*Snapshot, error)
	SetInsurance(ctx context.Context, sid, insuranceID string) (*Snapshot, error)
	ToggleExtra(ctx context.Context, sid, extraID string) (*Snapshot, error)
	SetContact(ctx context.Context, sid string, cd model.ContactDetails) (*Snapshot, error)

	StepValid(ctx context.Context, sid string, step model.Step) (bool, error)

	// Reset restores the documented defaults without ending the session.
	Reset(ctx context.Context, sid string) (*Snapshot, error)

	// Confirm completes the reservation once every step is valid and
	// contact details are filled in.
	Confirm(ctx context.Context, sid string) (*Confirmation, error)
}

// ----- Service implementation -----

type service struct {
	sessions Sessions
	catalog  Catalog
}

func New(sessions Sessions, catalog Catalog) Service {
	return &service{sessions: sessions, catalog: catalog}
}

func (s *service) snapshot(st *model.BookingState) *Snapshot {
	return &Snapshot{State: *st, Totals: DeriveTotals(st, s.catalog)}
}

// update loads the session state, applies fn and saves it back.
func (s *service) update(ctx context.Context, sid string, fn func(st *model.BookingState)) (*Snapshot, error) {
	st, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return nil, makeErr(ErrSessionNotFound)
		}
		return nil, err
	}

	fn(st)

	if err := s.sessions.Save(ctx, sid, st); err != nil {
		return nil, err
	}
	return s.snapshot(st), nil
}

func (s *service) StartSession(ctx context.Context) (string, *Snapshot, error) {
	sid, st, err := s.sessions.Create(ctx)
	if err != nil {
		return "", nil, err
	}
	return sid, s.snapshot(st), nil
}

func (s *service) EndSession(ctx context.Context, sid string) error {
	if err := s.sessions.Delete(ctx, sid); err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return makeErr(ErrSessionNotFound)
		}
		return err
	}
	return nil
}

func (s *service) Snapshot(ctx context.Context, sid string) (*Snapshot, error) {
	return s.update(ctx, sid, func(*model.BookingState) {})
}

// SetVehicle resolves the id against the catalog. An unknown id clears the
// selection rather than failing; the total then derives to zero.
func (s *service) SetVehicle(ctx context.Context, sid, vehicleID string) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		if v, ok := s.catalog.VehicleByID(vehicleID); ok {
			st.SelectedVehicle = &v
			return
		}
		st.SelectedVehicle = nil
	})
}

func (s *service) SetLocations(ctx context.Context, sid, pickup, ret string) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		st.PickupLocation = pickup
		st.ReturnLocation = ret
	})
}

func (s *service) SetDates(ctx context.Context, sid string, pickup, ret time.Time) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		p, r := pickup, ret
		st.PickupDate = &p
		st.ReturnDate = &r
	})
}

func (s *service) SetTransmission(ctx context.Context, sid string, t model.Transmission) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		st.TransmissionPreference = t
	})
}

func (s *service) SetColor(ctx context.Context, sid, color string) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		if color == "" {
			color = model.NoColorPreference
		}
		st.ColorPreference = color
	})
}

// SetPriceRange swaps inverted bounds so the min <= max invariant holds
// without the mutator ever failing.
func (s *service) SetPriceRange(ctx context.Context, sid string, min, max float64) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		if min > max {
			min, max = max, min
		}
		st.PriceRange = model.PriceRange{Min: min, Max: max}
	})
}

func (s *service) SetPriority(ctx context.Context, sid string, p model.Priority) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		st.Priority = p
	})
}

func (s *service) SetInsurance(ctx context.Context, sid, insuranceID string) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		st.SelectedInsurance = insuranceID
	})
}

// ToggleExtra is a presence toggle: present removes, absent adds.
func (s *service) ToggleExtra(ctx context.Context, sid, extraID string) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		if st.HasExtra(extraID) {
			out := st.SelectedExtras[:0]
			for _, id := range st.SelectedExtras {
				if id != extraID {
					out = append(out, id)
				}
			}
			st.SelectedExtras = out
			return
		}
		st.SelectedExtras = append(st.SelectedExtras, extraID)
	})
}

func (s *service) SetContact(ctx context.Context, sid string, cd model.ContactDetails) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		st.ContactDetails = cd
	})
}

func (s *service) StepValid(ctx context.Context, sid string, step model.Step) (bool, error) {
	st, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return false, makeErr(ErrSessionNotFound)
		}
		return false, err
	}
	return StepValid(st, step), nil
}

func (s *service) Reset(ctx context.Context, sid string) (*Snapshot, error) {
	return s.update(ctx, sid, func(st *model.BookingState) {
		*st = *model.NewBookingState()
	})
}

func (s *service) Confirm(ctx context.Context, sid string) (*Confirmation, error) {
	st, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, sessionrepo.ErrNotFound) {
			return nil, makeErr(ErrSessionNotFound)
		}
		return nil, err
	}

	for _, step := range []model.Step{model.StepDetails, model.StepVehicle, model.StepExtras} {
		if !StepValid(st, step) {
			return nil, makeErr(ErrIncomplete)
		}
	}
	cd := st.ContactDetails
	if cd.FirstName == "" || cd.LastName == "" || cd.Email == "" || cd.Phone == "" {
		return nil, makeErr(ErrIncomplete)
	}

	ref := "C4Y-" + strings.ToUpper(uuid.NewString()[:8])
	return &Confirmation{
		Reference:   ref,
		State:       *st,
		Totals:      DeriveTotals(st, s.catalog),
		ConfirmedAt: time.Now().UTC(),
	}, nil
}
