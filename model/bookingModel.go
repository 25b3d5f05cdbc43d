// model/booking.go
package model

import "time"

type Priority string

const (
	PriorityPrice          Priority = "Price"
	PriorityComfort        Priority = "Comfort"
	PrioritySustainability Priority = "Sustainability"
	PriorityDesign         Priority = "Design"
)

// Step identifies a wizard step for step-validity queries.
type Step string

const (
	StepDetails     Step = "details"
	StepPreferences Step = "preferences"
	StepVehicle     Step = "vehicle"
	StepExtras      Step = "extras"
	StepSummary     Step = "summary"
)

func ParseStep(s string) (Step, bool) {
	switch Step(s) {
	case StepDetails, StepPreferences, StepVehicle, StepExtras, StepSummary:
		return Step(s), true
	}
	return "", false
}

type ContactDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// PriceRange is a per-day price filter. Invariant: Min <= Max.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Defaults for a fresh BookingState.
const (
	NoColorPreference = "No Preference"
	DefaultInsurance  = "basic"
)

const (
	DefaultPriceMin = 40
	DefaultPriceMax = 200
)

// BookingState is the single mutable record of the user's selections
// across the wizard. One instance per session.
type BookingState struct {
	SelectedVehicle        *Vehicle       `json:"selected_vehicle"`
	PickupLocation         string         `json:"pickup_location"`
	ReturnLocation         string         `json:"return_location"`
	PickupDate             *time.Time     `json:"pickup_date"`
	ReturnDate             *time.Time     `json:"return_date"`
	TransmissionPreference Transmission   `json:"transmission_preference,omitempty"`
	ColorPreference        string         `json:"color_preference"`
	PriceRange             PriceRange     `json:"price_range"`
	Priority               Priority       `json:"priority,omitempty"`
	SelectedInsurance      string         `json:"selected_insurance"`
	SelectedExtras         []string       `json:"selected_extras"`
	ContactDetails         ContactDetails `json:"contact_details"`
}

func NewBookingState() *BookingState {
	return &BookingState{
		ColorPreference:   NoColorPreference,
		PriceRange:        PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		SelectedInsurance: DefaultInsurance,
		SelectedExtras:    []string{},
	}
}

func (s *BookingState) HasExtra(id string) bool {
	for _, e := range s.SelectedExtras {
		if e == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so stored state and handed-out snapshots
// never alias each other.
func (s *BookingState) Clone() *BookingState {
	cp := *s
	if s.SelectedVehicle != nil {
		v := *s.SelectedVehicle
		cp.SelectedVehicle = &v
	}
	if s.PickupDate != nil {
		t := *s.PickupDate
		cp.PickupDate = &t
	}
	if s.ReturnDate != nil {
		t := *s.ReturnDate
		cp.ReturnDate = &t
	}
	cp.SelectedExtras = make([]string, len(s.SelectedExtras))
	copy(cp.SelectedExtras, s.SelectedExtras)
	return &cp
}
