package booking

import "time"

type SetVehicleReq struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
}

type SetLocationsReq struct {
	PickupLocation string `json:"pickup_location" validate:"required"`
	ReturnLocation string `json:"return_location" validate:"required"`
}

type SetDatesReq struct {
	PickupDate time.Time `json:"pickup_date" validate:"required"`
	ReturnDate time.Time `json:"return_date" validate:"required"`
}

// Empty transmission clears the preference.
type SetTransmissionReq struct {
	Transmission string `json:"transmission" validate:"omitempty,oneof=Manual Automatic"`
}

type SetColorReq struct {
	Color string `json:"color" validate:"required"`
}

type SetPriceRangeReq struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0"`
}

// Empty priority clears the preference.
type SetPriorityReq struct {
	Priority string `json:"priority" validate:"omitempty,oneof=Price Comfort Sustainability Design"`
}

type SetInsuranceReq struct {
	InsuranceID string `json:"insurance_id" validate:"required"`
}

type SetContactReq struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Notes     string `json:"notes" validate:"max=250"`
}
