// model/catalog.go
package model

type VehicleCategory string

const (
	CategoryCity   VehicleCategory = "City"
	CategoryFamily VehicleCategory = "Family"
	CategorySUV    VehicleCategory = "SUV"
	CategorySport  VehicleCategory = "Sport"
	CategoryECar   VehicleCategory = "E-Car"
)

type Transmission string

const (
	TransmissionManual    Transmission = "Manual"
	TransmissionAutomatic Transmission = "Automatic"
)

type FuelType string

const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

type Vehicle struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     VehicleCategory `json:"category"`
	PricePerDay  float64         `json:"price_per_day"`
	Seats        int             `json:"seats"`
	Luggage      int             `json:"luggage"`
	Transmission Transmission    `json:"transmission"`
	FuelType     FuelType        `json:"fuel_type"`
}

// InsuranceOption with PricePerDay 0 is included at no extra cost.
type InsuranceOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day"`
	Recommended bool    `json:"recommended"`
}

type ExtraOption struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	PricePerDay *float64 `json:"price_per_day,omitempty"`
}

// DailyRate reports the per-day price of the extra. Unpriced extras
// contribute nothing to a rental total.
func (e ExtraOption) DailyRate() (float64, bool) {
	if e.PricePerDay == nil {
		return 0, false
	}
	return *e.PricePerDay, true
}
