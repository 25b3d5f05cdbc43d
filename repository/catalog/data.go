// repository/catalog/data.go
package catalog

import "github.com/SelinaMogicato/Car4You/model"

func daily(v float64) *float64 { return &v }

var vehicles = []model.Vehicle{
	{ID: "1", Name: "Fiat 500", Category: model.CategoryCity, PricePerDay: 45, Seats: 4, Luggage: 1, Transmission: model.TransmissionManual, FuelType: model.FuelPetrol},
	{ID: "2", Name: "VW Polo", Category: model.CategoryCity, PricePerDay: 48, Seats: 5, Luggage: 2, Transmission: model.TransmissionAutomatic, FuelType: model.FuelPetrol},
	{ID: "3", Name: "VW Touran", Category: model.CategoryFamily, PricePerDay: 70, Seats: 7, Luggage: 4, Transmission: model.TransmissionAutomatic, FuelType: model.FuelDiesel},
	{ID: "4", Name: "Skoda Octavia", Category: model.CategoryFamily, PricePerDay: 72, Seats: 5, Luggage: 4, Transmission: model.TransmissionManual, FuelType: model.FuelDiesel},
	{ID: "5", Name: "VW Tiguan", Category: model.CategorySUV, PricePerDay: 90, Seats: 5, Luggage: 3, Transmission: model.TransmissionAutomatic, FuelType: model.FuelDiesel},
	{ID: "6", Name: "Volvo XC60", Category: model.CategorySUV, PricePerDay: 95, Seats: 5, Luggage: 4, Transmission: model.TransmissionAutomatic, FuelType: model.FuelHybrid},
	{ID: "7", Name: "BMW Z4", Category: model.CategorySport, PricePerDay: 120, Seats: 2, Luggage: 1, Transmission: model.TransmissionAutomatic, FuelType: model.FuelPetrol},
	{ID: "8", Name: "Audi TT", Category: model.CategorySport, PricePerDay: 125, Seats: 2, Luggage: 1, Transmission: model.TransmissionAutomatic, FuelType: model.FuelPetrol},
	{ID: "9", Name: "Tesla Model 3", Category: model.CategoryECar, PricePerDay: 100, Seats: 5, Luggage: 2, Transmission: model.TransmissionAutomatic, FuelType: model.FuelElectric},
	{ID: "10", Name: "Renault Zoe", Category: model.CategoryECar, PricePerDay: 95, Seats: 4, Luggage: 1, Transmission: model.TransmissionAutomatic, FuelType: model.FuelElectric},
}

var insuranceOptions = []model.InsuranceOption{
	{
		ID:          "basic",
		Name:        "Basic Insurance",
		Description: "Third-party liability coverage. High deductible.",
		PricePerDay: 0,
	},
	{
		ID:          "standard",
		Name:        "Standard Protection",
		Description: "Includes theft protection and collision damage waiver with reduced deductible.",
		PricePerDay: 15,
		Recommended: true,
	},
	{
		ID:          "premium",
		Name:        "Premium Protection",
		Description: "Full coverage with zero deductible. Includes glass and tire protection.",
		PricePerDay: 30,
	},
}

var extraOptions = []model.ExtraOption{
	{ID: "child_seat", Name: "Child Seat", PricePerDay: daily(10), Description: "Safety seat for children up to 4 years"},
	{ID: "additional_driver", Name: "Additional Driver", PricePerDay: daily(12), Description: "Share the driving with another person"},
	{ID: "gps", Name: "GPS Navigation", PricePerDay: daily(8), Description: "Satellite navigation system"},
	{ID: "roof_box", Name: "Roof Box", PricePerDay: daily(15), Description: "Extra storage space for your luggage"},
	{ID: "full_insurance", Name: "Vollkasko", PricePerDay: daily(25), Description: "Comprehensive insurance coverage"},
}

var locations = []string{
	"Zürich Airport",
	"Zürich HB",
	"Bern Station",
	"Geneva Airport",
	"Basel SBB",
	"Luzern Station",
}

var colors = []string{
	"No Preference",
	"Black",
	"White",
	"Silver",
	"Blue",
	"Red",
}
