package booking

import (
	"math"

	"github.com/SelinaMogicato/Car4You/model"
)

// Totals are derived values. They are never stored: always recomputed
// from the current BookingState and the catalog.
type Totals struct {
	Days       int     `json:"days"`
	TotalPrice float64 `json:"total_price"`
}

// DeriveTotals is the pricing rule, kept pure so it can be tested on its own.
//
// Days: ceil of the absolute span between the dates in 24h units, floored
// at 1 once both dates are set. The absolute value means a return before
// pickup still charges a positive day count; that tolerance is intentional
// and covered by tests, callers wanting to reject inverted ranges must do
// so before mutating the state.
//
// Total: (vehicle + insurance + priced extras) per-day rates times days.
// Ids that miss the catalog contribute zero instead of failing.
func DeriveTotals(st *model.BookingState, cat Catalog) Totals {
	if st.PickupDate == nil || st.ReturnDate == nil {
		return Totals{}
	}

	span := st.ReturnDate.Sub(*st.PickupDate)
	if span < 0 {
		span = -span
	}
	days := int(math.Ceil(span.Hours() / 24))
	if days < 1 {
		days = 1
	}

	if st.SelectedVehicle == nil {
		return Totals{Days: days}
	}

	rate := st.SelectedVehicle.PricePerDay
	if ins, ok := cat.InsuranceByID(st.SelectedInsurance); ok {
		rate += ins.PricePerDay
	}
	for _, id := range st.SelectedExtras {
		if ex, ok := cat.ExtraByID(id); ok {
			if p, priced := ex.DailyRate(); priced {
				rate += p
			}
		}
	}

	return Totals{Days: days, TotalPrice: rate * float64(days)}
}

// StepValid gates forward navigation out of a wizard step.
func StepValid(st *model.BookingState, step model.Step) bool {
	switch step {
	case model.StepDetails:
		return st.PickupLocation != "" && st.ReturnLocation != "" &&
			st.PickupDate != nil && st.ReturnDate != nil
	case model.StepPreferences:
		// price range always has a default
		return true
	case model.StepVehicle:
		return st.SelectedVehicle != nil
	case model.StepExtras:
		return st.SelectedInsurance != ""
	case model.StepSummary:
		// completion itself is gated by contact validation, not navigation
		return true
	}
	return false
}
