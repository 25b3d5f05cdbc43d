package booking_test

import (
	"testing"
	"time"

	"github.com/SelinaMogicato/Car4You/model"
	catalogrepo "github.com/SelinaMogicato/Car4You/repository/catalog"
	bookingsvc "github.com/SelinaMogicato/Car4You/service/booking"

	"github.com/stretchr/testify/require"
)

func ts(y int, m time.Month, d, h int) *time.Time {
	t := time.Date(y, m, d, h, 0, 0, 0, time.UTC)
	return &t
}

func vehicle(t *testing.T, id string) *model.Vehicle {
	t.Helper()
	v, ok := catalogrepo.New().VehicleByID(id)
	require.True(t, ok)
	return &v
}

func TestDeriveTotals_NoDates(t *testing.T) {
	cat := catalogrepo.New()
	st := model.NewBookingState()
	st.SelectedVehicle = vehicle(t, "1")

	got := bookingsvc.DeriveTotals(st, cat)
	require.Zero(t, got.Days)
	require.Zero(t, got.TotalPrice)

	st.PickupDate = ts(2024, time.January, 1, 10)
	got = bookingsvc.DeriveTotals(st, cat)
	require.Zero(t, got.Days, "one missing date still means zero days")
}

func TestDeriveTotals_DayRounding(t *testing.T) {
	cat := catalogrepo.New()
	st := model.NewBookingState()
	st.SelectedVehicle = vehicle(t, "1")

	// 4 hour span charges the one-day minimum
	st.PickupDate = ts(2024, time.January, 1, 10)
	st.ReturnDate = ts(2024, time.January, 1, 14)
	require.Equal(t, 1, bookingsvc.DeriveTotals(st, cat).Days)

	// exactly 48h
	st.ReturnDate = ts(2024, time.January, 3, 10)
	require.Equal(t, 2, bookingsvc.DeriveTotals(st, cat).Days)

	// 48h and one minute rounds up
	rt := time.Date(2024, time.January, 3, 10, 1, 0, 0, time.UTC)
	st.ReturnDate = &rt
	require.Equal(t, 3, bookingsvc.DeriveTotals(st, cat).Days)
}

func TestDeriveTotals_PriceAdditivity(t *testing.T) {
	cat := catalogrepo.New()
	st := model.NewBookingState()
	st.SelectedVehicle = vehicle(t, "1") // Fiat 500, 45/day
	st.PickupDate = ts(2024, time.January, 1, 10)
	st.ReturnDate = ts(2024, time.January, 4, 10)   // 3 days
	st.SelectedInsurance = "standard"               // 15/day
	st.SelectedExtras = []string{"gps", "roof_box"} // 8 + 15/day

	got := bookingsvc.DeriveTotals(st, cat)
	require.Equal(t, 3, got.Days)
	require.EqualValues(t, (45+15+8+15)*3, got.TotalPrice)
}

func TestDeriveTotals_ZeroWithoutVehicle(t *testing.T) {
	cat := catalogrepo.New()
	st := model.NewBookingState()
	st.PickupDate = ts(2024, time.January, 1, 10)
	st.ReturnDate = ts(2024, time.January, 4, 10)
	st.SelectedInsurance = "premium"
	st.SelectedExtras = []string{"gps", "roof_box", "child_seat"}

	got := bookingsvc.DeriveTotals(st, cat)
	require.Equal(t, 3, got.Days)
	require.Zero(t, got.TotalPrice)
}

func TestDeriveTotals_InvertedDates(t *testing.T) {
	cat := catalogrepo.New()
	st := model.NewBookingState()
	st.SelectedVehicle = vehicle(t, "1")
	st.PickupDate = ts(2024, time.January, 3, 10)
	st.ReturnDate = ts(2024, time.January, 1, 10)

	// absolute-value duration: tolerated, not rejected
	got := bookingsvc.DeriveTotals(st, cat)
	require.Equal(t, 2, got.Days)
	require.EqualValues(t, 45*2, got.TotalPrice)
}

func TestDeriveTotals_UnknownIDsContributeZero(t *testing.T) {
	cat := catalogrepo.New()
	st := model.NewBookingState()
	st.SelectedVehicle = vehicle(t, "1")
	st.PickupDate = ts(2024, time.January, 1, 10)
	st.ReturnDate = ts(2024, time.January, 2, 10)
	st.SelectedInsurance = "platinum_unicorn"
	st.SelectedExtras = []string{"jetpack"}

	got := bookingsvc.DeriveTotals(st, cat)
	require.EqualValues(t, 45, got.TotalPrice)
}

func TestStepValid(t *testing.T) {
	st := model.NewBookingState()

	require.False(t, bookingsvc.StepValid(st, model.StepDetails))
	require.True(t, bookingsvc.StepValid(st, model.StepPreferences))
	require.False(t, bookingsvc.StepValid(st, model.StepVehicle))
	require.True(t, bookingsvc.StepValid(st, model.StepExtras), "basic tier is preselected")
	require.True(t, bookingsvc.StepValid(st, model.StepSummary))
	require.False(t, bookingsvc.StepValid(st, model.Step("checkout")))

	st.PickupLocation = "Zürich Airport"
	st.ReturnLocation = "Bern Station"
	st.PickupDate = ts(2024, time.January, 1, 10)
	require.False(t, bookingsvc.StepValid(st, model.StepDetails), "return date still missing")
	st.ReturnDate = ts(2024, time.January, 2, 10)
	require.True(t, bookingsvc.StepValid(st, model.StepDetails))

	st.SelectedVehicle = vehicle(t, "2")
	require.True(t, bookingsvc.StepValid(st, model.StepVehicle))

	st.SelectedInsurance = ""
	require.False(t, bookingsvc.StepValid(st, model.StepExtras))
}
