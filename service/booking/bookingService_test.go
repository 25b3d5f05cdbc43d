package booking_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SelinaMogicato/Car4You/model"
	catalogrepo "github.com/SelinaMogicato/Car4You/repository/catalog"
	sessionrepo "github.com/SelinaMogicato/Car4You/repository/session"
	bookingsvc "github.com/SelinaMogicato/Car4You/service/booking"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (bookingsvc.Service, string) {
	t.Helper()
	svc := bookingsvc.New(sessionrepo.New(), catalogrepo.New())
	sid, snap, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sid)
	require.Equal(t, *model.NewBookingState(), snap.State)
	return svc, sid
}

func TestUnknownSession(t *testing.T) {
	svc := bookingsvc.New(sessionrepo.New(), catalogrepo.New())

	_, err := svc.Snapshot(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, bookingsvc.ErrSessionNotFound, bookingsvc.Code(err))

	_, err = svc.SetVehicle(context.Background(), "missing", "1")
	require.Equal(t, bookingsvc.ErrSessionNotFound, bookingsvc.Code(err))

	err = svc.EndSession(context.Background(), "missing")
	require.Equal(t, bookingsvc.ErrSessionNotFound, bookingsvc.Code(err))
}

func TestSetVehicle(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	snap, err := svc.SetVehicle(ctx, sid, "9")
	require.NoError(t, err)
	require.NotNil(t, snap.State.SelectedVehicle)
	require.Equal(t, "Tesla Model 3", snap.State.SelectedVehicle.Name)

	// unknown id degrades to no selection
	snap, err = svc.SetVehicle(ctx, sid, "999")
	require.NoError(t, err)
	require.Nil(t, snap.State.SelectedVehicle)
	require.Zero(t, snap.Totals.TotalPrice)
}

func TestMutationRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	snap, err := svc.SetDates(ctx, sid,
		time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 2, snap.Totals.Days)
	require.Zero(t, snap.Totals.TotalPrice)

	snap, err = svc.SetVehicle(ctx, sid, "5") // VW Tiguan, 90/day
	require.NoError(t, err)
	require.EqualValues(t, 180, snap.Totals.TotalPrice)

	snap, err = svc.SetInsurance(ctx, sid, "standard")
	require.NoError(t, err)
	require.EqualValues(t, (90+15)*2, snap.Totals.TotalPrice)

	snap, err = svc.ToggleExtra(ctx, sid, "gps")
	require.NoError(t, err)
	require.EqualValues(t, (90+15+8)*2, snap.Totals.TotalPrice)
}

func TestToggleExtra_IdempotentPair(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	before, err := svc.Snapshot(ctx, sid)
	require.NoError(t, err)
	require.NotContains(t, before.State.SelectedExtras, "gps")

	snap, err := svc.ToggleExtra(ctx, sid, "gps")
	require.NoError(t, err)
	require.Equal(t, []string{"gps"}, snap.State.SelectedExtras)

	// toggling again must not duplicate
	snap, err = svc.ToggleExtra(ctx, sid, "gps")
	require.NoError(t, err)
	require.Equal(t, before.State.SelectedExtras, snap.State.SelectedExtras)
}

func TestSetPriceRange_SwapsInvertedBounds(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	snap, err := svc.SetPriceRange(ctx, sid, 150, 60)
	require.NoError(t, err)
	require.Equal(t, model.PriceRange{Min: 60, Max: 150}, snap.State.PriceRange)
}

func TestPreferenceMutators(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	snap, err := svc.SetTransmission(ctx, sid, model.TransmissionAutomatic)
	require.NoError(t, err)
	require.Equal(t, model.TransmissionAutomatic, snap.State.TransmissionPreference)

	snap, err = svc.SetColor(ctx, sid, "Red")
	require.NoError(t, err)
	require.Equal(t, "Red", snap.State.ColorPreference)

	snap, err = svc.SetColor(ctx, sid, "")
	require.NoError(t, err)
	require.Equal(t, model.NoColorPreference, snap.State.ColorPreference)

	snap, err = svc.SetPriority(ctx, sid, model.PrioritySustainability)
	require.NoError(t, err)
	require.Equal(t, model.PrioritySustainability, snap.State.Priority)

	snap, err = svc.SetLocations(ctx, sid, "Zürich Airport", "Geneva Airport")
	require.NoError(t, err)
	require.Equal(t, "Zürich Airport", snap.State.PickupLocation)
	require.Equal(t, "Geneva Airport", snap.State.ReturnLocation)
}

func TestReset_RestoresDefaults(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	_, err := svc.SetVehicle(ctx, sid, "3")
	require.NoError(t, err)
	_, err = svc.SetLocations(ctx, sid, "Basel SBB", "Basel SBB")
	require.NoError(t, err)
	_, err = svc.SetDates(ctx, sid,
		time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.ToggleExtra(ctx, sid, "roof_box")
	require.NoError(t, err)
	_, err = svc.SetContact(ctx, sid, model.ContactDetails{FirstName: "Mia", LastName: "Keller", Email: "mia@example.com", Phone: "+41791234567"})
	require.NoError(t, err)

	snap, err := svc.Reset(ctx, sid)
	require.NoError(t, err)
	require.Equal(t, *model.NewBookingState(), snap.State)
	require.Zero(t, snap.Totals.Days)
	require.Zero(t, snap.Totals.TotalPrice)
}

func completeBooking(t *testing.T, svc bookingsvc.Service, sid string) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.SetLocations(ctx, sid, "Zürich Airport", "Zürich Airport")
	require.NoError(t, err)
	_, err = svc.SetDates(ctx, sid,
		time.Date(2024, time.July, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SetVehicle(ctx, sid, "1")
	require.NoError(t, err)
	_, err = svc.SetInsurance(ctx, sid, "standard")
	require.NoError(t, err)
	_, err = svc.SetContact(ctx, sid, model.ContactDetails{
		FirstName: "Mia", LastName: "Keller",
		Email: "mia@example.com", Phone: "+41791234567",
	})
	require.NoError(t, err)
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	_, err := svc.Confirm(ctx, sid)
	require.Error(t, err)
	require.Equal(t, bookingsvc.ErrIncomplete, bookingsvc.Code(err))

	completeBooking(t, svc, sid)

	conf, err := svc.Confirm(ctx, sid)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(conf.Reference, "C4Y-"))
	require.Equal(t, 3, conf.Totals.Days)
	require.EqualValues(t, (45+15)*3, conf.Totals.TotalPrice)
	require.False(t, conf.ConfirmedAt.IsZero())
}

func TestConfirm_MissingContact(t *testing.T) {
	ctx := context.Background()
	svc, sid := newService(t)

	completeBooking(t, svc, sid)
	_, err := svc.SetContact(ctx, sid, model.ContactDetails{FirstName: "Mia"})
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, sid)
	require.Equal(t, bookingsvc.ErrIncomplete, bookingsvc.Code(err))
}

// ----- save failure propagation, mocked sessions -----

type sessionsMock struct {
	createFn func(ctx context.Context) (string, *model.BookingState, error)
	getFn    func(ctx context.Context, id string) (*model.BookingState, error)
	saveFn   func(ctx context.Context, id string, st *model.BookingState) error
	deleteFn func(ctx context.Context, id string) error
}

var _ bookingsvc.Sessions = (*sessionsMock)(nil)

func (m *sessionsMock) Create(ctx context.Context) (string, *model.BookingState, error) {
	return m.createFn(ctx)
}
func (m *sessionsMock) Get(ctx context.Context, id string) (*model.BookingState, error) {
	return m.getFn(ctx, id)
}
func (m *sessionsMock) Save(ctx context.Context, id string, st *model.BookingState) error {
	return m.saveFn(ctx, id, st)
}
func (m *sessionsMock) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func TestSaveErrorPropagates(t *testing.T) {
	boom := errors.New("store down")
	m := &sessionsMock{
		getFn: func(ctx context.Context, id string) (*model.BookingState, error) {
			return model.NewBookingState(), nil
		},
		saveFn: func(ctx context.Context, id string, st *model.BookingState) error {
			return boom
		},
	}
	svc := bookingsvc.New(m, catalogrepo.New())

	_, err := svc.SetColor(context.Background(), "sid", "Blue")
	require.ErrorIs(t, err, boom)
	require.Equal(t, bookingsvc.ErrCode(""), bookingsvc.Code(err))
}
