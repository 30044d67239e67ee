package availability

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCatalog struct {
	treatments []models.Treatment
	err        error
}

func (f fakeCatalog) GetAll(ctx context.Context) ([]models.Treatment, error) {
	return f.treatments, f.err
}

type fakeBookings struct {
	byDate map[string][]models.Booking
	err    error
	calls  []string
}

func (f *fakeBookings) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	f.calls = append(f.calls, date)
	return f.byDate[date], f.err
}

func sampleCatalog() []models.Treatment {
	return []models.Treatment{
		{ID: primitive.NewObjectID(), Name: "Cleaning", Price: 99, Slots: []string{"9AM", "10AM", "11AM"}},
		{ID: primitive.NewObjectID(), Name: "Surgery", Price: 129, Slots: []string{"1PM", "2PM"}},
	}
}

func TestComputeRemovesBookedSlotsForTheDay(t *testing.T) {
	catalog := sampleCatalog()
	bookings := []models.Booking{{Treatment: "Cleaning", AppointmentDate: "12 Oct 2026", Slot: "10AM"}}

	views := Compute(catalog, bookings)

	require.Len(t, views, 2)
	assert.Equal(t, "Cleaning", views[0].Name)
	assert.Equal(t, []string{"9AM", "11AM"}, views[0].Slots)
	assert.Equal(t, catalog[0].ID, views[0].ID)
	assert.Equal(t, 99.0, views[0].Price)
	assert.Equal(t, []string{"1PM", "2PM"}, views[1].Slots)
}

func TestComputeWithNoBookingsReturnsFullCatalog(t *testing.T) {
	catalog := sampleCatalog()

	views := Compute(catalog, nil)

	require.Len(t, views, 2)
	assert.Equal(t, catalog[0].Slots, views[0].Slots)
	assert.Equal(t, catalog[1].Slots, views[1].Slots)
}

func TestComputeFullyBookedTreatmentHasEmptySlots(t *testing.T) {
	catalog := sampleCatalog()
	bookings := []models.Booking{
		{Treatment: "Surgery", Slot: "1PM"},
		{Treatment: "Surgery", Slot: "2PM"},
	}

	views := Compute(catalog, bookings)

	require.NotNil(t, views[1].Slots)
	assert.Empty(t, views[1].Slots)
}

func TestComputeIgnoresBookingsForUnknownTreatmentsAndSlots(t *testing.T) {
	catalog := sampleCatalog()
	bookings := []models.Booking{
		{Treatment: "Whitening", Slot: "9AM"},
		{Treatment: "Cleaning", Slot: "5PM"},
	}

	views := Compute(catalog, bookings)

	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, views[0].Slots)
}

func TestComputeEmptyCatalog(t *testing.T) {
	views := Compute(nil, []models.Booking{{Treatment: "Cleaning", Slot: "9AM"}})

	require.NotNil(t, views)
	assert.Empty(t, views)
}

func TestRemainingSlotsKeepsOrderAndDuplicates(t *testing.T) {
	booked := map[string]struct{}{"b": {}}

	assert.Equal(t, []string{"c", "a", "c"}, RemainingSlots([]string{"c", "b", "a", "c"}, booked))
	assert.Equal(t, []string{}, RemainingSlots(nil, booked))
	assert.Equal(t, []string{"x"}, RemainingSlots([]string{"x"}, nil))
}

func TestInProcessCalculatorLoadsBookingsOnceForTheDate(t *testing.T) {
	bookings := &fakeBookings{byDate: map[string][]models.Booking{
		"12 Oct 2026": {{Treatment: "Cleaning", Slot: "9AM"}},
		"13 Oct 2026": {{Treatment: "Cleaning", Slot: "11AM"}},
	}}
	calc := NewInProcessCalculator(fakeCatalog{treatments: sampleCatalog()}, bookings)

	views, err := calc.Compute(context.Background(), "12 Oct 2026")

	require.NoError(t, err)
	assert.Equal(t, []string{"10AM", "11AM"}, views[0].Slots)
	assert.Equal(t, []string{"12 Oct 2026"}, bookings.calls)
}

func TestInProcessCalculatorUnknownDateIsNotAnError(t *testing.T) {
	calc := NewInProcessCalculator(fakeCatalog{treatments: sampleCatalog()}, &fakeBookings{})

	views, err := calc.Compute(context.Background(), "not a date")

	require.NoError(t, err)
	assert.Equal(t, []string{"9AM", "10AM", "11AM"}, views[0].Slots)
}

func TestInProcessCalculatorPropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := NewInProcessCalculator(fakeCatalog{err: boom}, &fakeBookings{}).Compute(context.Background(), "d")
	assert.ErrorIs(t, err, boom)

	_, err = NewInProcessCalculator(fakeCatalog{treatments: sampleCatalog()}, &fakeBookings{err: boom}).Compute(context.Background(), "d")
	assert.ErrorIs(t, err, boom)
}

type fakeAggregator struct {
	views []models.AvailabilityView
	err   error
	date  string
}

func (f *fakeAggregator) GetAvailability(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	f.date = date
	return f.views, f.err
}

func TestAggregationCalculatorDelegatesToStore(t *testing.T) {
	store := &fakeAggregator{views: []models.AvailabilityView{{Name: "Cleaning", Slots: []string{"9AM"}}}}

	views, err := NewAggregationCalculator(store).Compute(context.Background(), "12 Oct 2026")

	require.NoError(t, err)
	assert.Equal(t, "12 Oct 2026", store.date)
	assert.Equal(t, store.views, views)

	store.err = errors.New("aggregate failed")
	_, err = NewAggregationCalculator(store).Compute(context.Background(), "12 Oct 2026")
	assert.ErrorIs(t, err, store.err)
}
