package availability

import (
	"context"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
)

// Calculator produces the remaining slots per treatment for a calendar day.
// Unknown dates are not an error: they simply have no bookings.
type Calculator interface {
	Compute(ctx context.Context, date string) ([]models.AvailabilityView, error)
}

// Strategy names, also used as cache key segments.
const (
	StrategyInProcess   = "inprocess"
	StrategyAggregation = "aggregation"
)

// CatalogReader is the slice of the catalog store the in-process strategy needs.
type CatalogReader interface {
	GetAll(ctx context.Context) ([]models.Treatment, error)
}

// BookingReader is the slice of the booking store the in-process strategy needs.
type BookingReader interface {
	GetByDate(ctx context.Context, appointmentDate string) ([]models.Booking, error)
}

// AvailabilityAggregator computes availability inside the storage layer.
type AvailabilityAggregator interface {
	GetAvailability(ctx context.Context, date string) ([]models.AvailabilityView, error)
}

var (
	_ CatalogReader          = (treatmentRepo.TreatmentRepository)(nil)
	_ AvailabilityAggregator = (treatmentRepo.TreatmentRepository)(nil)
	_ BookingReader          = (bookingRepo.BookingRepository)(nil)
)

// InProcessCalculator loads the catalog and the day's bookings, then joins them in memory.
type InProcessCalculator struct {
	Treatments CatalogReader
	Bookings   BookingReader
}

func NewInProcessCalculator(treatments CatalogReader, bookings BookingReader) *InProcessCalculator {
	return &InProcessCalculator{Treatments: treatments, Bookings: bookings}
}

func (c *InProcessCalculator) Compute(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	treatments, err := c.Treatments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load treatments: %w", err)
	}
	bookings, err := c.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return Compute(treatments, bookings), nil
}

// AggregationCalculator delegates the join and difference to the database.
type AggregationCalculator struct {
	Store AvailabilityAggregator
}

func NewAggregationCalculator(store AvailabilityAggregator) *AggregationCalculator {
	return &AggregationCalculator{Store: store}
}

func (c *AggregationCalculator) Compute(ctx context.Context, date string) ([]models.AvailabilityView, error) {
	views, err := c.Store.GetAvailability(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate availability: %w", err)
	}
	return views, nil
}

// Compute joins treatments with bookings that all belong to one date. The
// result follows the order of treatments.
func Compute(treatments []models.Treatment, bookings []models.Booking) []models.AvailabilityView {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	views := make([]models.AvailabilityView, 0, len(treatments))
	for _, t := range treatments {
		views = append(views, models.AvailabilityView{
			ID:    t.ID,
			Name:  t.Name,
			Price: t.Price,
			Slots: RemainingSlots(t.Slots, booked[t.Name]),
		})
	}
	return views
}

// RemainingSlots returns slots minus booked, keeping the order of slots.
func RemainingSlots(slots []string, booked map[string]struct{}) []string {
	remaining := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, taken := booked[s]; !taken {
			remaining = append(remaining, s)
		}
	}
	return remaining
}
