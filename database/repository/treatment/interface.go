package treatmentRepo

import (
	"context"

	"doctorsportal/models"
)

// TreatmentRepository is the read side of the treatment catalog.
type TreatmentRepository interface {
	// GetAll returns the full catalog in catalog order.
	GetAll(ctx context.Context) ([]models.Treatment, error)
	// GetSpecialties returns the treatment names in catalog order.
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
	// GetAvailability computes the remaining slots for date inside the database.
	GetAvailability(ctx context.Context, date string) ([]models.AvailabilityView, error)
	// Upsert inserts or replaces a treatment keyed by name. Used for seeding.
	Upsert(ctx context.Context, t *models.Treatment) error
	EnsureIndexes(ctx context.Context) error
}
