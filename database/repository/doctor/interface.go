package doctorRepo

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorRepository interface {
	GetAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	// Delete removes the doctor and returns the number of deleted documents.
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
