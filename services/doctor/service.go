package doctor

import (
	"context"
	"errors"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidDoctorID = errors.New("invalid doctor id")

// DoctorService manages the doctor roster. All callers are admins.
type DoctorService interface {
	AddDoctor(ctx context.Context, doctor models.Doctor) (string, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	RemoveDoctor(ctx context.Context, id string) (int64, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) AddDoctor(ctx context.Context, doctor models.Doctor) (string, error) {
	id, err := s.Repo.Create(ctx, &doctor)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *DefaultDoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultDoctorService) RemoveDoctor(ctx context.Context, id string) (int64, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidDoctorID
	}
	return s.Repo.Delete(ctx, objID)
}
