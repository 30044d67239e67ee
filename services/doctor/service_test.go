package doctor

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryDoctors struct {
	doctors map[primitive.ObjectID]models.Doctor
}

func (m *memoryDoctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	out := make([]models.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (m *memoryDoctors) Create(ctx context.Context, d *models.Doctor) (primitive.ObjectID, error) {
	d.ID = primitive.NewObjectID()
	m.doctors[d.ID] = *d
	return d.ID, nil
}

func (m *memoryDoctors) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

func TestDoctorRoster(t *testing.T) {
	svc := &DefaultDoctorService{Repo: &memoryDoctors{doctors: make(map[primitive.ObjectID]models.Doctor)}}
	ctx := context.Background()

	id, err := svc.AddDoctor(ctx, models.Doctor{Name: "Dr. Rahman", Email: "dr@x.io", Specialty: "Oral Surgery"})
	require.NoError(t, err)

	doctors, err := svc.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Oral Surgery", doctors[0].Specialty)

	deleted, err := svc.RemoveDoctor(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = svc.RemoveDoctor(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = svc.RemoveDoctor(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidDoctorID)
}
