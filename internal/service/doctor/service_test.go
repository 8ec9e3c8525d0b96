package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/pkg/apperror"
)

type fakeRepo struct {
	doctors   map[int64]*model.Doctor
	nextID    int64
	updateErr error
	deleteErr error
}

func newFakeRepo(doctors ...*model.Doctor) *fakeRepo {
	r := &fakeRepo{doctors: make(map[int64]*model.Doctor)}
	for _, d := range doctors {
		r.doctors[d.ID] = d
		if d.ID > r.nextID {
			r.nextID = d.ID
		}
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, doctor *model.Doctor) error {
	r.nextID++
	doctor.ID = r.nextID
	doctor.Version = 1
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*model.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return d, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeRepo) ListOptions(_ context.Context) ([]model.Option, error) {
	var out []model.Option
	for _, d := range r.doctors {
		out = append(out, model.Option{ID: d.ID, Label: d.FullName})
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, doctor *model.Doctor) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	existing, ok := r.doctors[doctor.ID]
	if !ok {
		return repository.ErrVersionConflict
	}
	if existing.Version != doctor.Version {
		return repository.ErrVersionConflict
	}
	doctor.Version++
	r.doctors[doctor.ID] = doctor
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.doctors[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.doctors, id)
	return nil
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	doctor, err := svc.Create(context.Background(), &model.DoctorInput{
		FullName:  "Dr. Elena Ivanova",
		Specialty: "Orthodontics",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), doctor.ID)
	assert.Equal(t, int64(1), doctor.Version)
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.Get(context.Background(), 42)

	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateIdentityMismatch(t *testing.T) {
	repo := newFakeRepo(&model.Doctor{ID: 1, Version: 1, FullName: "Dr. A"})
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), 1, &model.DoctorInput{
		ID:        2,
		Version:   1,
		FullName:  "Dr. A",
		Specialty: "Surgery",
	})

	// A body id that disagrees with the route id is reported as a missing
	// resource, not a validation failure.
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateRequiresVersion(t *testing.T) {
	svc := NewService(newFakeRepo(&model.Doctor{ID: 1, Version: 1}), nil)

	_, err := svc.Update(context.Background(), 1, &model.DoctorInput{
		FullName:  "Dr. A",
		Specialty: "Surgery",
	})

	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.FieldsOf(err), "version")
}

func TestUpdateStaleVersionConflicts(t *testing.T) {
	repo := newFakeRepo(&model.Doctor{ID: 1, Version: 3})
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), 1, &model.DoctorInput{
		Version:   2,
		FullName:  "Dr. A",
		Specialty: "Surgery",
	})

	assert.True(t, apperror.IsConflict(err))
}

func TestUpdateVanishedRowIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.updateErr = repository.ErrVersionConflict
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), 1, &model.DoctorInput{
		Version:   1,
		FullName:  "Dr. A",
		Specialty: "Surgery",
	})

	// The zero-rows result was caused by deletion, not by a stale version.
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteIdempotent(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	err := svc.Delete(context.Background(), 99)

	assert.NoError(t, err)
}

func TestDeleteRestricted(t *testing.T) {
	repo := newFakeRepo(&model.Doctor{ID: 1, Version: 1})
	repo.deleteErr = repository.ErrRestricted
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), 1)

	assert.True(t, apperror.IsReferenced(err))
	require.Contains(t, repo.doctors, int64(1))
}
