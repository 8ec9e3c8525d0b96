package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/internal/repository"
	"github.com/clinicware/dental-admin/pkg/apperror"
)

type fakeReviewRepo struct {
	reviews   map[int64]*model.Review
	byAppt    map[int64]*model.Review
	nextID    int64
	createErr error
	updateErr error
}

func newFakeReviewRepo(reviews ...*model.Review) *fakeReviewRepo {
	r := &fakeReviewRepo{
		reviews: make(map[int64]*model.Review),
		byAppt:  make(map[int64]*model.Review),
	}
	for _, rv := range reviews {
		r.reviews[rv.ID] = rv
		r.byAppt[rv.AppointmentID] = rv
		if rv.ID > r.nextID {
			r.nextID = rv.ID
		}
	}
	return r
}

func (r *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byAppt[review.AppointmentID]; ok {
		return repository.ErrDuplicate
	}
	r.nextID++
	review.ID = r.nextID
	review.Version = 1
	r.reviews[review.ID] = review
	r.byAppt[review.AppointmentID] = review
	return nil
}

func (r *fakeReviewRepo) Get(_ context.Context, id int64) (*model.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rv, nil
}

func (r *fakeReviewRepo) GetWithRelations(ctx context.Context, id int64) (*model.Review, error) {
	return r.Get(ctx, id)
}

func (r *fakeReviewRepo) ListWithRelations(_ context.Context) ([]*model.Review, error) {
	out := make([]*model.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		out = append(out, rv)
	}
	return out, nil
}

func (r *fakeReviewRepo) GetByAppointment(_ context.Context, appointmentID int64) (*model.Review, error) {
	rv, ok := r.byAppt[appointmentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return rv, nil
}

func (r *fakeReviewRepo) ExistsForAppointment(_ context.Context, appointmentID int64) (bool, error) {
	_, ok := r.byAppt[appointmentID]
	return ok, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *model.Review) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.reviews[review.ID]; !ok {
		return repository.ErrVersionConflict
	}
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id int64) error {
	rv, ok := r.reviews[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.byAppt, rv.AppointmentID)
	delete(r.reviews, id)
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[int64]*model.Appointment
	completed    map[int64]bool
}

func newFakeAppointmentRepo(appointments ...*model.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{
		appointments: make(map[int64]*model.Appointment),
		completed:    make(map[int64]bool),
	}
	for _, a := range appointments {
		r.appointments[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	r.appointments[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id int64) (*model.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (r *fakeAppointmentRepo) GetWithRelations(ctx context.Context, id int64) (*model.Appointment, error) {
	return r.Get(ctx, id)
}

func (r *fakeAppointmentRepo) ListWithRelations(_ context.Context) ([]*model.Appointment, error) {
	out := make([]*model.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, a *model.Appointment) error {
	r.appointments[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) MarkCompleted(_ context.Context, id int64) error {
	r.completed[id] = true
	return nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateMarksAppointmentCompleted(t *testing.T) {
	appointments := newFakeAppointmentRepo(&model.Appointment{ID: 1})
	svc := NewService(newFakeReviewRepo(), appointments, nil)

	review, err := svc.Create(context.Background(), &model.ReviewInput{
		AppointmentID: 1,
		Rating:        4,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	assert.True(t, appointments.completed[1])
}

func TestCreateRejectsSecondReview(t *testing.T) {
	appointments := newFakeAppointmentRepo(&model.Appointment{ID: 1})
	repo := newFakeReviewRepo(&model.Review{ID: 1, AppointmentID: 1, Rating: 5})
	svc := NewService(repo, appointments, nil)

	_, err := svc.Create(context.Background(), &model.ReviewInput{AppointmentID: 1})

	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.FieldsOf(err), "appointment_id")
	assert.False(t, appointments.completed[1])
}

func TestCreateRaceLosesToUniqueConstraint(t *testing.T) {
	// The pre-check passed but the insert hit the unique constraint.
	appointments := newFakeAppointmentRepo(&model.Appointment{ID: 1})
	repo := newFakeReviewRepo()
	repo.createErr = repository.ErrDuplicate
	svc := NewService(repo, appointments, nil)

	_, err := svc.Create(context.Background(), &model.ReviewInput{AppointmentID: 1})

	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.FieldsOf(err), "appointment_id")
}

func TestCreateDefaultsRating(t *testing.T) {
	appointments := newFakeAppointmentRepo(&model.Appointment{ID: 1})
	svc := NewService(newFakeReviewRepo(), appointments, nil)

	review, err := svc.Create(context.Background(), &model.ReviewInput{AppointmentID: 1})

	require.NoError(t, err)
	assert.Equal(t, model.DefaultReviewRating, review.Rating)
}

func TestCreateUnknownAppointment(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.createErr = repository.ErrForeignKey
	svc := NewService(repo, newFakeAppointmentRepo(), nil)

	_, err := svc.Create(context.Background(), &model.ReviewInput{AppointmentID: 42})

	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateIdentityMismatch(t *testing.T) {
	svc := NewService(newFakeReviewRepo(), newFakeAppointmentRepo(), nil)

	_, err := svc.Update(context.Background(), 1, &model.ReviewInput{
		ID:            2,
		Version:       1,
		AppointmentID: 1,
	})

	assert.True(t, apperror.IsNotFound(err))
}

func TestFormDataOrdersAppointmentsBySchedule(t *testing.T) {
	appointments := newFakeAppointmentRepo(
		&model.Appointment{ID: 1, Date: day("2024-01-02"), TimeOfDay: "09:00"},
		&model.Appointment{ID: 2, Date: day("2024-01-03"), TimeOfDay: "08:00"},
	)
	svc := NewService(newFakeReviewRepo(), appointments, nil)

	form, err := svc.FormData(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, form.Appointments, 2)
	assert.Equal(t, int64(2), form.Appointments[0].ID)
	assert.Equal(t, model.DefaultReviewRating, form.Review.Rating)
}

func TestDeleteIdempotent(t *testing.T) {
	svc := NewService(newFakeReviewRepo(), newFakeAppointmentRepo(), nil)

	assert.NoError(t, svc.Delete(context.Background(), 9))
}
