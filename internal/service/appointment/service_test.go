package appointment

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

type fakeAppointmentRepo struct {
	appointments map[int64]*model.Appointment
	nextID       int64
	createErr    error
	updateErr    error
	completed    map[int64]bool
}

func newFakeAppointmentRepo(appointments ...*model.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{
		appointments: make(map[int64]*model.Appointment),
		completed:    make(map[int64]bool),
	}
	for _, a := range appointments {
		r.appointments[a.ID] = a
		if a.ID > r.nextID {
			r.nextID = a.ID
		}
	}
	return r
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	a.ID = r.nextID
	a.Version = 1
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
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.appointments[a.ID]; !ok {
		return repository.ErrVersionConflict
	}
	r.appointments[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.appointments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) MarkCompleted(_ context.Context, id int64) error {
	r.completed[id] = true
	return nil
}

type fakeOptionLister struct {
	options []model.Option
}

func (r *fakeOptionLister) ListOptions(_ context.Context) ([]model.Option, error) {
	return r.options, nil
}

type fakePatientRepo struct{ fakeOptionLister }

func (r *fakePatientRepo) Create(context.Context, *model.Patient) error { return nil }
func (r *fakePatientRepo) Get(context.Context, int64) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}
func (r *fakePatientRepo) List(context.Context) ([]*model.Patient, error) { return nil, nil }
func (r *fakePatientRepo) Update(context.Context, *model.Patient) error   { return nil }
func (r *fakePatientRepo) Delete(context.Context, int64) error            { return nil }

type fakeDoctorRepo struct{ fakeOptionLister }

func (r *fakeDoctorRepo) Create(context.Context, *model.Doctor) error { return nil }
func (r *fakeDoctorRepo) Get(context.Context, int64) (*model.Doctor, error) {
	return nil, repository.ErrNotFound
}
func (r *fakeDoctorRepo) List(context.Context) ([]*model.Doctor, error) { return nil, nil }
func (r *fakeDoctorRepo) Update(context.Context, *model.Doctor) error   { return nil }
func (r *fakeDoctorRepo) Delete(context.Context, int64) error           { return nil }

type fakeTreatmentRepo struct{ fakeOptionLister }

func (r *fakeTreatmentRepo) Create(context.Context, *model.Treatment) error { return nil }
func (r *fakeTreatmentRepo) Get(context.Context, int64) (*model.Treatment, error) {
	return nil, repository.ErrNotFound
}
func (r *fakeTreatmentRepo) List(context.Context) ([]*model.Treatment, error) { return nil, nil }
func (r *fakeTreatmentRepo) Update(context.Context, *model.Treatment) error   { return nil }
func (r *fakeTreatmentRepo) Delete(context.Context, int64) error              { return nil }

func newService(repo *fakeAppointmentRepo) *Service {
	return NewService(
		repo,
		&fakePatientRepo{fakeOptionLister{options: []model.Option{{ID: 1, Label: "Maria Dimitrova"}}}},
		&fakeDoctorRepo{fakeOptionLister{options: []model.Option{{ID: 1, Label: "Dr. Elena Ivanova"}}}},
		&fakeTreatmentRepo{fakeOptionLister{options: []model.Option{{ID: 1, Label: "Dental Cleaning"}}}},
		nil,
	)
}

func TestListReturnsScheduleOrder(t *testing.T) {
	repo := newFakeAppointmentRepo(
		&model.Appointment{ID: 1, Date: day("2024-01-02"), TimeOfDay: "09:00"},
		&model.Appointment{ID: 2, Date: day("2024-01-02"), TimeOfDay: "08:00"},
		&model.Appointment{ID: 3, Date: day("2024-01-03"), TimeOfDay: "10:00"},
	)
	svc := newService(repo)

	appointments, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, int64(3), appointments[0].ID)
	assert.Equal(t, int64(2), appointments[1].ID)
	assert.Equal(t, int64(1), appointments[2].ID)
}

func TestCreateRejectsMissingReference(t *testing.T) {
	repo := newFakeAppointmentRepo()
	repo.createErr = repository.ErrForeignKey
	svc := newService(repo)

	_, err := svc.Create(context.Background(), &model.AppointmentInput{
		PatientID:   99,
		DoctorID:    1,
		TreatmentID: 1,
		Date:        "2024-06-01",
		TimeOfDay:   "09:30",
	})

	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.FieldsOf(err), "references")
}

func TestCreateParsesDate(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := newService(repo)

	appointment, err := svc.Create(context.Background(), &model.AppointmentInput{
		PatientID:   1,
		DoctorID:    1,
		TreatmentID: 1,
		Date:        "2024-06-01",
		TimeOfDay:   "09:30",
	})

	require.NoError(t, err)
	assert.Equal(t, day("2024-06-01"), appointment.Date)
	assert.Equal(t, "09:30", appointment.TimeOfDay)
}

func TestFormDataDefaults(t *testing.T) {
	svc := newService(newFakeAppointmentRepo())

	form, err := svc.FormData(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppointmentTime, form.Appointment.TimeOfDay)
	assert.True(t, form.Appointment.Date.After(time.Now()))
	assert.Len(t, form.Patients, 1)
	assert.Len(t, form.Doctors, 1)
	assert.Len(t, form.Treatments, 1)
}

func TestUpdateConflictWhenRowChanged(t *testing.T) {
	repo := newFakeAppointmentRepo(&model.Appointment{ID: 1, Date: day("2024-06-01"), TimeOfDay: "09:00", Version: 2})
	repo.updateErr = repository.ErrVersionConflict
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 1, &model.AppointmentInput{
		Version:     1,
		PatientID:   1,
		DoctorID:    1,
		TreatmentID: 1,
		Date:        "2024-06-01",
		TimeOfDay:   "09:00",
	})

	assert.True(t, apperror.IsConflict(err))
}

func TestDeleteIdempotent(t *testing.T) {
	svc := newService(newFakeAppointmentRepo())

	assert.NoError(t, svc.Delete(context.Background(), 5))
}
