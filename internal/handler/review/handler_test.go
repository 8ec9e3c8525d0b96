package review

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/apperror"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

type fakeService struct {
	createErr error
}

func (s *fakeService) List(context.Context) ([]*model.Review, error) { return nil, nil }

func (s *fakeService) Get(_ context.Context, id int64) (*model.Review, error) {
	return nil, apperror.NotFound("review")
}

func (s *fakeService) FormData(context.Context, *model.Review) (*model.ReviewFormData, error) {
	return &model.ReviewFormData{
		Review:       &model.Review{Rating: model.DefaultReviewRating},
		Appointments: []model.Option{{ID: 1, Label: "2024-03-15 14:30 — Maria / Dr. A / Cleaning"}},
	}, nil
}

func (s *fakeService) Create(_ context.Context, in *model.ReviewInput) (*model.Review, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &model.Review{ID: 1, Version: 1, AppointmentID: in.AppointmentID, Rating: in.Rating}, nil
}

func (s *fakeService) Update(context.Context, int64, *model.ReviewInput) (*model.Review, error) {
	return nil, apperror.NotFound("review")
}

func (s *fakeService) Delete(context.Context, int64) error { return nil }

func setup(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestCreateDuplicateReturnsFormData(t *testing.T) {
	svc := &fakeService{createErr: apperror.ValidationField("appointment_id", "this appointment already has a review")}
	engine := setup(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews",
		strings.NewReader(`{"appointment_id":1,"rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp httputil.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "appointment_id")
	// The picker comes back so the client can redraw the form.
	assert.NotNil(t, resp.Data)
}

func TestNewFormIncludesPicker(t *testing.T) {
	engine := setup(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reviews/new", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data model.ReviewFormData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.DefaultReviewRating, resp.Data.Review.Rating)
	assert.Len(t, resp.Data.Appointments, 1)
}

func TestCreateOK(t *testing.T) {
	engine := setup(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews",
		strings.NewReader(`{"appointment_id":1,"rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
