package patient

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicware/dental-admin/internal/handler"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

type Service interface {
	List(ctx context.Context) ([]*model.Patient, error)
	Get(ctx context.Context, id int64) (*model.Patient, error)
	Create(ctx context.Context, in *model.PatientInput) (*model.Patient, error)
	Update(ctx context.Context, id int64, in *model.PatientInput) (*model.Patient, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	patients := rg.Group("/patients")
	{
		patients.GET("", h.List)
		patients.GET("/new", h.NewForm)
		patients.POST("", h.Create)
		patients.GET("/:id", h.Details)
		patients.GET("/:id/edit", h.EditForm)
		patients.PUT("/:id", h.Update)
		patients.GET("/:id/confirm-delete", h.DeleteForm)
		patients.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	patients, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, patients)
}

func (h *Handler) Details(c *gin.Context) {
	id, err := handler.ParseID(c, "patient")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	patient, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, patient)
}

func (h *Handler) NewForm(c *gin.Context) {
	httputil.OK(c, &model.Patient{
		BirthDate: time.Now().AddDate(-18, 0, 0).Truncate(24 * time.Hour),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var in model.PatientInput
	if err := handler.Bind(c, &in); err != nil {
		httputil.Error(c, err)
		return
	}

	patient, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, patient)
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := handler.ParseID(c, "patient")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	patient, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, patient)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.ParseID(c, "patient")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var in model.PatientInput
	if err := handler.Bind(c, &in); err != nil {
		httputil.Error(c, err)
		return
	}

	patient, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, patient)
}

func (h *Handler) DeleteForm(c *gin.Context) {
	id, err := handler.ParseID(c, "patient")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	patient, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, patient)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.ParseID(c, "patient")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, nil)
}
