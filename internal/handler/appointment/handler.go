package appointment

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/clinicware/dental-admin/internal/handler"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

type Service interface {
	List(ctx context.Context) ([]*model.Appointment, error)
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	FormData(ctx context.Context, appointment *model.Appointment) (*model.AppointmentFormData, error)
	Create(ctx context.Context, in *model.AppointmentInput) (*model.Appointment, error)
	Update(ctx context.Context, id int64, in *model.AppointmentInput) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	{
		appointments.GET("", h.List)
		appointments.GET("/new", h.NewForm)
		appointments.POST("", h.Create)
		appointments.GET("/:id", h.Details)
		appointments.GET("/:id/edit", h.EditForm)
		appointments.PUT("/:id", h.Update)
		appointments.GET("/:id/confirm-delete", h.DeleteForm)
		appointments.DELETE("/:id", h.Delete)
	}
}

// List returns the schedule: newest day first, earliest slot first within
// the day.
func (h *Handler) List(c *gin.Context) {
	appointments, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, appointments)
}

func (h *Handler) Details(c *gin.Context) {
	id, err := handler.ParseID(c, "appointment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	appointment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, appointment)
}

// NewForm returns the create-form defaults together with the relationship
// pickers.
func (h *Handler) NewForm(c *gin.Context) {
	form, err := h.svc.FormData(c.Request.Context(), nil)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, form)
}

// Create persists a new appointment. On a validation failure the pickers
// are reloaded so the client can redraw the form.
func (h *Handler) Create(c *gin.Context) {
	var in model.AppointmentInput
	if err := handler.Bind(c, &in); err != nil {
		h.errorWithForm(c, err)
		return
	}

	appointment, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		h.errorWithForm(c, err)
		return
	}
	httputil.Created(c, appointment)
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := handler.ParseID(c, "appointment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	appointment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	form, err := h.svc.FormData(c.Request.Context(), appointment)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, form)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.ParseID(c, "appointment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var in model.AppointmentInput
	if err := handler.Bind(c, &in); err != nil {
		h.errorWithForm(c, err)
		return
	}

	appointment, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		h.errorWithForm(c, err)
		return
	}
	httputil.OK(c, appointment)
}

func (h *Handler) DeleteForm(c *gin.Context) {
	id, err := handler.ParseID(c, "appointment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	appointment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, appointment)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.ParseID(c, "appointment")
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

func (h *Handler) errorWithForm(c *gin.Context, err error) {
	form, formErr := h.svc.FormData(c.Request.Context(), nil)
	if formErr != nil {
		httputil.Error(c, err)
		return
	}
	httputil.ErrorWithForm(c, err, form)
}
