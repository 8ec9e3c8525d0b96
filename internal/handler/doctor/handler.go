package doctor

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/clinicware/dental-admin/internal/handler"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

type Service interface {
	List(ctx context.Context) ([]*model.Doctor, error)
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	Create(ctx context.Context, in *model.DoctorInput) (*model.Doctor, error)
	Update(ctx context.Context, id int64, in *model.DoctorInput) (*model.Doctor, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	doctors := rg.Group("/doctors")
	{
		doctors.GET("", h.List)
		doctors.GET("/new", h.NewForm)
		doctors.POST("", h.Create)
		doctors.GET("/:id", h.Details)
		doctors.GET("/:id/edit", h.EditForm)
		doctors.PUT("/:id", h.Update)
		doctors.GET("/:id/confirm-delete", h.DeleteForm)
		doctors.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	doctors, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, doctors)
}

func (h *Handler) Details(c *gin.Context) {
	id, err := handler.ParseID(c, "doctor")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	doctor, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, doctor)
}

func (h *Handler) NewForm(c *gin.Context) {
	httputil.OK(c, &model.Doctor{})
}

func (h *Handler) Create(c *gin.Context) {
	var in model.DoctorInput
	if err := handler.Bind(c, &in); err != nil {
		httputil.Error(c, err)
		return
	}

	doctor, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, doctor)
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := handler.ParseID(c, "doctor")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	doctor, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, doctor)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.ParseID(c, "doctor")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var in model.DoctorInput
	if err := handler.Bind(c, &in); err != nil {
		httputil.Error(c, err)
		return
	}

	doctor, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, doctor)
}

func (h *Handler) DeleteForm(c *gin.Context) {
	id, err := handler.ParseID(c, "doctor")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	doctor, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, doctor)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.ParseID(c, "doctor")
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
