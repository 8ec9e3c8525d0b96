package treatment

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/clinicware/dental-admin/internal/handler"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

type Service interface {
	List(ctx context.Context) ([]*model.Treatment, error)
	Get(ctx context.Context, id int64) (*model.Treatment, error)
	Create(ctx context.Context, in *model.TreatmentInput) (*model.Treatment, error)
	Update(ctx context.Context, id int64, in *model.TreatmentInput) (*model.Treatment, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	treatments := rg.Group("/treatments")
	{
		treatments.GET("", h.List)
		treatments.GET("/new", h.NewForm)
		treatments.POST("", h.Create)
		treatments.GET("/:id", h.Details)
		treatments.GET("/:id/edit", h.EditForm)
		treatments.PUT("/:id", h.Update)
		treatments.GET("/:id/confirm-delete", h.DeleteForm)
		treatments.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	treatments, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, treatments)
}

func (h *Handler) Details(c *gin.Context) {
	id, err := handler.ParseID(c, "treatment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	treatment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, treatment)
}

func (h *Handler) NewForm(c *gin.Context) {
	httputil.OK(c, &model.Treatment{
		DurationMinutes: model.DefaultTreatmentDuration,
	})
}

func (h *Handler) Create(c *gin.Context) {
	var in model.TreatmentInput
	if err := handler.Bind(c, &in); err != nil {
		httputil.Error(c, err)
		return
	}

	treatment, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.Created(c, treatment)
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := handler.ParseID(c, "treatment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	treatment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, treatment)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.ParseID(c, "treatment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var in model.TreatmentInput
	if err := handler.Bind(c, &in); err != nil {
		httputil.Error(c, err)
		return
	}

	treatment, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, treatment)
}

func (h *Handler) DeleteForm(c *gin.Context) {
	id, err := handler.ParseID(c, "treatment")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	treatment, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, treatment)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.ParseID(c, "treatment")
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
