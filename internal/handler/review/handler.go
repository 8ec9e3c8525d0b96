package review

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/clinicware/dental-admin/internal/handler"
	"github.com/clinicware/dental-admin/internal/model"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

type Service interface {
	List(ctx context.Context) ([]*model.Review, error)
	Get(ctx context.Context, id int64) (*model.Review, error)
	FormData(ctx context.Context, review *model.Review) (*model.ReviewFormData, error)
	Create(ctx context.Context, in *model.ReviewInput) (*model.Review, error)
	Update(ctx context.Context, id int64, in *model.ReviewInput) (*model.Review, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.GET("/new", h.NewForm)
		reviews.POST("", h.Create)
		reviews.GET("/:id", h.Details)
		reviews.GET("/:id/edit", h.EditForm)
		reviews.PUT("/:id", h.Update)
		reviews.GET("/:id/confirm-delete", h.DeleteForm)
		reviews.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	reviews, err := h.svc.List(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, reviews)
}

func (h *Handler) Details(c *gin.Context) {
	id, err := handler.ParseID(c, "review")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	review, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, review)
}

// NewForm returns the create-form defaults together with the appointment
// picker.
func (h *Handler) NewForm(c *gin.Context) {
	form, err := h.svc.FormData(c.Request.Context(), nil)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, form)
}

// Create persists a review; a duplicate for the same appointment comes
// back as a field error with the picker reloaded.
func (h *Handler) Create(c *gin.Context) {
	var in model.ReviewInput
	if err := handler.Bind(c, &in); err != nil {
		h.errorWithForm(c, err)
		return
	}

	review, err := h.svc.Create(c.Request.Context(), &in)
	if err != nil {
		h.errorWithForm(c, err)
		return
	}
	httputil.Created(c, review)
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := handler.ParseID(c, "review")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	review, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}

	form, err := h.svc.FormData(c.Request.Context(), review)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, form)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := handler.ParseID(c, "review")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	var in model.ReviewInput
	if err := handler.Bind(c, &in); err != nil {
		h.errorWithForm(c, err)
		return
	}

	review, err := h.svc.Update(c.Request.Context(), id, &in)
	if err != nil {
		h.errorWithForm(c, err)
		return
	}
	httputil.OK(c, review)
}

func (h *Handler) DeleteForm(c *gin.Context) {
	id, err := handler.ParseID(c, "review")
	if err != nil {
		httputil.Error(c, err)
		return
	}

	review, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	httputil.OK(c, review)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := handler.ParseID(c, "review")
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
