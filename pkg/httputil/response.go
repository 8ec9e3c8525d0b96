package httputil

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicware/dental-admin/pkg/apperror"
)

// Response wraps all API responses.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK sends a success response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// Created sends a success response for a newly persisted entity.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

// Error maps an application error to its HTTP response.
func Error(c *gin.Context, err error) {
	ErrorWithForm(c, err, nil)
}

// ErrorWithForm renders a validation failure together with the form data the
// caller needs to re-display the screen (reference lists, preserved input).
// For non-validation errors form is ignored.
func ErrorWithForm(c *gin.Context, err error, form interface{}) {
	status := statusOf(err)
	resp := Response{Status: "error", Message: messageOf(err)}

	if fields := apperror.FieldsOf(err); len(fields) > 0 {
		resp.Errors = fields
	}
	if status == http.StatusUnprocessableEntity && form != nil {
		resp.Data = form
	}

	_ = c.Error(err)
	c.JSON(status, resp)
}

func statusOf(err error) int {
	switch apperror.CodeOf(err) {
	case apperror.CodeNotFound:
		return http.StatusNotFound
	case apperror.CodeValidation:
		return http.StatusUnprocessableEntity
	case apperror.CodeConflict, apperror.CodeReferenced:
		return http.StatusConflict
	case apperror.CodeUnauthorized:
		return http.StatusUnauthorized
	case apperror.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func messageOf(err error) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Code != apperror.CodeInternal {
		return appErr.Message
	}
	return "internal server error"
}
