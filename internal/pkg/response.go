package pkg

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/simp-lee/jobtracker/internal/domain"
)

// Response is the JSON envelope of the view surface. It mirrors the backend
// envelope so clients read both the same way; Fields is only set on
// validation failures.
type Response struct {
	IsSuccess bool              `json:"isSuccess"`
	Errors    []string          `json:"errors"`
	Fields    map[string]string `json:"fields,omitempty"`
	Data      any               `json:"data"`
}

// Success sends a 200 JSON response with the given data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		IsSuccess: true,
		Errors:    []string{},
		Data:      data,
	})
}

// Created sends a 201 JSON response with the given data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{
		IsSuccess: true,
		Errors:    []string{},
		Data:      data,
	})
}

// Error sends a JSON error response. The status comes from
// domain.HTTPStatusCode and the messages from domain.Messages, so domain
// failures carry the backend's messages verbatim.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	resp := Response{
		IsSuccess: false,
		Errors:    domain.Messages(err),
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		resp.Fields = appErr.Fields
	} else {
		resp.Errors = []string{"internal error"}
	}

	c.JSON(status, resp)
}

// ValidationError sends a 400 JSON response with per-field validation error details.
// It detects validator.ValidationErrors and extracts field-level messages.
func ValidationError(c *gin.Context, err error) {
	validationErrorWithType(c, err, nil)
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it automatically sends a ValidationError response and returns false.
// Because obj is available, JSON struct tags are used for field names when possible.
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		validationErrorWithType(c, err, obj)
		return false
	}
	return true
}

// validationErrorWithType sends a 400 validation error response.
// When obj is non-nil, it reflects on the struct to prefer JSON tag names.
func validationErrorWithType(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Malformed body rather than a rule violation.
		c.JSON(http.StatusBadRequest, Response{
			IsSuccess: false,
			Errors:    []string{err.Error()},
		})
		return
	}

	verr := domain.NewValidationError(fieldErrors(ve, buildJSONTagMap(obj)))
	c.JSON(http.StatusBadRequest, Response{
		IsSuccess: false,
		Errors:    domain.Messages(verr),
		Fields:    verr.Fields,
	})
}
