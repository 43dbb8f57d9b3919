package apperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Stable error-kind tags surfaced to clients.
const (
	KindValidation = "VALIDATION"
	KindNotFound   = "NOT_FOUND"
	KindInternal   = "INTERNAL"
)

// Error is an application error with a stable kind tag. For INTERNAL errors
// the wrapped cause is logged but never serialized to the client.
type Error struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(message string, details map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// FromValidator converts validator.v10 field errors into a VALIDATION error
// with per-field detail.
func FromValidator(err error) *Error {
	details := make(map[string]string)
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fmt.Sprintf("failed on '%s' rule", fe.Tag())
		}
	}
	return &Error{Kind: KindValidation, Message: "invalid request", Details: details, Err: err}
}

// Middleware renders the last error attached to the gin context. Non-Error
// values are treated as INTERNAL so store error text never reaches clients.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := err.(*Error)
		if !ok {
			appErr = Internal("internal server error", err)
		}

		c.JSON(appErr.Status(), gin.H{
			"success": false,
			"error":   appErr,
		})
		c.Abort()
	}
}
