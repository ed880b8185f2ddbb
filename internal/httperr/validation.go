package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ValidationError carries field-level messages so handlers can return the
// enumerated validationErrors array the clients expect. Distinct from
// BusinessError: a business rule failed vs. the request itself was bad.
type ValidationError struct {
	Code   string
	Fields []string
}

func (e ValidationError) Error() string {
	return e.Code + ": " + strings.Join(e.Fields, "; ")
}

func ErrValidation(code string, fields ...string) error {
	return ValidationError{Code: code, Fields: fields}
}

func AsValidation(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}

func WriteValidation(c *gin.Context, ve ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":            ve.Code,
		"details":          strings.Join(ve.Fields, "; "),
		"validationErrors": ve.Fields,
	})
}
