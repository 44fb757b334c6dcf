package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrInvalidBody is returned when a request body can not be parsed.
	ErrInvalidBody = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")

	// ErrRequestBodyEmpty is returned when a request body is required but
	// missing.
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")

	// ErrInvalidQuery is returned when query parameters can not be parsed.
	ErrInvalidQuery = errors.New("the query parameters of your request contain invalid or un-parseable data. Please check and try again")
)

// BindData binds a JSON request body to the struct passed in. On failure
// the error response has already been written.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		e := fmt.Errorf("%w: %s", ErrInvalidBody, err.Error())
		NewError(c, http.StatusBadRequest, e)
		return e
	}

	return nil
}

// BindQuery binds the query parameters to the struct passed in. On
// failure the error response has already been written.
func BindQuery(c *gin.Context, data any) error {
	if err := c.ShouldBindQuery(data); err != nil {
		e := fmt.Errorf("%w: %s", ErrInvalidQuery, err.Error())
		NewError(c, http.StatusBadRequest, e)
		return e
	}

	return nil
}
