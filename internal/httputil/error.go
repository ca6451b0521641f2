// Package httputil implements request and error helpers for the HTTP layer.
package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// NewError writes an error response with a body.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// NewErrorString writes an error response from a plain message.
func NewErrorString(c *gin.Context, status int, msg string) {
	c.JSON(status, HTTPError{
		Error: msg,
	})
}

// ErrorHandler translates errors from the database layer into responses.
func ErrorHandler(c *gin.Context, err error) {
	// No record found => 404
	if errors.Is(err, gorm.ErrRecordNotFound) {
		NewError(c, http.StatusNotFound, errors.New("there is no resource for the ID you specified"))

		// Database error
	} else if reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}) {
		code, msg := DBErrorMessage(err)
		NewError(c, code, errors.New(msg))

		// End of file reached when reading
	} else if errors.Is(io.EOF, err) {
		NewError(c, http.StatusBadRequest, errors.New("the request body must not be empty"))

		// Time could not be parsed, the error string tells the problem well
	} else if reflect.TypeOf(err) == reflect.TypeOf(&time.ParseError{}) {
		NewError(c, http.StatusBadRequest, err)

		// All other errors
	} else {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
	}
}

// DBErrorMessage returns a status code and message appropriate to the
// database error that occurred.
func DBErrorMessage(err error) (int, string) {
	// Account numbers and names identify accounts towards the humans
	// working with them, duplicates would make the mapping screens ambiguous
	if strings.Contains(err.Error(), "UNIQUE constraint failed: source_accounts.number") {
		return http.StatusBadRequest, "the source account number must be unique"
	} else if strings.Contains(err.Error(), "UNIQUE constraint failed: basis_accounts.name") {
		return http.StatusBadRequest, "the basis account name must be unique"
	} else if strings.Contains(err.Error(), "UNIQUE constraint failed: target_accounts.number") {
		return http.StatusBadRequest, "the target account number must be unique"

		// One allocation per source account
	} else if strings.Contains(err.Error(), "UNIQUE constraint failed: ratio_allocations.source_account_id") {
		return http.StatusBadRequest, "there already is an allocation for this source account"

		// General message when a field references a non-existing resource
	} else if strings.Contains(err.Error(), "constraint failed: FOREIGN KEY constraint failed") {
		return http.StatusBadRequest, "there is no resource for the ID you specified in the reference to another resource"
	}

	log.Error().Msgf("%T: %v", err, err.Error())
	return http.StatusInternalServerError, "a database error occurred during your request"
}
