package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	"service_not_found":     "Service not found",
	"invalid_service":       "Invalid service",
	"time_conflict":         "Time slot not available",
	"invalid_date":          "Invalid date",
	"invalid_starts_at":     "Invalid start timestamp",
	"invalid_duration":      "Duration must be greater than zero",
	"appointment_not_found": "Appointment not found",
	"invalid_status":        "Unknown appointment status",
	"invalid_state":         "Status transition not allowed",
	"invalid_working_hours": "Working hours are malformed",
	"invalid_request":       "Invalid request",
	"invalid_id":            "Invalid id",
	"invalid_year":          "Invalid year",
	"invalid_month":         "Invalid month",
	"invalid_time_range":    "Start time must be before end time",
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond writes err using the status that matches its kind.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		_ = c.Error(err)
		Internal(c, "internal_error", "Internal error")
		return
	}

	msg, ok := messages[be.Code]
	if !ok {
		msg = be.Code
	}

	switch be.Kind {
	case KindNotFound:
		NotFound(c, be.Code, msg)
	case KindConflict:
		Conflict(c, be.Code, msg)
	default:
		BadRequest(c, be.Code, msg)
	}
}
