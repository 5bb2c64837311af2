package httperr

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

type businessMapping struct {
	status  int
	message string
}

var businessStatus = map[string]businessMapping{
	"duplicate_identifier":   {http.StatusConflict, "This dress number is already registered."},
	"has_active_bookings":    {http.StatusConflict, "A dress with active bookings cannot be deleted."},
	"booking_conflict":       {http.StatusConflict, "This dress is already booked for the requested period."},
	"not_active":             {http.StatusConflict, "This booking is not active."},
	"dress_not_found":        {http.StatusNotFound, "Dress not found."},
	"booking_not_found":      {http.StatusNotFound, "Booking not found."},
	"invalid_date":           {http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD."},
	"invalid_date_range":     {http.StatusBadRequest, "The return date cannot be before the booking date."},
	"customer_name_required": {http.StatusBadRequest, "Customer name is required."},
	"dress_number_required":  {http.StatusBadRequest, "Dress number is required."},
	"invalid_amount":         {http.StatusBadRequest, "Amounts must be non-negative numbers."},
	"invalid_size":           {http.StatusBadRequest, "Unknown size."},
	"invalid_email":          {http.StatusBadRequest, "Invalid customer email."},
	"invalid_image":          {http.StatusBadRequest, "Only png, jpg, jpeg, gif and webp images are accepted."},
	"upload_too_large":       {http.StatusRequestEntityTooLarge, "The upload exceeds the size limit."},
	"invalid_credentials":    {http.StatusUnauthorized, "Invalid email or password."},
	"invalid_token":          {http.StatusUnauthorized, "Your session has expired, please log in again."},
}

// Message returns the operator-facing text for a business code.
func Message(code string) string {
	if m, ok := businessStatus[code]; ok {
		return m.message
	}
	return "Unexpected error."
}

// FromError writes err as JSON: business errors get their mapped status,
// anything else is logged and reported as a 500 with fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode string) {
	if code := CodeOf(err); code != "" {
		if m, ok := businessStatus[code]; ok {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}

	log.Printf("%s: %v", fallbackCode, err)
	Internal(c, fallbackCode, "Unexpected error.")
}
