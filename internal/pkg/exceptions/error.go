package exceptions

import (
	"doctorsportal-service/internal/pkg/constvars"
	"fmt"
	"runtime"
	"strings"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"dev_message,omitempty"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// IsStatus reports whether err is a CustomError carrying the given HTTP status.
func IsStatus(err error, statusCode int) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.StatusCode == statusCode
}

// IsConflict reports whether err represents a booking/slot conflict.
func IsConflict(err error) bool {
	return IsStatus(err, constvars.StatusConflict)
}

// IsNotFound reports whether err represents a missing referenced entity.
func IsNotFound(err error) bool {
	return IsStatus(err, constvars.StatusNotFound)
}

// IsDuplicateBooking reports whether err is the one-booking-per-(patient,
// treatment, date) rejection, as opposed to any other conflict.
func IsDuplicateBooking(err error) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.StatusCode == constvars.StatusConflict &&
		strings.HasPrefix(customErr.DevMessage, constvars.ErrDevDuplicateBooking)
}
