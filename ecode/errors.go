package ecode

import (
	"fmt"
	"net/http"
)

const (
	OK                 = 0
	RequestErr         = -400
	NotFound           = -404
	PayloadTooLarge    = -413
	ServerErr          = -500
	ServiceUnavailable = -503
)

var messages = map[int]string{
	OK:                 "ok",
	RequestErr:         "Invalid request",
	NotFound:           "Not found",
	PayloadTooLarge:    "Request entity too large",
	ServerErr:          "Internal server error",
	ServiceUnavailable: "Service unavailable",
}

var statuses = map[int]int{
	OK:                 http.StatusOK,
	RequestErr:         http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	PayloadTooLarge:    http.StatusRequestEntityTooLarge,
	ServerErr:          http.StatusInternalServerError,
	ServiceUnavailable: http.StatusServiceUnavailable,
}

// Text returns the message for the code, or a generic one for unknown codes.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code %d", code)
}

// ToHTTPStatus maps a code to the HTTP status it is reported with.
func ToHTTPStatus(code int) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

const (
	requiredMsg = "required"
	invalidMsg  = "invalid"
	notMatchMsg = "must match"
)

// FieldIsRequired returns field required message
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns field invalid message
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}

// MissingInBody returns the message for a key absent from a request body.
func MissingInBody(field string) string {
	return fmt.Sprintf("Missing `%s` in request body", field)
}

// IDsMustMatch returns the message for a path id that differs from the body id.
func IDsMustMatch(pathID, bodyID string) string {
	return fmt.Sprintf("Request path id (%s) and request body id (%s) %s", pathID, bodyID, notMatchMsg)
}

// MalformedBody returns the message for a body that is not a JSON object.
func MalformedBody() string {
	return "Malformed request body"
}
