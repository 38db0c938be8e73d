// Package ecode defines the error codes used by the blog post API and the
// client-facing texts attached to them.
//
// Codes follow the convention:
//   - 0: Success (OK)
//   - -400: Invalid request
//   - -404: Resource not found
//   - -500: Internal server error
//   - -503: Service unavailable
//
// Retrieve the message for a code:
//
//	message := ecode.Text(ecode.ServerErr)
//	// Returns: "Internal server error"
//
// Map a code to its HTTP status:
//
//	status := ecode.ToHTTPStatus(ecode.NotFound)
//	// Returns: 404
package ecode
