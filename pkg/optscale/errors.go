package optscale

import (
	"fmt"
)

const (
	// TitleProviderError is the title of every ResponseError built from a
	// failed provider call.
	TitleProviderError = "Error response from OptScale"

	// NoDetails is the reason used when the provider gave none.
	NoDetails = "No details available"
)

// ResponseError is a failed provider call, carrying the upstream status.
type ResponseError struct {
	StatusCode int
	Title      string
	Reason     string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Title, e.StatusCode, e.Reason)
}

// newResponseError turns a failed outcome into a ResponseError.
func newResponseError(o Outcome) *ResponseError {
	status := o.StatusCode
	if status == 0 {
		status = 403
	}
	return &ResponseError{
		StatusCode: status,
		Title:      TitleProviderError,
		Reason:     o.Reason(NoDetails),
	}
}

// AccessTokenError means no usable per-user token could be obtained.
type AccessTokenError struct {
	Message string
}

func (e *AccessTokenError) Error() string { return e.Message }

// ValidationError is caller input rejected before any provider call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrMissingInvitationIdentity is returned when listing invitations with
// neither a user token nor an email.
var ErrMissingInvitationIdentity = &ValidationError{
	Message: "either a user access token or an email is required",
}
