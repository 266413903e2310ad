package gatewaysdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/httpx"
)

// ProblemError is the gateway's error envelope as seen by a client.
type ProblemError struct {
	httpx.Problem
}

// Error implements the error interface.
func (e *ProblemError) Error() string {
	if reason := e.Reason(); reason != "" {
		return fmt.Sprintf("%d %s: %s (trace %s)", e.Status, e.Title, reason, e.TraceID)
	}
	return fmt.Sprintf("%d %s (trace %s)", e.Status, e.Title, e.TraceID)
}

// Reason returns errors.reason when it is a string.
func (e *ProblemError) Reason() string {
	reason, _ := e.Errors["reason"].(string)
	return reason
}

// parseErrorResponse turns a non-success response into a *ProblemError.
// Bodies that are not an envelope, such as a 404 from the router itself,
// get a synthetic one built from the status code.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var p httpx.Problem
	if err := json.Unmarshal(body, &p); err == nil && p.Title != "" {
		if p.Status == 0 {
			p.Status = resp.StatusCode
		}
		return &ProblemError{Problem: p}
	}

	return &ProblemError{Problem: httpx.Problem{
		Type:   httpx.ProblemType(resp.StatusCode),
		Title:  fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		Status: resp.StatusCode,
		Errors: map[string]any{},
	}}
}
