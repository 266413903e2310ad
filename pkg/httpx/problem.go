package httpx

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const rfc7231 = "https://datatracker.ietf.org/doc/html/rfc7231#section-"

var problemTypes = map[int]string{
	http.StatusBadRequest:          rfc7231 + "6.5.1",
	http.StatusUnauthorized:        rfc7231 + "6.5.3",
	http.StatusForbidden:           rfc7231 + "6.5.3",
	http.StatusNotFound:            rfc7231 + "6.5.4",
	http.StatusMethodNotAllowed:    rfc7231 + "6.5.5",
	http.StatusNotAcceptable:       rfc7231 + "6.5.6",
	http.StatusRequestTimeout:      rfc7231 + "6.5.7",
	http.StatusConflict:            rfc7231 + "6.5.8",
	http.StatusInternalServerError: rfc7231 + "6.6.1",
}

// DefaultProblemType is used for status codes without a dedicated section.
const DefaultProblemType = rfc7231 + "6.5.4"

// Problem is the error body returned by every endpoint.
type Problem struct {
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Status  int            `json:"status"`
	TraceID string         `json:"traceId"`
	Errors  map[string]any `json:"errors"`
}

// ProblemType maps a status code to its RFC 7231 section URL.
func ProblemType(status int) string {
	if t, ok := problemTypes[status]; ok {
		return t
	}
	return DefaultProblemType
}

// NewProblem builds a Problem with a fresh trace id. A nil errors map
// becomes {}.
func NewProblem(status int, title string, errors map[string]any) Problem {
	if errors == nil {
		errors = map[string]any{}
	}
	return Problem{
		Type:    ProblemType(status),
		Title:   title,
		Status:  status,
		TraceID: newTraceID(),
		Errors:  errors,
	}
}

// Reason is the common {"reason": msg} errors map.
func Reason(msg string) map[string]any {
	return map[string]any{"reason": msg}
}

// WriteProblem writes p with its own status.
func WriteProblem(w http.ResponseWriter, p Problem) {
	WriteJSON(w, p.Status, p)
}

// newTraceID is a random UUID as 32 lowercase hex characters.
func newTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
