package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/httpx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const (
	titleAccessToken      = "Unable to obtain an access token"
	titleValidation       = "Validation error"
	titleInvalidRequest   = "Invalid request"
	titleInvitationAbsent = "Invitation not found"
	titleException        = "Exception occurred"
)

const maxRequestBody = 1 << 20 // 1 MiB

// errInvalidBody wraps JSON decoding failures of the request body.
var errInvalidBody = errors.New("invalid request body")

// writeError turns any error from the service layer into the error envelope.
// It is the only place where that mapping happens.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var (
		respErr  *optscale.ResponseError
		tokenErr *optscale.AccessTokenError
		validErr *optscale.ValidationError
		fields   validation.Errors
	)

	var p httpx.Problem
	switch {
	case errors.As(err, &respErr):
		p = httpx.NewProblem(respErr.StatusCode, respErr.Title, httpx.Reason(respErr.Reason))
	case errors.As(err, &tokenErr):
		p = httpx.NewProblem(http.StatusForbidden, titleAccessToken, httpx.Reason(tokenErr.Message))
	case errors.As(err, &validErr):
		p = httpx.NewProblem(http.StatusBadRequest, titleValidation, httpx.Reason(validErr.Message))
	case errors.Is(err, service.ErrInvitationNotFound):
		p = httpx.NewProblem(http.StatusForbidden, titleInvitationAbsent, httpx.Reason(optscale.NoDetails))
	case errors.As(err, &fields):
		p = httpx.NewProblem(http.StatusBadRequest, titleInvalidRequest, fieldErrors(fields))
	case errors.Is(err, errInvalidBody):
		p = httpx.NewProblem(http.StatusBadRequest, titleInvalidRequest, httpx.Reason(err.Error()))
	default:
		p = httpx.NewProblem(http.StatusForbidden, titleException, httpx.Reason(optscale.NoDetails))
	}

	log.Error("request failed",
		slog.Int("status", p.Status),
		slog.String("title", p.Title),
		slog.String("trace_id", p.TraceID),
		slog.String("error", err.Error()),
	)
	httpx.WriteProblem(w, p)
}

func fieldErrors(errs validation.Errors) map[string]any {
	out := make(map[string]any, len(errs))
	for field, err := range errs {
		if err != nil {
			out[field] = err.Error()
		}
	}
	return out
}

// decodeBody reads a JSON body into v and validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, v validation.Validatable) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: body is empty", errInvalidBody)
		}
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return v.Validate()
}

// writeOutcome passes the provider's body through, keeping its status when
// it has one.
func writeOutcome(w http.ResponseWriter, out optscale.Outcome, fallback int) {
	status := out.StatusCode
	if status == 0 {
		status = fallback
	}
	httpx.WriteRawJSON(w, status, out.Body())
}
