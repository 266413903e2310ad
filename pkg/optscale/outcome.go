package optscale

import (
	"encoding/json"
	"fmt"
)

// emptyObject is what Data holds whenever the provider gave us nothing usable.
var emptyObject = json.RawMessage(`{}`)

// Outcome is the normalized result of one provider call. Every call produces
// exactly one Outcome; transport failures never surface as Go errors.
type Outcome struct {
	StatusCode int
	Data       json.RawMessage
	Error      string
}

// OK reports whether the call completed as a clean 2xx JSON response.
func (o Outcome) OK() bool {
	return o.Error == ""
}

// Body returns Data, or {} when there is none.
func (o Outcome) Body() json.RawMessage {
	if len(o.Data) == 0 {
		return emptyObject
	}
	return o.Data
}

// Decode unmarshals Data into v.
func (o Outcome) Decode(v any) error {
	if err := json.Unmarshal(o.Body(), v); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}

// providerError is the error body OptScale returns on failures.
type providerError struct {
	Error struct {
		Reason    string `json:"reason"`
		ErrorCode string `json:"error_code"`
	} `json:"error"`
}

// Reason extracts data.error.reason, or fallback when absent or empty.
func (o Outcome) Reason(fallback string) string {
	var pe providerError
	if err := json.Unmarshal(o.Body(), &pe); err != nil || pe.Error.Reason == "" {
		return fallback
	}
	return pe.Error.Reason
}

func connectionFailure(err error) Outcome {
	return Outcome{
		StatusCode: 503,
		Data:       emptyObject,
		Error:      "Connection error: " + err.Error(),
	}
}

func unexpectedFailure(err error) Outcome {
	return Outcome{
		StatusCode: 500,
		Data:       emptyObject,
		Error:      "Unexpected error: " + err.Error(),
	}
}
