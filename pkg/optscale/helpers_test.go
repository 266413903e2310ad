package optscale_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/stretchr/testify/require"
)

// recorded is one request seen by the fake provider.
type recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

// fakeProvider stands in for OptScale and records every request it gets.
type fakeProvider struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recorded
	hits     atomic.Int32
}

func newFakeProvider(t *testing.T, h http.HandlerFunc) *fakeProvider {
	t.Helper()
	fp := &fakeProvider{}
	fp.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fp.hits.Add(1)

		rec := recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		fp.mu.Lock()
		fp.requests = append(fp.requests, rec)
		fp.mu.Unlock()

		h(w, r)
	}))
	t.Cleanup(fp.Close)
	return fp
}

func (fp *fakeProvider) Requests() []recorded {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return append([]recorded(nil), fp.requests...)
}

func (fp *fakeProvider) client() *optscale.Client {
	return optscale.NewClient(fp.URL, 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// routes dispatches on "METHOD /path" and answers 404 otherwise.
func routes(t *testing.T, m map[string]http.HandlerFunc) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method+" "+r.URL.Path]; ok {
			h(w, r)
			return
		}
		writeJSON(w, http.StatusNotFound, `{"error":{"reason":"no route"}}`)
	}
}

func tokenFor(userID, token string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, `{"user_id":"`+userID+`","token":"`+token+`"}`)
	}
}

func requireResponseError(t *testing.T, err error, status int, reason string) {
	t.Helper()
	var re *optscale.ResponseError
	require.ErrorAs(t, err, &re)
	require.Equal(t, status, re.StatusCode)
	require.Equal(t, optscale.TitleProviderError, re.Title)
	require.Equal(t, reason, re.Reason)
}
