package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	gatewayhttp "github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/http"
	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/httpx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "router-test-secret"
	testIssuer   = "swo"
	testAudience = "optscale"
	adminKey     = "admin-secret"
)

// provider is a fake OptScale answering by "METHOD /path".
type provider struct {
	*httptest.Server

	mu    sync.Mutex
	calls []string
}

func newProvider(t *testing.T, routes map[string]http.HandlerFunc) *provider {
	t.Helper()
	p := &provider{}
	p.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		p.mu.Lock()
		p.calls = append(p.calls, key)
		p.mu.Unlock()

		if h, ok := routes[key]; ok {
			h(w, r)
			return
		}
		reply(w, http.StatusNotFound, `{"error":{"reason":"no route"}}`)
	}))
	t.Cleanup(p.Close)
	return p
}

func (p *provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func reply(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func answer(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { reply(w, status, body) }
}

// newTestRouter wires the real provider clients against p.
func newTestRouter(t *testing.T, p *provider) (*gatewayhttp.Router, *service.InvitationService) {
	t.Helper()

	verifier, err := jwtx.NewHMACVerifier([]byte(testSecret), "HS256", jwtx.VerifyOptions{
		Issuer:   testIssuer,
		Audience: []string{testAudience},
	})
	require.NoError(t, err)

	base := optscale.NewClient(p.URL, 2*time.Second)
	auth := optscale.NewAuthClient(base)
	orgs := optscale.NewOrganizationsClient(base, auth)
	users := optscale.NewUsersClient(base)
	invites := optscale.NewInvitationsClient(base, adminKey)

	inv := &service.InvitationService{
		Auth:          auth,
		Invitations:   invites,
		Organizations: orgs,
		Users:         users,
		AdminKey:      adminKey,
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = inv.Wait(ctx)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gatewayhttp.NewRouter(verifier, "/v1", "test", logger)
	r.OrganizationService = &service.OrganizationService{Organizations: orgs, AdminKey: adminKey}
	r.UserService = &service.UserService{Users: users, AdminKey: adminKey}
	r.InvitationService = inv
	r.DatasourceService = &service.DatasourceService{
		Auth:        auth,
		Datasources: optscale.NewDatasourcesClient(base),
		AdminKey:    adminKey,
	}
	r.ApplyRoutes()
	return r, inv
}

func bearer(t *testing.T, ttl time.Duration) string {
	t.Helper()
	s, err := jwtx.NewHMACSigner([]byte(testSecret), "HS256")
	require.NoError(t, err)
	tok, err := s.Sign(jwtx.NewClaims("swo-platform", testIssuer, []string{testAudience}, ttl, time.Now()))
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(r http.Handler, method, target, auth, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) httpx.Problem {
	t.Helper()
	var p httpx.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return p
}

func TestListOrganizations_PassesProviderBodyThrough(t *testing.T) {
	p := newProvider(t, map[string]http.HandlerFunc{
		"POST /auth/v2/tokens":          answer(http.StatusCreated, `{"user_id":"U","token":"user-token"}`),
		"GET /restapi/v2/organizations": answer(http.StatusOK, `{"organizations":[]}`),
	})
	r, _ := newTestRouter(t, p)

	rec := do(r, http.MethodGet, "/v1/organizations?user_id=U", bearer(t, time.Minute), "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"organizations":[]}`, rec.Body.String())
	require.Equal(t, []string{"POST /auth/v2/tokens", "GET /restapi/v2/organizations"}, p.Calls())
}

func TestJWTGate(t *testing.T) {
	p := newProvider(t, nil)
	r, _ := newTestRouter(t, p)

	cases := []struct {
		name   string
		auth   string
		title  string
		reason string
	}{
		{"missing header", "", httpx.TitleInvalidScheme, httpx.TitleInvalidScheme},
		{"wrong scheme", "Basic abc", httpx.TitleInvalidScheme, httpx.TitleInvalidScheme},
		{"garbage token", "Bearer not-a-jwt", httpx.TitleInvalidToken, "The token is invalid or has expired."},
		{"expired token", bearer(t, -time.Second), httpx.TitleInvalidToken, "The token is invalid or has expired."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(r, http.MethodGet, "/v1/organizations?user_id=U", tc.auth, "")

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			pb := decodeProblem(t, rec)
			require.Equal(t, http.StatusUnauthorized, pb.Status)
			require.Equal(t, tc.title, pb.Title)
			require.Equal(t, tc.reason, pb.Errors["reason"])
			require.Equal(t, httpx.ProblemType(http.StatusUnauthorized), pb.Type)
			require.Len(t, pb.TraceID, 32)
		})
	}

	require.Empty(t, p.Calls(), "rejected requests must not reach the provider")
}

func TestCreateOrganization_InvalidCurrency(t *testing.T) {
	p := newProvider(t, nil)
	r, _ := newTestRouter(t, p)

	rec := do(r, http.MethodPost, "/v1/organizations", bearer(t, time.Minute),
		`{"org_name":"Acme","user_id":"U","currency":"usd"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	pb := decodeProblem(t, rec)
	require.Equal(t, "Validation error", pb.Title)
	require.Contains(t, pb.Errors["reason"], "usd")
	require.Empty(t, p.Calls())
}

func TestCreateOrganization_Created(t *testing.T) {
	p := newProvider(t, map[string]http.HandlerFunc{
		"POST /auth/v2/tokens":           answer(http.StatusCreated, `{"user_id":"U","token":"user-token"}`),
		"POST /restapi/v2/organizations": answer(http.StatusCreated, `{"id":"org-1","name":"Acme","currency":"EUR"}`),
	})
	r, _ := newTestRouter(t, p)

	rec := do(r, http.MethodPost, "/v1/organizations", bearer(t, time.Minute),
		`{"org_name":"Acme","user_id":"U","currency":"EUR"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":"org-1","name":"Acme","currency":"EUR"}`, rec.Body.String())
}

func TestCreateOrganization_TokenMismatch(t *testing.T) {
	p := newProvider(t, map[string]http.HandlerFunc{
		"POST /auth/v2/tokens": answer(http.StatusCreated, `{"user_id":"someone-else","token":"t"}`),
	})
	r, _ := newTestRouter(t, p)

	rec := do(r, http.MethodPost, "/v1/organizations", bearer(t, time.Minute),
		`{"org_name":"Acme","user_id":"U","currency":"EUR"}`)

	require.Equal(t, http.StatusForbidden, rec.Code)
	pb := decodeProblem(t, rec)
	require.Equal(t, "Unable to obtain an access token", pb.Title)
	require.Equal(t, "Access Token User ID mismatch", pb.Errors["reason"])
}

func TestRequestValidation(t *testing.T) {
	p := newProvider(t, nil)
	r, _ := newTestRouter(t, p)

	t.Run("missing body", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/v1/users", bearer(t, time.Minute), "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Invalid request", decodeProblem(t, rec).Title)
	})

	t.Run("bad email", func(t *testing.T) {
		rec := do(r, http.MethodPost, "/v1/users", bearer(t, time.Minute),
			`{"email":"nope","display_name":"N","password":"p"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		pb := decodeProblem(t, rec)
		require.Contains(t, pb.Errors, "email")
	})

	t.Run("missing query", func(t *testing.T) {
		rec := do(r, http.MethodGet, "/v1/datasources?user_id=U", bearer(t, time.Minute), "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		pb := decodeProblem(t, rec)
		require.Contains(t, pb.Errors, "organization_id")
		require.NotContains(t, pb.Errors, "user_id")
	})

	require.Empty(t, p.Calls())
}

func TestGetUser_ProviderErrorBecomesEnvelope(t *testing.T) {
	p := newProvider(t, map[string]http.HandlerFunc{
		"GET /auth/v2/users/U": answer(http.StatusNotFound, `{"error":{"reason":"User U not found"}}`),
	})
	r, _ := newTestRouter(t, p)

	rec := do(r, http.MethodGet, "/v1/users/U", bearer(t, time.Minute), "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	pb := decodeProblem(t, rec)
	require.Equal(t, optscale.TitleProviderError, pb.Title)
	require.Equal(t, "User U not found", pb.Errors["reason"])
	require.Equal(t, httpx.ProblemType(http.StatusNotFound), pb.Type)
}

func TestRegisterInvitedUser(t *testing.T) {
	t.Run("invited", func(t *testing.T) {
		created := make(chan map[string]any, 1)
		p := newProvider(t, map[string]http.HandlerFunc{
			"GET /restapi/v2/invites": answer(http.StatusOK, `{"invites":[{"id":"inv-1","email":"a@b.co"}]}`),
			"POST /auth/v2/users": func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				created <- body
				reply(w, http.StatusCreated, `{"id":"U","email":"a@b.co"}`)
			},
		})
		r, _ := newTestRouter(t, p)

		// No bearer token: the invitation is the credential.
		rec := do(r, http.MethodPost, "/v1/invitations/users", "",
			`{"email":"a@b.co","display_name":"A","password":"secret"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"id":"U","email":"a@b.co"}`, rec.Body.String())
		require.Equal(t, false, (<-created)["verified"])
	})

	t.Run("not invited", func(t *testing.T) {
		p := newProvider(t, map[string]http.HandlerFunc{
			"GET /restapi/v2/invites": answer(http.StatusOK, `{"invites":[]}`),
		})
		r, _ := newTestRouter(t, p)

		rec := do(r, http.MethodPost, "/v1/invitations/users", "",
			`{"email":"a@b.co","display_name":"A","password":"secret"}`)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "Invitation not found", decodeProblem(t, rec).Title)
		require.NotContains(t, p.Calls(), "POST /auth/v2/users")
	})
}

func TestDeclineInvitation_RemovesUnattachedUser(t *testing.T) {
	declined := make(chan map[string]any, 1)
	p := newProvider(t, map[string]http.HandlerFunc{
		"POST /auth/v2/tokens": answer(http.StatusCreated, `{"user_id":"U","token":"user-token"}`),
		"PATCH /restapi/v2/invites/inv-1": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			declined <- body
			w.WriteHeader(http.StatusNoContent)
		},
		"GET /restapi/v2/invites":       answer(http.StatusOK, `{"invites":[]}`),
		"GET /restapi/v2/organizations": answer(http.StatusOK, `{"organizations":[]}`),
		"DELETE /auth/v2/users/U":       answer(http.StatusNoContent, ""),
	})
	r, inv := newTestRouter(t, p)

	rec := do(r, http.MethodPost, "/v1/invitations/users/invites/inv-1/decline", bearer(t, time.Minute),
		`{"user_id":"U"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"response":"Invitation declined"}`, rec.Body.String())
	require.Equal(t, "decline", (<-declined)["action"])

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, inv.Wait(ctx))
	require.Contains(t, p.Calls(), "DELETE /auth/v2/users/U")
}

func TestProviderUnreachable(t *testing.T) {
	p := newProvider(t, nil)
	r, _ := newTestRouter(t, p)
	p.Close()

	rec := do(r, http.MethodGet, "/v1/users/U", bearer(t, time.Minute), "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	pb := decodeProblem(t, rec)
	require.Equal(t, optscale.TitleProviderError, pb.Title)
	require.Equal(t, httpx.DefaultProblemType, pb.Type)
}

func TestLivez(t *testing.T) {
	p := newProvider(t, nil)
	r, _ := newTestRouter(t, p)

	rec := do(r, http.MethodGet, "/livez", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var health gatewayhttp.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
