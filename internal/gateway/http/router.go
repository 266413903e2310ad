package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/httpx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"

	_ "github.com/softwareone-platform/mpt-finops-api-modifier/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultPrefix is the path prefix of every versioned route.
const DefaultPrefix = "/v1"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	prefix       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	OrganizationService *service.OrganizationService
	UserService         *service.UserService
	InvitationService   *service.InvitationService
	DatasourceService   *service.DatasourceService
}

func NewRouter(verifier jwtx.Verifier, prefix, buildVersion string, logger *slog.Logger) *Router {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = DefaultPrefix
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		prefix:       prefix,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOrganizations()
	r.registerUsers()
	r.registerInvitations()
	r.registerDatasources()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			FinOps API Modifier
//	@version		0.1.0
//	@description	Gateway in front of the OptScale API. Every request is authenticated with a
//	@description	short-lived HS256 JWT; the gateway exchanges the caller's user id for an
//	@description	OptScale user token and passes OptScale's answer through unchanged.
//	@description
//	@description				Failures are reported as {type, title, status, traceId, errors}.
//
//	@contact.name				SoftwareOne FinOps Team
//	@contact.url				https://github.com/softwareone-platform/mpt-finops-api-modifier
//
//	@license.name				Apache 2.0
//	@license.url				https://www.apache.org/licenses/LICENSE-2.0
//
//	@host						localhost:8080
//	@BasePath					/v1
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT signed with the shared secret. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) route(method, path string) string {
	return method + " " + r.prefix + path
}

// secured puts h behind the JWT gate and a per-subject limit.
func (r *Router) secured(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.JWTBearer(r.verifier),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerOrganizations() {
	h := &OrganizationsHandler{OrganizationService: r.OrganizationService}

	r.Mux.Handle(r.route("POST", "/organizations"), r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle(r.route("GET", "/organizations"), r.secured(h.HandleList, httpx.LenientLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle(r.route("POST", "/users"), r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle(r.route("GET", "/users/{user_id}"), r.secured(h.HandleGet, httpx.LenientLimit))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// Invited users have no token yet; the invitation itself is the credential.
	r.Mux.Handle(r.route("POST", "/invitations/users"),
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle(r.route("POST", "/invitations/users/invites/{invite_id}/decline"),
		r.secured(h.HandleDecline, httpx.ModerateLimit),
	)
}

func (r *Router) registerDatasources() {
	h := &DatasourcesHandler{DatasourceService: r.DatasourceService}

	r.Mux.Handle(r.route("POST", "/datasources"), r.secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle(r.route("GET", "/datasources"), r.secured(h.HandleList, httpx.LenientLimit))
}

func (r *Router) registerSystem() {
	// Monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
