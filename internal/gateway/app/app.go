package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/http"
	"github.com/softwareone-platform/mpt-finops-api-modifier/internal/gateway/service"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/optscale"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the gateway: provider clients, services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	verifier jwtx.Verifier

	// Provider clients
	authClient        *optscale.AuthClient
	organizations     *optscale.OrganizationsClient
	users             *optscale.UsersClient
	invitations       *optscale.InvitationsClient
	datasourcesClient *optscale.DatasourcesClient

	// Services
	organizationService *service.OrganizationService
	userService         *service.UserService
	invitationService   *service.InvitationService
	datasourceService   *service.DatasourceService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New validates cfg and builds every dependency. Nothing talks to the
// provider until a request arrives.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "finops-api-modifier",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	verifier, err := jwtx.NewHMACVerifier([]byte(cfg.JWTSecret), cfg.JWTAlgorithm, jwtx.VerifyOptions{
		Issuer:   cfg.JWTIssuer,
		Audience: []string{cfg.JWTAudience},
		Leeway:   cfg.JWTLeeway,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT verifier: %w", err)
	}
	app.verifier = verifier

	app.initClients()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("gateway starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"optscale", app.cfg.OptScaleAPIURL,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown stops accepting requests, then waits for in-flight requests and
// background user removals within the grace period.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.invitationService.Wait(ctx); err != nil {
		app.logger.Error("background user removals did not finish", "error", err)
		return err
	}

	app.logger.Info("gateway stopped")
	return nil
}

func (app *Application) initClients() {
	base := optscale.NewClient(app.cfg.OptScaleAPIURL, app.cfg.RequestTimeout)

	app.authClient = optscale.NewAuthClient(base)
	app.organizations = optscale.NewOrganizationsClient(base, app.authClient)
	app.users = optscale.NewUsersClient(base)
	app.invitations = optscale.NewInvitationsClient(base, app.cfg.AdminToken)
	app.datasourcesClient = optscale.NewDatasourcesClient(base)
}

func (app *Application) initServices() {
	app.organizationService = &service.OrganizationService{
		Organizations: app.organizations,
		AdminKey:      app.cfg.AdminToken,
	}
	app.userService = &service.UserService{
		Users:    app.users,
		AdminKey: app.cfg.AdminToken,
	}
	app.invitationService = &service.InvitationService{
		Auth:          app.authClient,
		Invitations:   app.invitations,
		Organizations: app.organizations,
		Users:         app.users,
		AdminKey:      app.cfg.AdminToken,
	}
	app.datasourceService = &service.DatasourceService{
		Auth:        app.authClient,
		Datasources: app.datasourcesClient,
		AdminKey:    app.cfg.AdminToken,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.verifier, app.cfg.APIPrefix, BuildVersion, app.logger)

	router.OrganizationService = app.organizationService
	router.UserService = app.userService
	router.InvitationService = app.invitationService
	router.DatasourceService = app.datasourceService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
