package app

import (
	"context"

	"github.com/ngranander/backstage/internal/config"
	"github.com/ngranander/backstage/internal/devops"
	"github.com/ngranander/backstage/internal/handler"
	"github.com/ngranander/backstage/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// DashboardApp represents the application with its dependencies.
type DashboardApp struct {
	cfg *config.Config

	r *echo.Echo

	log *zap.Logger
}

// NewDashboardApp connects to Azure DevOps, wires the service and handler
// and registers routes.
func NewDashboardApp(cfg *config.Config, log *zap.Logger) *DashboardApp {
	clients, err := devops.NewClients(context.Background(), cfg.Azure.OrgURL, cfg.Azure.Token)
	if err != nil {
		log.Fatal("failed to connect to Azure DevOps", zap.Error(err))
	}

	r := echo.New()

	svc := service.NewDevOpsService(
		clients.Git,
		clients.Build,
		clients.Policy,
		clients.Core,
		cfg.Azure.OrgURL,
		log,
	)

	devopsHandler := handler.NewDevOpsHandler(svc, cfg.Azure.Top, log)
	devopsHandler.Register(r)

	r.Use(middleware.Recover())

	return &DashboardApp{
		cfg: cfg,
		r:   r,
		log: log,
	}
}

// Run starts the HTTP server and waits for context cancellation.
func (a *DashboardApp) Run(ctx context.Context) error {
	go func() {
		if err := a.r.Start(":" + a.cfg.App.Port); err != nil {
			a.log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	return a.Shutdown()
}

// Shutdown stops the HTTP server gracefully.
func (a *DashboardApp) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()

	if err := a.r.Shutdown(ctx); err != nil {
		a.log.Error("failed to shutdown server",
			zap.Error(err),
		)
		return err
	}

	return nil
}
