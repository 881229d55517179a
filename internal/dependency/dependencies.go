package dependency

import (
	"context"
	"log/slog"

	"github.com/itsDrac/nft-web/internal/client"
	"github.com/itsDrac/nft-web/internal/handlers"
	"github.com/itsDrac/nft-web/internal/service"
	"github.com/itsDrac/nft-web/internal/session"
	"github.com/itsDrac/nft-web/pkg/config"
	"github.com/itsDrac/nft-web/pkg/logger"
)

// Dependencies holds all the intialized instances required by the application.
type Dependencies struct {
	Config          *config.Config
	Client          *client.Client
	Services        *service.Services
	Sessions        *session.Store
	Templates       *handlers.TemplateCache
	PageHandler     *handlers.PageHandler
	FragmentHandler *handlers.FragmentHandler
	FormHandler     *handlers.FormHandler
}

// NewDependencies builds the backend client, parses templates and wires
// up services and handlers. An unreachable backend is logged, not fatal:
// pages render their load errors until it comes up.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	api := client.New(cfg.APIURL, logger.NewLogger("backend"))
	if err := api.Ping(ctx); err != nil {
		slog.Warn("[Backend] Unable to ping ->", "url", cfg.APIURL, "error", err.Error())
	} else {
		slog.Info("[Backend] connected", "url", cfg.APIURL)
	}

	services := service.NewServices(api)

	templates := handlers.NewTemplateCache()
	if err := templates.Load(nil); err != nil {
		slog.Error("[Templates] failed to initialize -> ", "error", err.Error())
		return nil, err
	}

	pageHandler, err := handlers.NewPageHandler(services.Fetcher, templates)
	if err != nil {
		slog.Error("[Page Handler] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	fragmentHandler, err := handlers.NewFragmentHandler(services.Fetcher)
	if err != nil {
		slog.Error("[Fragment Handler] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	formHandler, err := handlers.NewFormHandler(services.Forms)
	if err != nil {
		slog.Error("[Form Handler] failed to initialized -> ", "error", err.Error())
		return nil, err
	}

	return &Dependencies{
		Config:          cfg,
		Client:          api,
		Services:        services,
		Sessions:        session.NewStore(cfg.SessionKey, cfg.CookieSecure),
		Templates:       templates,
		PageHandler:     pageHandler,
		FragmentHandler: fragmentHandler,
		FormHandler:     formHandler,
	}, nil
}
