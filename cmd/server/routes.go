package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/csrf"
	"github.com/itsDrac/nft-web/internal/handlers"
	mw "github.com/itsDrac/nft-web/internal/middleware"
	"github.com/itsDrac/nft-web/internal/nav"
	"github.com/itsDrac/nft-web/pkg/config"
)

func (s *Server) routes() *chi.Mux {
	deps := s.Dependencies
	cfg := deps.Config
	pages := deps.PageHandler

	mux := chi.NewMux()

	// global middlewares
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(s.LoggerMiddleware())
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.Compress(5))
	mux.Use(middleware.Timeout(30 * time.Second))
	mux.Use(SecurityHeadersMiddleware)

	mux.Get("/healthz", handlers.HealthCheck)
	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(handlers.StaticFS()))))

	// fragments are read only and may be pulled by pages hosted elsewhere
	mux.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "HX-Request", "HX-Target", "HX-Current-URL", "HX-Trigger"},
			ExposedHeaders: []string{config.RequestIDKey},
			MaxAge:         300,
		}))
		r.Use(mw.HTMX)
		r.Get("/fragments/{container}", deps.FragmentHandler.Fragment)
	})

	mux.Group(func(r chi.Router) {
		if !cfg.CookieSecure {
			r.Use(plaintextCSRF)
		}
		r.Use(csrf.Protect(
			cfg.CSRFKey,
			csrf.Secure(cfg.CookieSecure),
			csrf.Path("/"),
			csrf.FieldName(config.CSRFFieldName),
			csrf.TrustedOrigins(trustedOrigins(cfg)),
			csrf.ErrorHandler(http.HandlerFunc(handlers.CSRFFailure)),
		))
		r.Use(mw.SessionMiddleware(deps.Sessions))
		r.Use(mw.HTMX)

		r.Get("/", pages.Page(nav.LoginPage))
		r.Get("/login", pages.Page(nav.LoginPage))
		r.Get("/register", pages.Page(nav.RegisterPage))
		r.Get("/nfts", pages.Page(nav.NFTsPage))
		r.Get("/nfts/{nftID}", pages.NFTDetail)
		r.Get("/create-nft", pages.Page(nav.CreateNFTPage))
		r.Get("/collections", pages.Page(nav.CollectionsPage))
		r.Get("/categories", pages.Page(nav.CategoriesPage))
		r.Get("/reports", pages.Page(nav.ReportsPage))
		r.Get("/users/{userID}/wallet", pages.Page(nav.WalletPage))

		r.Post("/forms/{formID}", deps.FormHandler.Submit)
	})

	return mux
}

// trustedOrigins are the hosts allowed to post forms besides our own.
func trustedOrigins(cfg *config.Config) []string {
	origins := []string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port}
	for _, o := range cfg.CORSOrigins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			origins = append(origins, u.Host)
		}
	}
	return origins
}
