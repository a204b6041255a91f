package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/radiancespa/siteforms/internal/booking"
	"github.com/radiancespa/siteforms/internal/contact"
	httpmiddleware "github.com/radiancespa/siteforms/internal/http/middleware"
	"github.com/radiancespa/siteforms/internal/signup"
	"github.com/radiancespa/siteforms/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	SignupHandler      *signup.Handler
	BookingHandler     *booking.Handler
	ContactHandler     *contact.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/signup/sessions", func(r chi.Router) {
			r.Post("/", cfg.SignupHandler.CreateSession)
			r.Get("/{sessionID}", cfg.SignupHandler.GetSession)
			r.Post("/{sessionID}/advance", cfg.SignupHandler.Advance)
			r.Post("/{sessionID}/retreat", cfg.SignupHandler.Retreat)
			r.Post("/{sessionID}/submit", cfg.SignupHandler.Submit)
		})

		api.Route("/booking/sessions", func(r chi.Router) {
			r.Post("/", cfg.BookingHandler.CreateSession)
			r.Get("/{sessionID}", cfg.BookingHandler.GetSession)
			r.Post("/{sessionID}/advance", cfg.BookingHandler.Advance)
			r.Post("/{sessionID}/retreat", cfg.BookingHandler.Retreat)
			r.Post("/{sessionID}/submit", cfg.BookingHandler.Submit)
		})

		api.Post("/contact", cfg.ContactHandler.CreateMessage)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
