package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"

	"github.com/finwatch-lab/anchorboard/frontend"
	"github.com/finwatch-lab/anchorboard/pkg/domain/model/config"
	"github.com/finwatch-lab/anchorboard/pkg/usecase"
	"github.com/finwatch-lab/anchorboard/pkg/utils/logging"
	"github.com/finwatch-lab/anchorboard/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	cfg    *config.DashboardConfig
}

type Options func(*Server)

// WithDashboardConfig overrides the page presentation settings
func WithDashboardConfig(cfg *config.DashboardConfig) Options {
	return func(s *Server) {
		s.cfg = cfg
	}
}

func New(uc *usecase.UseCases, opts ...Options) (*Server, error) {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		cfg: &config.DashboardConfig{
			Title:         "Financial Risk Prediction Dashboard",
			MaxMultiplier: usecase.DefaultMaxMultiplier,
			Step:          0.05,
			Sections: config.SectionLabels{
				Interpretability: "Model Interpretability (SHAP & LIME)",
				Sources:          "Data Sources",
				Metrics:          "Key Metrics & Performance",
				Scenario:         "Real-World Scenario Testing",
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// JSON API (must be registered before the catch-all route)
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler)
		r.Get("/dashboard", overviewHandler(uc.Dashboard, s.cfg))
		r.Get("/dashboard/interpretability", interpretabilityHandler(uc.Dashboard))
		r.Get("/dashboard/sources", sourcesHandler(uc.Dashboard))
		r.Get("/dashboard/metrics", metricsHandler(uc.Dashboard))
		r.Get("/dashboard/risk", riskProfileHandler(uc.Dashboard))
		r.Post("/scenario", scenarioHandler(uc.Scenario))
	})

	// Static file serving for the dashboard page (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind dist dir for static")
	}

	r.Get("/*", spaHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, map[string]string{"status": "ok"})
}

// spaHandler serves static files and falls back to index.html
func spaHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")

		if urlPath == "" {
			urlPath = "index.html"
		}

		if file, err := staticFS.Open(urlPath); err != nil {
			// File not found, serve index.html for client-side routing
			if indexFile, err := staticFS.Open("index.html"); err == nil {
				defer safe.Close(r.Context(), indexFile)
				w.Header().Set("Content-Type", "text/html")
				safe.Copy(r.Context(), w, indexFile)
				return
			}

			http.NotFound(w, r)
			return
		} else {
			// File exists, close the probe and let fileServer handle it
			safe.Close(r.Context(), file)
		}

		fileServer.ServeHTTP(w, r)
	}
}
