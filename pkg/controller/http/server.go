package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rightsgrid/rightsgrid/pkg/usecase"
	"github.com/rightsgrid/rightsgrid/pkg/utils/logging"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/risk", func(r chi.Router) {
			r.Post("/distribution", distributionRiskHandler(uc))
			r.Post("/jurisdictions", jurisdictionRiskHandler(uc))
		})

		r.Route("/models", func(r chi.Router) {
			r.Get("/", listModelsHandler(uc))
			r.Post("/", registerModelHandler(uc))
			r.Get("/{modelID}", getModelHandler(uc))
			r.Get("/{modelID}/explainability", explainabilityHandler(uc))
			r.Post("/{modelID}/factors/{factorID}", updateFactorHandler(uc))
		})

		r.Post("/premium", premiumHandler(uc))

		r.Route("/jurisdictions", func(r chi.Router) {
			r.Get("/", listJurisdictionsHandler(uc))
			r.Get("/{code}", getJurisdictionHandler(uc))
		})
	})

	return s
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
