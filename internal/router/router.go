package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/lucalvex/hub-projeto-diag-api/internal/answer"
	"github.com/lucalvex/hub-projeto-diag-api/internal/auth"
	"github.com/lucalvex/hub-projeto-diag-api/internal/metrics"
	"github.com/lucalvex/hub-projeto-diag-api/internal/middlewares"
	"github.com/lucalvex/hub-projeto-diag-api/internal/questionnaire"
	"github.com/lucalvex/hub-projeto-diag-api/internal/report"
	"github.com/lucalvex/hub-projeto-diag-api/internal/user"
)

type RouterConfig struct {
	UserHandler          *user.Handler
	QuestionnaireHandler *questionnaire.Handler
	AnswerHandler        *answer.Handler
	ReportHandler        *report.Handler

	// ReportRatePerMinute limita a geração de PDFs por IP; 0 desliga.
	ReportRatePerMinute int
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
	})

	questionnaire.Routes(r, cfg.QuestionnaireHandler)
	answer.Routes(r, cfg.AnswerHandler)
	report.Routes(r, cfg.ReportHandler, middlewares.RateLimiter(cfg.ReportRatePerMinute, time.Minute))

	return r
}
