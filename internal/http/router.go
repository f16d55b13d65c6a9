package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/openaudit/internal/http/analytics"
	"github.com/MrJamesThe3rd/openaudit/internal/http/lgu"
	"github.com/MrJamesThe3rd/openaudit/internal/http/llm"
	"github.com/MrJamesThe3rd/openaudit/internal/http/render"
	"github.com/MrJamesThe3rd/openaudit/internal/http/topic"
	"github.com/MrJamesThe3rd/openaudit/internal/http/transaction"
)

const Version = "1.0.0"

type Options struct {
	AppName     string
	CORSOrigins []string
}

type Handlers struct {
	LGUs         *lgu.Handler
	Transactions *transaction.Handler
	Analytics    *analytics.Handler
	Topics       *topic.Handler
	LLM          *llm.Handler
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{
			"message": opts.AppName,
			"version": Version,
		})
	})

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	router.Route("/lgus", h.LGUs.Routes)
	router.Route("/transactions", h.Transactions.Routes)
	router.Route("/analytics", h.Analytics.Routes)
	router.Route("/topics", h.Topics.Routes)
	router.Route("/llm", h.LLM.Routes)

	return router
}
