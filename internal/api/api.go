package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/oseayemenre/pathagar/internal/config"
	"github.com/oseayemenre/pathagar/internal/logger"
	"github.com/oseayemenre/pathagar/internal/store"
)

const greeting = "Hello From As Sunnah Pathagar Server!"

var validate = validator.New()

type Api struct {
	router *chi.Mux
	logger logger.Logger
	store  store.Store
	config *config.Config
}

func New(
	router *chi.Mux,
	logger logger.Logger,
	store store.Store,
	config *config.Config,
) *Api {
	return &Api{
		router: router,
		logger: logger,
		store:  store,
		config: config,
	}
}

func (a *Api) RegisterRoutes() {
	a.router.Use(middleware.Recoverer)
	a.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.config.CorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	a.router.Use(a.LoggingMiddleware)

	a.router.Get("/", a.HandleGreeting)
	a.router.Get("/healthz", a.HandleHealth)

	a.router.Route("/books", func(r chi.Router) {
		r.Post("/", a.HandleCreateBook)
		r.Get("/", a.HandleGetBooks)
		r.Get("/{id}", a.HandleGetBook)
	})
	a.router.Get("/newBooks", a.HandleGetNewBooks)

	a.router.Route("/users", func(r chi.Router) {
		r.Post("/", a.HandleCreateUser)
		r.Get("/", a.HandleGetUsers)
		r.Put("/admin", a.HandleMakeAdmin)
		r.Get("/{email}", a.HandleCheckAdmin)
	})
	a.router.Get("/user", a.HandleGetUsersByEmail)

	a.router.Route("/requestedBooks", func(r chi.Router) {
		r.Post("/", a.HandleCreateRequest)
		r.Get("/", a.HandleGetRequests)
	})
	a.router.Route("/requestedBook", func(r chi.Router) {
		r.Get("/", a.HandleGetRequestsByEmail)
		r.Put("/{id}", a.HandleUpdateRequest)
		r.Delete("/{id}", a.HandleDeleteRequest)
	})

	a.router.Route("/reviews", func(r chi.Router) {
		r.Post("/", a.HandleCreateReview)
		r.Get("/", a.HandleGetReviews)
	})
}

func (a *Api) HandleGreeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(greeting))
}

func (a *Api) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Ping(r.Context()); err != nil {
		a.logger.Error(err.Error(), "service", "HandleHealth")
		respondWithError(w, http.StatusServiceUnavailable, errStoreUnavailable)
		return
	}

	respondWithSuccess(w, http.StatusOK, map[string]string{"status": "server healthy"})
}
