package http

import (
	"net/http"

	"github.com/farmstand/internal/application/product"
	"github.com/farmstand/internal/config"
	"github.com/farmstand/internal/domain"
	"github.com/farmstand/internal/transport/http/handler"
	appmiddleware "github.com/farmstand/internal/transport/http/middleware"
	"github.com/farmstand/internal/view"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ProductRepo ProductRepository
	Views       view.Renderer
}

// Router is the application http.Handler. Stop releases its background work.
type Router struct {
	http.Handler
	limiter *appmiddleware.RateLimiter
}

func (r *Router) Stop() { r.limiter.Stop() }

// NewRouter builds and returns the application router. Failures from every
// route reach the client through the classify-then-respond error chain.
func NewRouter(cfg *config.Config, deps *Deps) *Router {
	errs := appmiddleware.DefaultErrorChain()

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.MethodOverride)

	writeRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, errs.Dispatch, cfg.TrustProxy)

	productSvc := product.NewService(deps.ProductRepo)

	healthH := handler.NewHealthHandler()
	productH := handler.NewProductHandler(productSvc, deps.Views)

	r.Get("/health-check/{action}", errs.Wrap(healthH.Ping))

	r.Route("/products", func(r chi.Router) {
		r.Get("/", errs.Wrap(productH.Index))
		// Registered before /{id} so "new" is never read as an id.
		r.Get("/new", errs.Wrap(productH.New))
		r.Get("/{id}", errs.Wrap(productH.Show))
		r.Get("/{id}/edit", errs.Wrap(productH.Edit))

		r.Group(func(r chi.Router) {
			r.Use(writeRL.Limit)

			r.Post("/", errs.Wrap(productH.Create))
			r.Put("/{id}", errs.Wrap(productH.Update))
			r.Delete("/{id}", errs.Wrap(productH.Delete))
		})
	})

	r.NotFound(errs.Wrap(func(http.ResponseWriter, *http.Request) error {
		return domain.NewApplicationError("Page Not Found", http.StatusNotFound)
	}))
	r.MethodNotAllowed(errs.Wrap(func(http.ResponseWriter, *http.Request) error {
		return domain.NewApplicationError("Method Not Allowed", http.StatusMethodNotAllowed)
	}))

	return &Router{Handler: r, limiter: writeRL}
}
