package web

import (
	"net/http"

	"github.com/DioGolang/GoCheckout/internal/infra/web/handler"
	mw "github.com/DioGolang/GoCheckout/internal/infra/web/middleware"
	"github.com/DioGolang/GoCheckout/pkg/logger"
	"github.com/DioGolang/GoCheckout/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"
)

type RouterConfig struct {
	ServiceName string
	Logger      logger.Logger
	Metrics     metrics.Metrics
	Gatherer    prometheus.Gatherer
	RateLimiter *mw.IPRateLimiter
	Health      http.Handler

	Customers *handler.Customer
	Products  *handler.Product
	Orders    *handler.Order
}

// NewRouter mounts the api under /api/v1. Health and metrics endpoints sit
// outside the rate limiter.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	if cfg.Health != nil {
		r.Method(http.MethodGet, "/health", cfg.Health)
	}
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(otelchi.Middleware(cfg.ServiceName, otelchi.WithChiRoutes(r)))
		r.Use(mw.RequestLogger(cfg.Logger))
		r.Use(mw.HTTPMetrics(cfg.Metrics))
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Handler(cfg.Logger))
		}

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.Customers.Create)
			r.Get("/", cfg.Customers.List)
			r.Get("/{id}", cfg.Customers.Find)
			r.Put("/{id}", cfg.Customers.Update)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", cfg.Products.Create)
			r.Get("/", cfg.Products.List)
			r.Post("/increase-price", cfg.Products.IncreasePrices)
			r.Get("/{id}", cfg.Products.Find)
			r.Put("/{id}", cfg.Products.Update)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", cfg.Orders.Place)
			r.Get("/", cfg.Orders.List)
			r.Get("/{id}", cfg.Orders.Find)
			r.Put("/{id}", cfg.Orders.Update)
		})
	})

	return r
}
