package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/TetianaVeremchuk/product-categories/app/browse"
	"github.com/TetianaVeremchuk/product-categories/app/catalog"
	"github.com/TetianaVeremchuk/product-categories/app/categories"
	"github.com/TetianaVeremchuk/product-categories/app/metrics"
	"github.com/TetianaVeremchuk/product-categories/app/middleware"
	"github.com/TetianaVeremchuk/product-categories/app/respond"
	"github.com/TetianaVeremchuk/product-categories/app/users"
)

// NewHandler routes the API onto c and wraps it with the request middleware.
func NewHandler(c *browse.Catalog, log *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	catalogHandler := catalog.NewCatalogHandler(c)
	categoryHandler := categories.NewCategoryHandler(c)
	userHandler := users.NewUserHandler(c)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /users", userHandler.HandleGetAll)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return middleware.Chain(mux,
		middleware.Recover,
		middleware.RequestID(log),
		middleware.Observe(m),
	)
}
