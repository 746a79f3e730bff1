package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tienda/internal/auth"
	"tienda/internal/category"
	"tienda/internal/metrics"
	ordercontroller "tienda/internal/order/controller"
	"tienda/internal/product"
	"tienda/internal/user"
)

func NewRouter(
	orderCtrl *ordercontroller.OrderController,
	productCtrl *product.Controller,
	categoryCtrl *category.Controller,
	userCtrl *user.Controller,
	tokens *auth.TokenManager,
	serverMetrics *metrics.ServerMetrics,
	db *sql.DB,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(serverMetrics.Middleware)

	r.Get("/healthz", healthHandler(db))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(auth.Middleware(tokens, logger))

		api.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.List)
			r.Post("/", orderCtrl.Create)
			r.Get("/get/total", orderCtrl.Total)
			r.Get("/get/count", orderCtrl.Count)
			r.Get("/get/userorders/{userid}", orderCtrl.UserOrders)
			r.Get("/{id}", orderCtrl.Get)
			r.Put("/{id}", orderCtrl.UpdateStatus)
			r.Delete("/{id}", orderCtrl.Delete)
		})

		api.Route("/products", func(r chi.Router) {
			r.Get("/", productCtrl.List)
			r.Post("/", productCtrl.Create)
			r.Get("/get/count", productCtrl.Count)
			r.Get("/get/featured/{count}", productCtrl.Featured)
			r.Get("/{id}", productCtrl.Get)
			r.Put("/{id}", productCtrl.Update)
			r.Delete("/{id}", productCtrl.Delete)
		})

		api.Route("/categories", func(r chi.Router) {
			r.Get("/", categoryCtrl.List)
			r.Post("/", categoryCtrl.Create)
			r.Get("/{id}", categoryCtrl.Get)
			r.Put("/{id}", categoryCtrl.Update)
			r.Delete("/{id}", categoryCtrl.Delete)
		})

		api.Route("/users", func(r chi.Router) {
			r.Get("/", userCtrl.List)
			r.Post("/register", userCtrl.Register)
			r.Post("/login", userCtrl.Login)
			r.Get("/get/count", userCtrl.Count)
			r.Get("/{id}", userCtrl.Get)
			r.Delete("/{id}", userCtrl.Delete)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
