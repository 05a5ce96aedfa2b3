// Package api wires HTTP routing for the portfolio tracker.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/rjanssen/Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/config"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	userService *service.UserService,
	assetService *service.AssetService,
	transactionService *service.TransactionService,
	portfolioService *service.PortfolioService,
	priceService *service.PriceService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/user", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(userService)
			r.Post("/register", userHandler.Register)
		})

		r.Route("/asset", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(assetService)
			r.Get("/", assetHandler.Assets)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Post("/", transactionHandler.CreateTransaction)
			r.With(custommiddleware.ValidateUserQueryMiddleware).Get("/", transactionHandler.Transactions)
			r.Get("/{transactionId}", transactionHandler.GetTransaction)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Use(custommiddleware.ValidateUserQueryMiddleware)
			r.Get("/dashboard", portfolioHandler.Dashboard)
			r.Get("/gains", portfolioHandler.Gains)
		})

		priceHandler := handlers.NewPriceHandler(priceService)
		r.Get("/price/{symbol}", priceHandler.Price)
		r.Get("/prices", priceHandler.Prices)
	})

	return r
}
