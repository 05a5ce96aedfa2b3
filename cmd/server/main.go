package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/api"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/config"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/database"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/pricing"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/quotes"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/repository"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/scheduler"
	"github.com/rjanssen/Portfolio-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Pricing stack: quote client, shared cache, resolver
	quoteClient := quotes.NewClient(cfg.Pricing.BaseURL, cfg.Pricing.RequestTimeout)
	quoteCache := pricing.NewQuoteCache(cfg.Pricing.CacheTTL)
	resolver := pricing.NewResolver(quoteClient, quoteCache, cfg.Pricing.MaxConcurrentLookups)

	// Create services
	systemService := service.NewSystemService(db)
	userService, err := service.NewUserService(userRepo, cfg.Security.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}
	assetService := service.NewAssetService(assetRepo)
	transactionService := service.NewTransactionService(transactionRepo, assetRepo, userRepo, quoteCache)
	portfolioService := service.NewPortfolioService(transactionRepo, assetRepo, userRepo, resolver)
	priceService := service.NewPriceService(quoteClient, quoteCache)

	// Background quote refresh
	sched := scheduler.New()
	if cfg.Scheduler.QuoteRefreshSpec != "" {
		refreshJob := service.NewQuoteRefreshJob(assetRepo, quoteClient, quoteCache, cfg.Pricing.RequestTimeout)
		if err := sched.AddJob(cfg.Scheduler.QuoteRefreshSpec, refreshJob); err != nil {
			log.Fatalf("Failed to register quote refresh job: %v", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(systemService, userService, assetService, transactionService, portfolioService, priceService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
