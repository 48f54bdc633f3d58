package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	httpapi "gssb-library-backend/internal/api/http"
	"gssb-library-backend/internal/config"
	"gssb-library-backend/internal/logger"
	"gssb-library-backend/internal/repository/postgres"
	"gssb-library-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting library backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	policy := service.CirculationPolicy{
		BorrowDays:       cfg.Circulation.BorrowDays,
		RenewalDays:      cfg.Circulation.RenewalDays,
		OverdueFineCents: cfg.Circulation.OverdueFineCents,
	}
	clock := service.SystemClock{}

	// Initialize Services
	borrowerSvc := service.NewBorrowerService(
		store.BorrowerRepository,
		store.CheckoutRepository,
		store.HistoryRepository,
		policy,
		clock,
	)
	itemSvc := service.NewItemService(
		store.ItemRepository,
		store.BorrowerRepository,
		store.CheckoutRepository,
		store.HistoryRepository,
		store.AntolinRepository,
		policy,
		clock,
	)
	checkoutSvc := service.NewCheckoutService(
		store.CheckoutRepository,
		store.HistoryRepository,
		policy,
	)
	reportSvc := service.NewReportService(store.ReportRepository)
	antolinSvc := service.NewAntolinService(store.AntolinRepository)

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, httpapi.Services{
		Borrower: borrowerSvc,
		Item:     itemSvc,
		Checkout: checkoutSvc,
		Report:   reportSvc,
		Antolin:  antolinSvc,
		Clock:    clock,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
