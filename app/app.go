// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"go-ledger-api/config"
	"go-ledger-api/db"
	"go-ledger-api/handler"
	"go-ledger-api/logger"
	"go-ledger-api/repository"
	"go-ledger-api/router"
	"go-ledger-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// App is a fully wired ledger: the store it runs on and the HTTP handler
// serving it.
type App struct {
	Store  repository.LedgerStore
	Router http.Handler
}

// Options carries the tunables that do not come from the store itself.
type Options struct {
	CustomerTTL time.Duration
	Retry       service.RetryPolicy
}

// New wires every layer on top of store. cache may be nil.
func New(store repository.LedgerStore, cache service.ICacheClient, opts Options) *App {
	// Layers for Customer
	customerService := service.NewCustomerService(store, cache, opts.CustomerTTL)
	customerHandler := handler.NewCustomerHandler(customerService)

	// Layers for Account and queries
	accountService := service.NewAccountService(store, customerService)
	queryService := service.NewQueryService(store)
	accountHandler := handler.NewAccountHandler(accountService, queryService)

	// Layers for Transfer
	transactionService := service.NewTransactionService(store, opts.Retry)
	transactionHandler := handler.NewTransactionHandler(transactionService, queryService)

	return &App{
		Store:  store,
		Router: router.NewRouter(customerHandler, accountHandler, transactionHandler),
	}
}

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	store, database := openStore()
	if database != nil {
		defer database.Close()
	}

	var cache service.ICacheClient
	if config.AppConfig.Redis.Enabled {
		rdb, err := db.ConnectRedis(context.Background())
		if err != nil {
			logger.Log.Fatalf("Error connecting to redis: %v", err)
		}
		defer rdb.Close()
		cache = rdb
	}

	a := New(store, cache, Options{
		CustomerTTL: config.AppConfig.Redis.CustomerTTL,
		Retry: service.RetryPolicy{
			MaxRetries:     config.AppConfig.Transfer.MaxRetries,
			InitialBackoff: config.AppConfig.Transfer.RetryBackoff,
		},
	})

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// openStore picks the ledger backend named in the config. The returned
// *sql.DB is nil for the memory store.
func openStore() (repository.LedgerStore, *sql.DB) {
	switch config.AppConfig.Store.Driver {
	case config.StoreDriverMemory:
		logger.Log.Warn("Using the in-memory store, data will not survive a restart")
		return repository.NewMemoryStore(), nil
	case config.StoreDriverPostgres:
	default:
		logger.Log.Fatalf("Unknown store driver %q", config.AppConfig.Store.Driver)
	}

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	if config.AppConfig.Database.AutoMigrate {
		if err := db.RunMigrations(database, config.AppConfig.Database.MigrationsPath); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
	}
	return repository.NewPostgresStore(database), database
}
