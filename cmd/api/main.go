package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tanzine/internal/blob"
	"tanzine/internal/config"
	"tanzine/internal/handlers"
	"tanzine/internal/insight"
	"tanzine/internal/ledger"
	"tanzine/internal/logger"
	"tanzine/internal/middleware"
	"tanzine/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the blob store and restore the persisted snapshot
	store, err := blob.OpenSQLite(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open blob store: %w", err)
	}
	defer store.Close()

	book, err := ledger.New(store, appConfig.BlobSlot)
	if err != nil {
		return fmt.Errorf("failed to restore ledger: %w", err)
	}

	// Insight generation is optional: without an API key the dashboard
	// serves the static advice lines.
	var gen insight.Generator
	if appConfig.GeminiAPIKey != "" {
		g, err := insight.NewGeminiGenerator(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			log.Warnf("Insight generation disabled: %v", err)
		} else {
			gen = g
		}
	} else {
		log.Info("GEMINI_API_KEY not set, insight generation disabled")
	}
	insightService := insight.NewService(gen, appConfig.InsightCount, appConfig.InsightTimeout)

	// Register custom request validators
	validator.Register()

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(book)
	accountHandler := handlers.NewAccountHandler(book)
	transactionHandler := handlers.NewTransactionHandler(book)
	budgetHandler := handlers.NewBudgetHandler(book)
	goalHandler := handlers.NewGoalHandler(book)
	categoryHandler := handlers.NewCategoryHandler()
	dashboardHandler := handlers.NewDashboardHandler(book, insightService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	v1.POST("/onboard", profileHandler.Onboard)
	v1.GET("/profile", profileHandler.GetProfile)
	v1.POST("/reset", profileHandler.Reset)

	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.ListAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)

	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.ListGoals)

	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)

	v1.GET("/dashboard", dashboardHandler.GetDashboard)

	addr := appConfig.Host + ":" + appConfig.Port
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Infof("Starting Tanzine ledger server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown, then flush the final snapshot
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("Server shutdown: %v", err)
	}

	if err := book.Flush(); err != nil {
		return fmt.Errorf("failed to flush final snapshot: %w", err)
	}
	return nil
}
