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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fresh-pantry/internal/api"
	"fresh-pantry/internal/clipper"
	"fresh-pantry/internal/config"
	"fresh-pantry/internal/database"
	"fresh-pantry/internal/kitchen"
	"fresh-pantry/internal/logging"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/planner"
	"fresh-pantry/internal/recipe"
	"fresh-pantry/internal/shopping"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	pantryRepo := pantry.NewSQLiteRepository(db.SQL)
	recipeRepo := recipe.NewSQLiteRepository(db.SQL)
	listRepo := shopping.NewSQLiteRepository(db.SQL)
	planRepo := planner.NewSQLiteRepository(db.SQL)

	handler := api.NewHandler(api.HandlerConfig{
		Logger:        logger,
		Pantry:        pantryRepo,
		Recipes:       recipeRepo,
		Kitchen:       kitchen.NewService(recipeRepo, pantryRepo),
		Shopping:      shopping.NewService(listRepo, recipeRepo, pantryRepo),
		Plans:         planRepo,
		Clipper:       clipper.NewClipper(),
		ExpiryHorizon: cfg.ExpiryHorizonDays,
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      api.NewRouter(cfg, handler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.ServerAddr),
			zap.String("database", cfg.DatabasePath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
