package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/cart"
	"pasarku-be/internal/category"
	"pasarku-be/internal/config"
	"pasarku-be/internal/db"
	"pasarku-be/internal/logger"
	"pasarku-be/internal/metrics"
	"pasarku-be/internal/product"
	"pasarku-be/internal/transport"
	"pasarku-be/internal/user"

	"go.uber.org/zap"
)

// Swappable seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer builds every repository, service and handler on the shared
// database handle and returns the fully wired router.
func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	guard := auth.NewGuard(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, guard)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	reg := metrics.NewRegistry()

	return transport.NewRouter(
		transport.NewUserHandler(userSvc),
		transport.NewProductHandler(productSvc),
		transport.NewCategoryHandler(categorySvc),
		transport.NewCartHandler(cartSvc),
		guard,
		reg,
	)
}

// startServer serves until SIGINT/SIGTERM, then drains in-flight requests
// before returning.
func startServer(addr string, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
