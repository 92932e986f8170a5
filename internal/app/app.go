package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/linkpay/webclient/internal/config"
	"github.com/linkpay/webclient/internal/repository/backend"
	"github.com/linkpay/webclient/internal/repository/identity"
	"github.com/linkpay/webclient/internal/repository/sessions"
	"github.com/linkpay/webclient/internal/service"
	"github.com/linkpay/webclient/pgk/logger"

	httpController "github.com/linkpay/webclient/internal/controller/http"
)

const clientTimeout = 10 * time.Second

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	redirectURL := strings.TrimSuffix(cfg.PublicOrigin, "/") + "/auth/callback"

	identityClient := identity.New(cfg.IdentityAddress, cfg.IdentityAPIKey, redirectURL, clientTimeout)
	backendClient := backend.New(cfg.BackendAddress, clientTimeout)

	var store service.SessionsRepo = sessions.NewMemoryStore()
	if cfg.RedisAddress != "" {
		store = sessions.NewRedisStore(cfg.RedisAddress, cfg.SessionLifetime)
		lg.Infof("using redis session store at %s", cfg.RedisAddress)
	}

	s := service.New(identityClient, backendClient, store, cfg.PublicOrigin, lg)

	router := chi.NewRouter()
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	handlers := httpController.New(s, cfg.SessionSecret, cfg.SessionLifetime, lg)
	router = httpController.InitRoutes(router, handlers, cfg.SessionSecret)

	srv := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: router,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go s.Watch(signalCtx)

	lg.Infof("starting server on %s", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
