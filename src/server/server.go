package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardexcli/src/auth"
	"cardexcli/src/handler"
	"cardexcli/src/model"
	"cardexcli/src/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	logger "github.com/sirupsen/logrus"
)

// Stores is everything the demo API reads from.
type Stores interface {
	GetUserByUserName(ctx context.Context, userName string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.Card, error)
	ListOpen(ctx context.Context, options repository.TradeListOptions) ([]model.OpenTrade, error)
	ListCompleted(ctx context.Context, options repository.TradeListOptions) ([]model.CompletedTrade, error)
	List(ctx context.Context) ([]model.Collection, error)
}

// GormStores bundles the gorm repositories behind Stores.
type GormStores struct {
	*repository.GormUserRepository
	*repository.CardRepository
	*repository.TradeRepository
	*repository.CollectionRepository
}

func NewGormStores() *GormStores {
	return &GormStores{
		GormUserRepository:   repository.NewUserRepository(),
		CardRepository:       repository.NewCardRepository(),
		TradeRepository:      repository.NewTradeRepository(),
		CollectionRepository: repository.NewCollectionRepository(),
	}
}

// NewRouter wires the CarDex routes. Everything but /health and
// /auth/login needs a bearer token issued by tokens.
func NewRouter(stores Stores, tokens *auth.TokenStore) http.Handler {
	r := chi.NewRouter()
	// === Global Middleware ===
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	// Public routes
	r.Get("/health", handler.HealthHandler())
	r.Post("/auth/login", handler.LoginHandler(stores, tokens))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireBearer(tokens))

		r.Get("/trades", handler.OpenTradesHandler(stores))
		r.Get("/trades/history", handler.TradeHistoryHandler(stores))
		r.Get("/collections", handler.CollectionsHandler(stores))
		r.Get("/cards/{id}", handler.CardHandler(stores))
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.WithFields(logger.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("request served")
	})
}

// StartServer serves h on port until SIGINT or SIGTERM.
func StartServer(port string, h http.Handler) {
	// Server setup
	addr := ":" + port
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
