package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/adarshshan/stationaryPro/internal/auth"
	"github.com/adarshshan/stationaryPro/internal/catalog"
	h "github.com/adarshshan/stationaryPro/internal/http"
	"github.com/adarshshan/stationaryPro/internal/order"
	"github.com/adarshshan/stationaryPro/internal/repository"
)

type Config struct {
	HTTPPort         string
	JWTSecret        string
	TokenTTL         time.Duration
	ValidOTP         string
	StrictValidation bool
	StoreBackend     string // "memory" or "redis"
	RedisAddr        string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "3001"),
		JWTSecret:        getEnv("JWT_SECRET", "supersecretjwtkey"),
		TokenTTL:         getDurationEnv("TOKEN_TTL", time.Hour),
		ValidOTP:         getEnv("VALID_OTP", "123456"),
		StrictValidation: getEnv("STRICT_VALIDATION", "false") == "true",
		StoreBackend:     getEnv("STORE_BACKEND", "memory"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	var users repository.UserStore
	var orders repository.OrderStore

	switch cfg.StoreBackend {
	case "redis":
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		defer client.Close()
		store := repository.NewRedisStore(client)
		users, orders = store, store
	default:
		store := repository.NewMemoryStore()
		users, orders = store, store
	}

	cat := catalog.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(users, auth.FixedCodeVerifier{Code: cfg.ValidOTP}, tokens)
	orderService := order.NewService(orders, cat, cfg.StrictValidation)

	authHandler := h.NewAuthHandler(authService, cfg.RequestTimeout)
	productHandler := h.NewProductHandler(cat)
	ordersHandler := h.NewOrdersHandler(orderService, cfg.RequestTimeout)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Mount("/", h.NewRouter(authHandler, productHandler, ordersHandler, authService))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("shop backend starting on :%s (store=%s strict=%v)", cfg.HTTPPort, cfg.StoreBackend, cfg.StrictValidation)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
