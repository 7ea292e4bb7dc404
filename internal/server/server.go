package server

import (
	"fmt"
	"net/http"
	"time"

	"mercado/internal/config"
	"mercado/internal/domain"
	"mercado/internal/metrics"
	custommiddleware "mercado/internal/middleware"
	"mercado/internal/service"
	"mercado/internal/transport"
	"mercado/internal/validate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	redis  *redis.Client
}

// NewServer builds the back-office API server. redisClient may be nil, which
// disables rate limiting.
func NewServer(cfg *config.Config, logger *zap.Logger, catalog *service.Catalog, auth *service.Auth, registry *prometheus.Registry, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	if redisClient != nil {
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "rate_limit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if registry != nil {
		router.Method("GET", "/metrics", metrics.Handler(registry))
	}

	// Admin writes require a valid admin session token.
	authMW := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	adminMW := custommiddleware.RequireAdmin(logger)
	guard := func(next http.Handler) http.Handler {
		return authMW(adminMW(next))
	}

	router.Route("/api", func(r chi.Router) {
		transport.NewResourceHandler(catalog.Roles, transport.RoleFields(), validate.Role, 10, logger).
			RegisterRoutes(r, "/"+domain.KindRoles, guard, false)
		transport.NewResourceHandler(catalog.Categories, transport.CategoryFields(), validate.Category, 10, logger).
			RegisterRoutes(r, "/"+domain.KindCategories, guard, false)
		transport.NewResourceHandler(catalog.Products, transport.ProductFields(), validate.Product, 10, logger).
			RegisterRoutes(r, "/"+domain.KindProducts, guard, false)
		transport.NewResourceHandler(catalog.Services, transport.ServiceFields(), validate.Service, 10, logger).
			RegisterRoutes(r, "/"+domain.KindServices, guard, false)
		transport.NewResourceHandler(catalog.Users, transport.UserFields(), validate.User, 10, logger).
			RegisterRoutes(r, "/"+domain.KindUsers, guard, false)
		// Clients and providers are created through public registration.
		transport.NewResourceHandler(catalog.Clients, transport.ClientFields(), validate.Client, 10, logger).
			RegisterRoutes(r, "/"+domain.KindClients, guard, true)
		transport.NewResourceHandler(catalog.Providers, transport.ProviderFields(), validate.Provider, 10, logger).
			RegisterRoutes(r, "/"+domain.KindProviders, guard, true)
	})

	transport.NewAuthHandler(auth, catalog.Users, logger).RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
