package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"mercado/internal/config"
	"mercado/internal/domain"
	custommiddleware "mercado/internal/middleware"
	"mercado/internal/store"
	"mercado/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ResourceServer is the backing document server the storefront's resource
// client talks to. It serves the plain REST surface with no auth, standing in
// for the external resource API.
type ResourceServer struct {
	*http.Server
	logger *zap.Logger
	db     *sql.DB
}

func NewResourceServer(cfg *config.Config, logger *zap.Logger, db *sql.DB) *ResourceServer {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	transport.NewDocumentHandler[domain.Role, *domain.Role](store.NewPostgres[domain.Role, *domain.Role](db, domain.KindRoles), domain.KindRoles, logger).RegisterRoutes(router)
	transport.NewDocumentHandler[domain.Category, *domain.Category](store.NewPostgres[domain.Category, *domain.Category](db, domain.KindCategories), domain.KindCategories, logger).RegisterRoutes(router)
	transport.NewDocumentHandler[domain.Product, *domain.Product](store.NewPostgres[domain.Product, *domain.Product](db, domain.KindProducts), domain.KindProducts, logger).RegisterRoutes(router)
	transport.NewDocumentHandler[domain.Service, *domain.Service](store.NewPostgres[domain.Service, *domain.Service](db, domain.KindServices), domain.KindServices, logger).RegisterRoutes(router)
	transport.NewDocumentHandler[domain.User, *domain.User](store.NewPostgres[domain.User, *domain.User](db, domain.KindUsers), domain.KindUsers, logger).RegisterRoutes(router)
	transport.NewDocumentHandler[domain.Client, *domain.Client](store.NewPostgres[domain.Client, *domain.Client](db, domain.KindClients), domain.KindClients, logger).RegisterRoutes(router)
	transport.NewDocumentHandler[domain.Provider, *domain.Provider](store.NewPostgres[domain.Provider, *domain.Provider](db, domain.KindProviders), domain.KindProviders, logger).RegisterRoutes(router)

	return &ResourceServer{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		logger: logger,
		db:     db,
	}
}

func (s *ResourceServer) Close() error {
	s.logger.Info("Closing resource server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
