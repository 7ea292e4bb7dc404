package transport

import (
	"encoding/json"
	"net/http"

	"mercado/internal/domain"
	"mercado/internal/middleware"
	"mercado/internal/service"
	"mercado/internal/validate"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles login and public registration.
type AuthHandler struct {
	auth   *service.Auth
	users  *service.Resource[domain.User, *domain.User]
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *service.Auth, users *service.Resource[domain.User, *domain.User], logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, users: users, logger: logger}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
	})
}

// Login checks the credential pair and returns the session descriptor.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		// One generic message for every failure; do not reveal whether the
		// email exists.
		middleware.RespondWithError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	h.logger.Info("Admin logged in", zap.String("email", session.Email))
	middleware.RespondWithJSON(w, http.StatusOK, session)
}

// Register creates a back-office user through the users service.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := decodeJSON(r, &user); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	col, err := h.users.GetAll(r.Context())
	if err != nil {
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	if errs := validate.User(user, col.Data, 0); !errs.Valid() {
		middleware.RespondWithFieldErrors(w, errs)
		return
	}

	created, err := h.auth.Register(r.Context(), user)
	if err != nil {
		h.logger.Error("Registration failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	h.logger.Info("User registered", zap.String("email", user.Email))
	middleware.RespondWithJSON(w, http.StatusCreated, ItemResponse[domain.User]{Data: created.Data, Source: created.Source})
}
