package service

import (
	"context"
	"errors"
	"time"

	"mercado/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The product ships with exactly one back-office credential. Any other input
// fails with the same generic error, deliberately not distinguishing an
// unknown email from a wrong password.
const (
	adminEmail    = "admin@admin.com"
	adminPassword = "admin123"
	adminName     = "Administrator"
	adminRole     = "admin"

	sessionExpiration = 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Session describes an authenticated back-office session.
type Session struct {
	ID    domain.ID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Token string    `json:"token"`
}

// Auth performs the single credential check and delegates registration to the
// users service.
type Auth struct {
	users     *Resource[domain.User, *domain.User]
	jwtSecret string
	logger    *zap.Logger
}

// NewAuth creates the auth operation.
func NewAuth(users *Resource[domain.User, *domain.User], jwtSecret string, logger *zap.Logger) *Auth {
	return &Auth{users: users, jwtSecret: jwtSecret, logger: logger}
}

// Login checks the fixed credential pair and produces a session descriptor
// with a signed token.
func (a *Auth) Login(email, password string) (Session, error) {
	if email != adminEmail || password != adminPassword {
		a.logger.Debug("Login rejected", zap.String("email", email))
		return Session{}, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": "1",
		"role":    adminRole,
		"jti":     uuid.NewString(),
		"iat":     jwt.NewNumericDate(time.Now()),
		"exp":     jwt.NewNumericDate(time.Now().Add(sessionExpiration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.jwtSecret))
	if err != nil {
		return Session{}, errors.New("failed to sign session token")
	}

	return Session{
		ID:    1,
		Name:  adminName,
		Email: adminEmail,
		Role:  adminRole,
		Token: signed,
	}, nil
}

// Register is a passthrough to the users service create operation.
func (a *Auth) Register(ctx context.Context, user domain.User) (Item[domain.User], error) {
	return a.users.Create(ctx, user)
}
