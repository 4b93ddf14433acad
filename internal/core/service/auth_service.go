package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aitax/tax-system/internal/core/domain"
	"github.com/aitax/tax-system/internal/core/ports"
)

// AuthService implements the simulated login flow over the seeded demo
// accounts. Both login variants set the session to the signed-in user.
type AuthService struct {
	users     ports.UserRepository
	session   ports.SessionService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, session ports.SessionService, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, session: session, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	return s.establish(ctx, user)
}

// DemoLogin signs in as the seeded demo account for a tier. The tier is
// validated up front: an unknown tier is a caller error, never a default.
func (s *AuthService) DemoLogin(ctx context.Context, rawTier string) (string, *domain.User, error) {
	tier, err := domain.ParseTier(rawTier)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByTier(ctx, tier)
	if err != nil {
		return "", nil, err
	}

	return s.establish(ctx, user)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *AuthService) establish(ctx context.Context, user *domain.User) (string, *domain.User, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	if err := s.session.Set(ctx, user); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"tier":    string(user.Tier),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
