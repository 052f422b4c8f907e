package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"timekeep/internal/domain/users"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	Users    *users.Store
	Secret   string
	TokenTTL time.Duration
}

func NewService(store *users.Store, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{Users: store, Secret: secret, TokenTTL: ttl}
}

// Login verifies credentials and returns a signed token plus the user.
func (s *Service) Login(ctx context.Context, email, password string) (string, users.User, error) {
	user, hash, err := s.Users.GetCredentials(ctx, email)
	if errors.Is(err, users.ErrNotFound) {
		return "", users.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", users.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", users.User{}, ErrInvalidCredentials
	}

	token, err := IssueToken(s.Secret, user.ID, user.Role, s.TokenTTL)
	if err != nil {
		return "", users.User{}, err
	}
	return token, user, nil
}
