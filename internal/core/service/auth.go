package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

// Login verifies the credentials and returns a signed HS256 access token
// bundling the user id and admin flag as claims. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (f *Facade) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := f.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		f.logger.Warn().Str("user_id", user.ID).Msg("failed login attempt")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := f.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	f.logger.Info().Str("user_id", user.ID).Msg("login successful")
	return token, user, nil
}

func (f *Facade) issueToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"is_admin": user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(f.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(f.jwtSecret))
}
