package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

func TestFacade_Login_Success(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	created, err := f.CreateUser(ctx, ports.CreateUserInput{
		FirstName: "Root", LastName: "Admin", Email: "admin@example.com", Password: "s3cret", IsAdmin: true,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	token, user, err := f.Login(ctx, "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" || user.ID != created.ID {
		t.Fatalf("unexpected login result")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != created.ID {
		t.Fatalf("expected sub claim %q, got %v", created.ID, claims["sub"])
	}
	if claims["is_admin"] != true {
		t.Fatalf("expected is_admin claim, got %v", claims["is_admin"])
	}
}

func TestFacade_Login_WrongPassword(t *testing.T) {
	f := newTestFacade()
	ctx := context.Background()

	_, _ = f.CreateUser(ctx, ports.CreateUserInput{
		FirstName: "A", LastName: "B", Email: "a@example.com", Password: "goodpass",
	})
	if _, _, err := f.Login(ctx, "a@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestFacade_Login_UnknownEmail(t *testing.T) {
	f := newTestFacade()
	// Unknown email must be indistinguishable from a wrong password.
	if _, _, err := f.Login(context.Background(), "ghost@example.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestFacade_Login_MissingCredentials(t *testing.T) {
	f := newTestFacade()
	if _, _, err := f.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
