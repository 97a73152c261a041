package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// CreateUser hashes the supplied password, rejects duplicate emails, and
// persists the new account. Email uniqueness is enforced here; the
// relational backing's unique constraint is a second line of defense.
func (f *Facade) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "is required"}
	}

	if existing, err := f.users.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailExists
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, string(hash), in.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := f.users.Create(ctx, user); err != nil {
		f.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create user")
		return nil, err
	}

	f.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByEmail(ctx, email)
}

func (f *Facade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users.List(ctx)
}

// UpdateUser re-validates only the fields present in the payload. A changed
// email must not collide with another account; a changed password is
// re-hashed before storage.
func (f *Facade) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		if existing, err := f.users.GetByEmail(ctx, *in.Email); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrEmailExists
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	update := domain.UserUpdate{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsAdmin:   in.IsAdmin,
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, &domain.ValidationError{Field: "password", Reason: "is required"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		update.PasswordHash = &h
	}

	if err := user.Apply(update); err != nil {
		return nil, err
	}
	if err := f.users.Update(ctx, user); err != nil {
		return nil, err
	}

	f.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}
