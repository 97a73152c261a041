package ports

import (
	"context"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user. The relational backing cascades to the
	// user's places and reviews; it reports whether a removal occurred.
	Delete(ctx context.Context, id string) (bool, error)
}

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	Create(ctx context.Context, p *domain.Place) error
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	GetByTitle(ctx context.Context, title string) (*domain.Place, error)
	List(ctx context.Context) ([]*domain.Place, error)
	Update(ctx context.Context, p *domain.Place) error
	Delete(ctx context.Context, id string) (bool, error)
	// AddAmenity records the association. Adding an existing association
	// is a no-op.
	AddAmenity(ctx context.Context, placeID, amenityID string) error
}

// AmenityRepository defines persistence operations for amenities.
type AmenityRepository interface {
	Create(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	GetByName(ctx context.Context, name string) (*domain.Amenity, error)
	List(ctx context.Context) ([]*domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) error
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	// GetByUserAndPlace backs the one-review-per-user-per-place guarantee.
	GetByUserAndPlace(ctx context.Context, userID, placeID string) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]*domain.Review, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id string) (bool, error)
}
