package ports

import (
	"context"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

// CreateUserInput carries all data needed to register a user. Password is
// plaintext here; the facade hashes it before anything is persisted.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	IsAdmin   *bool
}

// CreatePlaceInput carries all data needed to create a listing. OwnerID is
// an unresolved user id; the facade resolves it before construction.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
}

// UpdatePlaceInput is a partial update. A non-nil OwnerID is re-resolved
// and re-validated the same way as at creation.
type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
}

// PlaceDetail is the full listing view: the place with its owner, amenities
// and reviews resolved from their ids.
type PlaceDetail struct {
	Place     *domain.Place
	Owner     *domain.User
	Amenities []*domain.Amenity
	Reviews   []*domain.Review
}

// CreateReviewInput carries all data needed to create a review. Both ids
// are resolved by the facade; self-reviews and duplicates are rejected.
type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// UpdateReviewInput is a partial update; the place and user references are
// immutable and cannot appear here.
type UpdateReviewInput struct {
	Text   *string
	Rating *int
}

// UpdateAmenityInput is a partial update.
type UpdateAmenityInput struct {
	Name *string
}

// Facade is the single business-logic entry point consumed by the HTTP
// layer; handlers never reach around it to the repositories.
type Facade interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)

	CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error)
	GetAmenity(ctx context.Context, id string) (*domain.Amenity, error)
	ListAmenities(ctx context.Context) ([]*domain.Amenity, error)
	UpdateAmenity(ctx context.Context, id string, in UpdateAmenityInput) (*domain.Amenity, error)

	CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, id string) (*PlaceDetail, error)
	ListPlaces(ctx context.Context) ([]*domain.Place, error)
	UpdatePlace(ctx context.Context, id string, in UpdatePlaceInput) (*domain.Place, error)
	AddAmenityToPlace(ctx context.Context, placeID, amenityID string) error

	CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]*domain.Review, error)
	GetReviewsByPlace(ctx context.Context, placeID string) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, id string, in UpdateReviewInput) (*domain.Review, error)
	// DeleteReview reports whether a deletion actually occurred.
	DeleteReview(ctx context.Context, id string) (bool, error)

	// Login verifies credentials and returns a signed access token carrying
	// the user id and admin flag as claims.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
