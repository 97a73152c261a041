package handler

import (
	"context"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// stubFacade implements ports.Facade with overridable function fields so each
// test supplies only the calls it expects. Unset calls panic loudly.
type stubFacade struct {
	createUserFn  func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getUserFn     func(ctx context.Context, id string) (*domain.User, error)
	listUsersFn   func(ctx context.Context) ([]*domain.User, error)
	updateUserFn  func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	createPlaceFn func(ctx context.Context, in ports.CreatePlaceInput) (*domain.Place, error)
	getPlaceFn    func(ctx context.Context, id string) (*ports.PlaceDetail, error)
	listPlacesFn  func(ctx context.Context) ([]*domain.Place, error)
	updatePlaceFn func(ctx context.Context, id string, in ports.UpdatePlaceInput) (*domain.Place, error)
	addAmenityFn  func(ctx context.Context, placeID, amenityID string) error

	createReviewFn func(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error)
	getReviewFn    func(ctx context.Context, id string) (*domain.Review, error)
	deleteReviewFn func(ctx context.Context, id string) (bool, error)
	loginFn        func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubFacade) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createUserFn(ctx, in)
}

func (s *stubFacade) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getUserFn(ctx, id)
}

func (s *stubFacade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	panic("not wired")
}

func (s *stubFacade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubFacade) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateUserFn(ctx, id, in)
}

func (s *stubFacade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	panic("not wired")
}

func (s *stubFacade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	panic("not wired")
}

func (s *stubFacade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	panic("not wired")
}

func (s *stubFacade) UpdateAmenity(ctx context.Context, id string, in ports.UpdateAmenityInput) (*domain.Amenity, error) {
	panic("not wired")
}

func (s *stubFacade) CreatePlace(ctx context.Context, in ports.CreatePlaceInput) (*domain.Place, error) {
	return s.createPlaceFn(ctx, in)
}

func (s *stubFacade) GetPlace(ctx context.Context, id string) (*ports.PlaceDetail, error) {
	return s.getPlaceFn(ctx, id)
}

func (s *stubFacade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return s.listPlacesFn(ctx)
}

func (s *stubFacade) UpdatePlace(ctx context.Context, id string, in ports.UpdatePlaceInput) (*domain.Place, error) {
	return s.updatePlaceFn(ctx, id, in)
}

func (s *stubFacade) AddAmenityToPlace(ctx context.Context, placeID, amenityID string) error {
	return s.addAmenityFn(ctx, placeID, amenityID)
}

func (s *stubFacade) CreateReview(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	return s.createReviewFn(ctx, in)
}

func (s *stubFacade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return s.getReviewFn(ctx, id)
}

func (s *stubFacade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	panic("not wired")
}

func (s *stubFacade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*domain.Review, error) {
	panic("not wired")
}

func (s *stubFacade) UpdateReview(ctx context.Context, id string, in ports.UpdateReviewInput) (*domain.Review, error) {
	panic("not wired")
}

func (s *stubFacade) DeleteReview(ctx context.Context, id string) (bool, error) {
	return s.deleteReviewFn(ctx, id)
}

func (s *stubFacade) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}
