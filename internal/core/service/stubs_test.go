package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

// In-memory stubs mirroring the repository contracts, used by all facade
// tests in this package.

type stubUserRepo struct {
	users []*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) { return r.users, nil }

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error { return nil }

func (r *stubUserRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubPlaceRepo struct {
	places []*domain.Place
}

func (r *stubPlaceRepo) Create(_ context.Context, p *domain.Place) error {
	r.places = append(r.places, p)
	return nil
}

func (r *stubPlaceRepo) GetByID(_ context.Context, id string) (*domain.Place, error) {
	for _, p := range r.places {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPlaceNotFound
}

func (r *stubPlaceRepo) GetByTitle(_ context.Context, title string) (*domain.Place, error) {
	for _, p := range r.places {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, domain.ErrPlaceNotFound
}

func (r *stubPlaceRepo) List(_ context.Context) ([]*domain.Place, error) { return r.places, nil }

func (r *stubPlaceRepo) Update(_ context.Context, p *domain.Place) error { return nil }

func (r *stubPlaceRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, p := range r.places {
		if p.ID == id {
			r.places = append(r.places[:i], r.places[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubPlaceRepo) AddAmenity(_ context.Context, placeID, amenityID string) error { return nil }

type stubAmenityRepo struct {
	amenities []*domain.Amenity
}

func (r *stubAmenityRepo) Create(_ context.Context, a *domain.Amenity) error {
	r.amenities = append(r.amenities, a)
	return nil
}

func (r *stubAmenityRepo) GetByID(_ context.Context, id string) (*domain.Amenity, error) {
	for _, a := range r.amenities {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrAmenityNotFound
}

func (r *stubAmenityRepo) GetByName(_ context.Context, name string) (*domain.Amenity, error) {
	for _, a := range r.amenities {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, domain.ErrAmenityNotFound
}

func (r *stubAmenityRepo) List(_ context.Context) ([]*domain.Amenity, error) {
	return r.amenities, nil
}

func (r *stubAmenityRepo) Update(_ context.Context, a *domain.Amenity) error { return nil }

type stubReviewRepo struct {
	reviews []*domain.Review
}

func (r *stubReviewRepo) Create(_ context.Context, rv *domain.Review) error {
	r.reviews = append(r.reviews, rv)
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id string) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) GetByUserAndPlace(_ context.Context, userID, placeID string) (*domain.Review, error) {
	for _, rv := range r.reviews {
		if rv.UserID == userID && rv.PlaceID == placeID {
			return rv, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) List(_ context.Context) ([]*domain.Review, error) { return r.reviews, nil }

func (r *stubReviewRepo) ListByPlace(_ context.Context, placeID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.PlaceID == placeID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Update(_ context.Context, rv *domain.Review) error { return nil }

func (r *stubReviewRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func newTestFacade() *Facade {
	return NewFacade(
		&stubUserRepo{},
		&stubPlaceRepo{},
		&stubAmenityRepo{},
		&stubReviewRepo{},
		"secret",
		time.Hour,
		zerolog.Nop(),
	)
}
