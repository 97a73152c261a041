package memory

import (
	"context"

	"github.com/hbnb/hbnb-api/internal/core/domain"
)

// UserRepository is the in-memory ports.UserRepository.
type UserRepository struct {
	store *Store[*domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{store: NewStore(map[string]func(*domain.User) string{
		"email": func(u *domain.User) string { return u.Email },
	})}
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	return r.store.Add(u)
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.store.GetByAttribute("email", email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	return r.store.All(), nil
}

// Update is a near no-op: the store holds references, so the caller's
// mutations are already visible. Replace keeps the contract symmetric with
// the relational backing.
func (r *UserRepository) Update(_ context.Context, u *domain.User) error {
	if !r.store.Replace(u.ID, u) {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}

// PlaceRepository is the in-memory ports.PlaceRepository.
type PlaceRepository struct {
	store *Store[*domain.Place]
}

func NewPlaceRepository() *PlaceRepository {
	return &PlaceRepository{store: NewStore(map[string]func(*domain.Place) string{
		"title": func(p *domain.Place) string { return p.Title },
	})}
}

func (r *PlaceRepository) Create(_ context.Context, p *domain.Place) error {
	return r.store.Add(p)
}

func (r *PlaceRepository) GetByID(_ context.Context, id string) (*domain.Place, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}
	return p, nil
}

func (r *PlaceRepository) GetByTitle(_ context.Context, title string) (*domain.Place, error) {
	p, ok := r.store.GetByAttribute("title", title)
	if !ok {
		return nil, domain.ErrPlaceNotFound
	}
	return p, nil
}

func (r *PlaceRepository) List(_ context.Context) ([]*domain.Place, error) {
	return r.store.All(), nil
}

func (r *PlaceRepository) Update(_ context.Context, p *domain.Place) error {
	if !r.store.Replace(p.ID, p) {
		return domain.ErrPlaceNotFound
	}
	return nil
}

func (r *PlaceRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}

// AddAmenity only checks existence here: the association set lives on the
// place entity itself, which the store already references.
func (r *PlaceRepository) AddAmenity(_ context.Context, placeID, amenityID string) error {
	if _, ok := r.store.Get(placeID); !ok {
		return domain.ErrPlaceNotFound
	}
	return nil
}

// AmenityRepository is the in-memory ports.AmenityRepository.
type AmenityRepository struct {
	store *Store[*domain.Amenity]
}

func NewAmenityRepository() *AmenityRepository {
	return &AmenityRepository{store: NewStore(map[string]func(*domain.Amenity) string{
		"name": func(a *domain.Amenity) string { return a.Name },
	})}
}

func (r *AmenityRepository) Create(_ context.Context, a *domain.Amenity) error {
	return r.store.Add(a)
}

func (r *AmenityRepository) GetByID(_ context.Context, id string) (*domain.Amenity, error) {
	a, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrAmenityNotFound
	}
	return a, nil
}

func (r *AmenityRepository) GetByName(_ context.Context, name string) (*domain.Amenity, error) {
	a, ok := r.store.GetByAttribute("name", name)
	if !ok {
		return nil, domain.ErrAmenityNotFound
	}
	return a, nil
}

func (r *AmenityRepository) List(_ context.Context) ([]*domain.Amenity, error) {
	return r.store.All(), nil
}

func (r *AmenityRepository) Update(_ context.Context, a *domain.Amenity) error {
	if !r.store.Replace(a.ID, a) {
		return domain.ErrAmenityNotFound
	}
	return nil
}

// ReviewRepository is the in-memory ports.ReviewRepository.
type ReviewRepository struct {
	store *Store[*domain.Review]
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{store: NewStore[*domain.Review](nil)}
}

func (r *ReviewRepository) Create(_ context.Context, rv *domain.Review) error {
	return r.store.Add(rv)
}

func (r *ReviewRepository) GetByID(_ context.Context, id string) (*domain.Review, error) {
	rv, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return rv, nil
}

func (r *ReviewRepository) GetByUserAndPlace(_ context.Context, userID, placeID string) (*domain.Review, error) {
	for _, rv := range r.store.All() {
		if rv.UserID == userID && rv.PlaceID == placeID {
			return rv, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *ReviewRepository) List(_ context.Context) ([]*domain.Review, error) {
	return r.store.All(), nil
}

func (r *ReviewRepository) ListByPlace(_ context.Context, placeID string) ([]*domain.Review, error) {
	out := make([]*domain.Review, 0)
	for _, rv := range r.store.All() {
		if rv.PlaceID == placeID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *ReviewRepository) Update(_ context.Context, rv *domain.Review) error {
	if !r.store.Replace(rv.ID, rv) {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) Delete(_ context.Context, id string) (bool, error) {
	return r.store.Delete(id), nil
}
