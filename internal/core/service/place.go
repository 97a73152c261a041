package service

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// CreatePlace resolves the owner id to an existing user before construction
// and enforces title uniqueness across listings.
func (f *Facade) CreatePlace(ctx context.Context, in ports.CreatePlaceInput) (*domain.Place, error) {
	owner, err := f.users.GetByID(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}

	if existing, err := f.places.GetByTitle(ctx, in.Title); err == nil && existing != nil {
		return nil, domain.ErrPlaceExists
	} else if err != nil && !errors.Is(err, domain.ErrPlaceNotFound) {
		return nil, err
	}

	place, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, owner.ID)
	if err != nil {
		return nil, err
	}

	if err := f.places.Create(ctx, place); err != nil {
		f.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create place")
		return nil, err
	}

	f.logger.Info().Str("place_id", place.ID).Str("owner_id", owner.ID).Msg("place created")
	return place, nil
}

// GetPlace returns the full listing view with owner, amenities and reviews
// resolved from their ids.
func (f *Facade) GetPlace(ctx context.Context, id string) (*ports.PlaceDetail, error) {
	place, err := f.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := f.users.GetByID(ctx, place.OwnerID)
	if err != nil {
		return nil, err
	}

	amenities := make([]*domain.Amenity, 0, len(place.AmenityIDs))
	for _, aid := range place.AmenityIDs {
		a, err := f.amenities.GetByID(ctx, aid)
		if err != nil {
			if errors.Is(err, domain.ErrAmenityNotFound) {
				continue
			}
			return nil, err
		}
		amenities = append(amenities, a)
	}

	reviews, err := f.reviews.ListByPlace(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.PlaceDetail{
		Place:     place,
		Owner:     owner,
		Amenities: amenities,
		Reviews:   reviews,
	}, nil
}

func (f *Facade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return f.places.List(ctx)
}

// UpdatePlace re-validates only the fields present. A changed owner_id is
// re-resolved exactly the way creation resolves it.
func (f *Facade) UpdatePlace(ctx context.Context, id string, in ports.UpdatePlaceInput) (*domain.Place, error) {
	place, err := f.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.OwnerID != nil {
		if _, err := f.users.GetByID(ctx, *in.OwnerID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrOwnerNotFound
			}
			return nil, err
		}
	}

	if in.Title != nil && *in.Title != place.Title {
		if existing, err := f.places.GetByTitle(ctx, *in.Title); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrPlaceExists
		} else if err != nil && !errors.Is(err, domain.ErrPlaceNotFound) {
			return nil, err
		}
	}

	if err := place.Apply(domain.PlaceUpdate{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     in.OwnerID,
	}); err != nil {
		return nil, err
	}
	if err := f.places.Update(ctx, place); err != nil {
		return nil, err
	}

	f.logger.Info().Str("place_id", place.ID).Msg("place updated")
	return place, nil
}

// AddAmenityToPlace associates an amenity with a place. The operation is
// idempotent: an existing association is left as-is without error.
func (f *Facade) AddAmenityToPlace(ctx context.Context, placeID, amenityID string) error {
	place, err := f.places.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	amenity, err := f.amenities.GetByID(ctx, amenityID)
	if err != nil {
		return err
	}

	if !place.AddAmenity(amenity.ID) {
		return nil
	}
	if err := f.places.AddAmenity(ctx, place.ID, amenity.ID); err != nil {
		return err
	}
	if err := f.places.Update(ctx, place); err != nil {
		return err
	}

	f.logger.Info().Str("place_id", place.ID).Str("amenity_id", amenity.ID).Msg("amenity associated")
	return nil
}
