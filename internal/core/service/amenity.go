package service

import (
	"context"
	"errors"
	"strings"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// CreateAmenity trims and validates the name, then rejects duplicates.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if existing, err := f.amenities.GetByName(ctx, amenity.Name); err == nil && existing != nil {
		return nil, domain.ErrAmenityExists
	} else if err != nil && !errors.Is(err, domain.ErrAmenityNotFound) {
		return nil, err
	}

	if err := f.amenities.Create(ctx, amenity); err != nil {
		f.logger.Error().Err(err).Str("name", amenity.Name).Msg("failed to create amenity")
		return nil, err
	}

	f.logger.Info().Str("amenity_id", amenity.ID).Str("name", amenity.Name).Msg("amenity created")
	return amenity, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*domain.Amenity, error) {
	return f.amenities.GetByID(ctx, id)
}

func (f *Facade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return f.amenities.List(ctx)
}

// UpdateAmenity re-validates the new name and keeps uniqueness intact.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, in ports.UpdateAmenityInput) (*domain.Amenity, error) {
	amenity, err := f.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		trimmed := strings.TrimSpace(*in.Name)
		if existing, err := f.amenities.GetByName(ctx, trimmed); err == nil && existing != nil && existing.ID != id {
			return nil, domain.ErrAmenityExists
		} else if err != nil && !errors.Is(err, domain.ErrAmenityNotFound) {
			return nil, err
		}
	}

	if err := amenity.Apply(domain.AmenityUpdate{Name: in.Name}); err != nil {
		return nil, err
	}
	if err := f.amenities.Update(ctx, amenity); err != nil {
		return nil, err
	}

	f.logger.Info().Str("amenity_id", amenity.ID).Msg("amenity updated")
	return amenity, nil
}
