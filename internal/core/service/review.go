package service

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// CreateReview resolves both references, forbids reviewing one's own place,
// and enforces at most one review per (user, place) pair.
func (f *Facade) CreateReview(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	user, err := f.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	place, err := f.places.GetByID(ctx, in.PlaceID)
	if err != nil {
		return nil, err
	}

	if place.OwnerID == user.ID {
		return nil, domain.ErrSelfReview
	}

	if existing, err := f.reviews.GetByUserAndPlace(ctx, user.ID, place.ID); err == nil && existing != nil {
		return nil, domain.ErrDuplicateReview
	} else if err != nil && !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	review, err := domain.NewReview(in.Text, in.Rating, place.ID, user.ID)
	if err != nil {
		return nil, err
	}

	if err := f.reviews.Create(ctx, review); err != nil {
		f.logger.Error().Err(err).Str("place_id", place.ID).Msg("failed to create review")
		return nil, err
	}

	// The place's review collection is derived from the review store, but a
	// new review still counts as a mutation of the listing.
	place.Touch()
	if err := f.places.Update(ctx, place); err != nil {
		return nil, err
	}

	f.logger.Info().
		Str("review_id", review.ID).
		Str("place_id", place.ID).
		Str("user_id", user.ID).
		Msg("review created")
	return review, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	return f.reviews.GetByID(ctx, id)
}

func (f *Facade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews.List(ctx)
}

// GetReviewsByPlace filters the review store by place id. The place must
// exist; an unknown id is a not-found error, not an empty list.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*domain.Review, error) {
	if _, err := f.places.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return f.reviews.ListByPlace(ctx, placeID)
}

// UpdateReview re-validates only text and rating; the place and user
// references are immutable.
func (f *Facade) UpdateReview(ctx context.Context, id string, in ports.UpdateReviewInput) (*domain.Review, error) {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := review.Apply(domain.ReviewUpdate{Text: in.Text, Rating: in.Rating}); err != nil {
		return nil, err
	}
	if err := f.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	f.logger.Info().Str("review_id", review.ID).Msg("review updated")
	return review, nil
}

// DeleteReview removes the review and reports whether a deletion occurred.
// The owning place is touched so its updated_at reflects the change.
func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReviewNotFound) {
			return false, nil
		}
		return false, err
	}

	deleted, err := f.reviews.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}

	if place, err := f.places.GetByID(ctx, review.PlaceID); err == nil {
		place.Touch()
		_ = f.places.Update(ctx, place)
	}

	f.logger.Info().Str("review_id", id).Msg("review deleted")
	return true, nil
}
