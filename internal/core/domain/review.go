package domain

import "strings"

// Review is a rating left by a user on a place. The place and user
// references are immutable once set; only text and rating may change.
type Review struct {
	Entity
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

// NewReview validates and constructs a Review. PlaceID and UserID must
// already be resolved to existing entities by the caller.
func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	if err := validateReviewText(text); err != nil {
		return nil, err
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	if placeID == "" {
		return nil, invalid("place_id", "is required")
	}
	if userID == "" {
		return nil, invalid("user_id", "is required")
	}
	return &Review{
		Entity:  NewEntity(),
		Text:    text,
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	}, nil
}

// ReviewUpdate carries the fields of a partial review update. The place and
// user references are deliberately absent: they cannot be reassigned.
type ReviewUpdate struct {
	Text   *string
	Rating *int
}

// Apply validates the fields present in u and merges them into the review.
func (r *Review) Apply(u ReviewUpdate) error {
	if u.Text != nil {
		if err := validateReviewText(*u.Text); err != nil {
			return err
		}
	}
	if u.Rating != nil {
		if err := validateRating(*u.Rating); err != nil {
			return err
		}
	}

	if u.Text != nil {
		r.Text = *u.Text
	}
	if u.Rating != nil {
		r.Rating = *u.Rating
	}
	r.Touch()
	return nil
}

func validateReviewText(text string) error {
	if strings.TrimSpace(text) == "" {
		return invalid("text", "is required")
	}
	return nil
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return invalid("rating", "must be between 1 and 5")
	}
	return nil
}
