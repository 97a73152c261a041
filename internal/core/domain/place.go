package domain

import (
	"strings"
	"unicode/utf8"
)

const maxTitleLen = 99

// Place is a rental listing. Related entities are referenced by id rather
// than held as live objects; the facade resolves ids against the
// repositories when a full view is needed.
type Place struct {
	Entity
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OwnerID     string  `json:"owner_id"`
	// AmenityIDs is a deduplicated set kept in association order.
	AmenityIDs []string `json:"amenity_ids,omitempty"`
}

// NewPlace validates all fields and constructs a Place. OwnerID must already
// be resolved to an existing user by the caller.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateLatitude(latitude); err != nil {
		return nil, err
	}
	if err := validateLongitude(longitude); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, invalid("owner_id", "is required")
	}
	return &Place{
		Entity:      NewEntity(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
	}, nil
}

// PlaceUpdate carries the fields of a partial place update.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *string
}

// Apply validates the fields present in u and merges them into the place.
// On any validation failure the place is left unchanged.
func (p *Place) Apply(u PlaceUpdate) error {
	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return err
		}
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}
	if u.Latitude != nil {
		if err := validateLatitude(*u.Latitude); err != nil {
			return err
		}
	}
	if u.Longitude != nil {
		if err := validateLongitude(*u.Longitude); err != nil {
			return err
		}
	}
	if u.OwnerID != nil && *u.OwnerID == "" {
		return invalid("owner_id", "is required")
	}

	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Latitude != nil {
		p.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		p.Longitude = *u.Longitude
	}
	if u.OwnerID != nil {
		p.OwnerID = *u.OwnerID
	}
	p.Touch()
	return nil
}

// HasAmenity reports whether the amenity is already associated.
func (p *Place) HasAmenity(amenityID string) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

// AddAmenity associates an amenity id, preserving set semantics. It reports
// whether the association was newly added.
func (p *Place) AddAmenity(amenityID string) bool {
	if p.HasAmenity(amenityID) {
		return false
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	p.Touch()
	return true
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalid("title", "is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return invalid("title", "must be at most 99 characters")
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return invalid("price", "must be positive")
	}
	return nil
}

func validateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return invalid("latitude", "must be between -90 and 90")
	}
	return nil
}

func validateLongitude(lng float64) error {
	if lng < -180 || lng > 180 {
		return invalid("longitude", "must be between -180 and 180")
	}
	return nil
}
