package domain

import (
	"strings"
	"unicode/utf8"
)

const maxAmenityNameLen = 50

// Amenity is a feature a place can offer (wifi, pool, parking, ...).
// Names are stored trimmed and are unique across amenities.
type Amenity struct {
	Entity
	Name string `json:"name"`
}

// NewAmenity validates and constructs an Amenity. The name is trimmed
// before storage.
func NewAmenity(name string) (*Amenity, error) {
	trimmed, err := validateAmenityName(name)
	if err != nil {
		return nil, err
	}
	return &Amenity{Entity: NewEntity(), Name: trimmed}, nil
}

// AmenityUpdate carries the fields of a partial amenity update.
type AmenityUpdate struct {
	Name *string
}

// Apply validates the fields present in u and merges them into the amenity.
func (a *Amenity) Apply(u AmenityUpdate) error {
	if u.Name != nil {
		trimmed, err := validateAmenityName(*u.Name)
		if err != nil {
			return err
		}
		a.Name = trimmed
	}
	a.Touch()
	return nil
}

func validateAmenityName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("name", "is required")
	}
	if utf8.RuneCountInString(trimmed) > maxAmenityNameLen {
		return "", invalid("name", "must be at most 50 characters")
	}
	return trimmed, nil
}
