// Package service implements the business-logic facade over the entity
// repositories. All cross-entity rules live here: owner resolution,
// uniqueness checks, review wiring. The HTTP layer calls nothing else.
package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hbnb/hbnb-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// Facade orchestrates the four repositories and implements ports.Facade.
type Facade struct {
	users     ports.UserRepository
	places    ports.PlaceRepository
	amenities ports.AmenityRepository
	reviews   ports.ReviewRepository

	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewFacade(
	users ports.UserRepository,
	places ports.PlaceRepository,
	amenities ports.AmenityRepository,
	reviews ports.ReviewRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *Facade {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &Facade{
		users:     users,
		places:    places,
		amenities: amenities,
		reviews:   reviews,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}
