package handler

import "github.com/hbnb/hbnb-api/internal/core/domain"

type createPlaceRequest struct {
	Title       string  `json:"title"       validate:"required,max=99"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Latitude    float64 `json:"latitude"    validate:"gte=-90,lte=90"`
	Longitude   float64 `json:"longitude"   validate:"gte=-180,lte=180"`
}

type updatePlaceRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,max=99"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Latitude    *float64 `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
	OwnerID     *string  `json:"owner_id"`
}

type addAmenityRequest struct {
	AmenityID string `json:"amenity_id" validate:"required"`
}

// placeDetailResponse is the full listing view with owner, amenities and
// reviews resolved from their ids.
type placeDetailResponse struct {
	*domain.Place
	Owner     *domain.User      `json:"owner"`
	Amenities []*domain.Amenity `json:"amenities"`
	Reviews   []*domain.Review  `json:"reviews"`
}
