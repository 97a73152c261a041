package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/hbnb-api/internal/api/metrics"
	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
	"github.com/hbnb/hbnb-api/internal/infrastructure/db/redis"
)

// PlaceHandler handles HTTP requests for place listings. The listing cache
// may be nil, in which case every List call hits storage.
type PlaceHandler struct {
	facade ports.Facade
	cache  *redis.ListingCache
}

func NewPlaceHandler(facade ports.Facade, cache *redis.ListingCache) *PlaceHandler {
	return &PlaceHandler{facade: facade, cache: cache}
}

// Create registers a new place owned by the authenticated user.
//
// @Summary      Create a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlaceRequest  true  "Place details"
// @Success      201   {object}  domain.Place
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	place, err := h.facade.CreatePlace(c.Request().Context(), ports.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     callerID,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("place").Inc()
	_ = h.cache.Invalidate(c.Request().Context())
	return c.JSON(http.StatusCreated, place)
}

// Get returns the full detail view of a place: owner, amenities, reviews.
//
// @Summary      Get a place
// @Tags         places
// @Produce      json
// @Param        id   path      string  true  "Place id"
// @Success      200  {object}  placeDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/places/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	detail, err := h.facade.GetPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, placeDetailResponse{
		Place:     detail.Place,
		Owner:     detail.Owner,
		Amenities: detail.Amenities,
		Reviews:   detail.Reviews,
	})
}

// List returns all places, served from the Redis cache when warm.
//
// @Summary      List places
// @Tags         places
// @Produce      json
// @Success      200  {array}  domain.Place
// @Router       /api/v1/places [get]
func (h *PlaceHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if payload, hit, err := h.cache.Get(ctx); err == nil && hit {
		metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
		return c.JSONBlob(http.StatusOK, payload)
	}
	metrics.ListingCacheTotal.WithLabelValues("miss").Inc()

	places, err := h.facade.ListPlaces(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(places)
	if err != nil {
		return err
	}
	_ = h.cache.Set(ctx, payload)

	return c.JSONBlob(http.StatusOK, payload)
}

// Update applies a partial update to a place. Only the owner or an admin
// may modify a listing.
//
// @Summary      Update a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Place id"
// @Param        body  body      updatePlaceRequest  true  "Fields to update"
// @Success      200   {object}  domain.Place
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/places/{id} [put]
func (h *PlaceHandler) Update(c echo.Context) error {
	callerID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	detail, err := h.facade.GetPlace(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !isAdmin && detail.Place.OwnerID != callerID {
		return domain.ErrForbidden
	}

	var req updatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !isAdmin {
		// Only admins may transfer ownership.
		req.OwnerID = nil
	}

	place, err := h.facade.UpdatePlace(c.Request().Context(), id, ports.UpdatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		return err
	}

	_ = h.cache.Invalidate(c.Request().Context())
	return c.JSON(http.StatusOK, place)
}

// AddAmenity associates an amenity with a place. Idempotent. Only the owner
// or an admin may modify a listing.
//
// @Summary      Add an amenity to a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Place id"
// @Param        body  body      addAmenityRequest  true  "Amenity reference"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/places/{id}/amenities [post]
func (h *PlaceHandler) AddAmenity(c echo.Context) error {
	callerID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	detail, err := h.facade.GetPlace(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !isAdmin && detail.Place.OwnerID != callerID {
		return domain.ErrForbidden
	}

	var req addAmenityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.facade.AddAmenityToPlace(c.Request().Context(), id, req.AmenityID); err != nil {
		return err
	}

	_ = h.cache.Invalidate(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]string{"message": "amenity added"})
}

// ListReviews returns the reviews of a place in insertion order.
//
// @Summary      List reviews for a place
// @Tags         places
// @Produce      json
// @Param        id   path      string  true  "Place id"
// @Success      200  {array}   domain.Review
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/places/{id}/reviews [get]
func (h *PlaceHandler) ListReviews(c echo.Context) error {
	reviews, err := h.facade.GetReviewsByPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}
