package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/hbnb-api/internal/api/metrics"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// AmenityHandler handles HTTP requests for the amenity catalogue. Mutations
// are admin-gated at the router level.
type AmenityHandler struct {
	facade ports.Facade
}

func NewAmenityHandler(facade ports.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

type createAmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type updateAmenityRequest struct {
	Name *string `json:"name" validate:"omitempty,max=50"`
}

// Create adds a new amenity to the catalogue.
//
// @Summary      Create an amenity
// @Tags         amenities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAmenityRequest  true  "Amenity details"
// @Success      201   {object}  domain.Amenity
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/amenities [post]
func (h *AmenityHandler) Create(c echo.Context) error {
	var req createAmenityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amenity, err := h.facade.CreateAmenity(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("amenity").Inc()
	return c.JSON(http.StatusCreated, amenity)
}

// Get returns a single amenity by id.
//
// @Summary      Get an amenity
// @Tags         amenities
// @Produce      json
// @Param        id   path      string  true  "Amenity id"
// @Success      200  {object}  domain.Amenity
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/amenities/{id} [get]
func (h *AmenityHandler) Get(c echo.Context) error {
	amenity, err := h.facade.GetAmenity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, amenity)
}

// List returns the full amenity catalogue.
//
// @Summary      List amenities
// @Tags         amenities
// @Produce      json
// @Success      200  {array}  domain.Amenity
// @Router       /api/v1/amenities [get]
func (h *AmenityHandler) List(c echo.Context) error {
	amenities, err := h.facade.ListAmenities(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, amenities)
}

// Update renames an amenity.
//
// @Summary      Update an amenity
// @Tags         amenities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Amenity id"
// @Param        body  body      updateAmenityRequest  true  "Fields to update"
// @Success      200   {object}  domain.Amenity
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/amenities/{id} [put]
func (h *AmenityHandler) Update(c echo.Context) error {
	var req updateAmenityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amenity, err := h.facade.UpdateAmenity(c.Request().Context(), c.Param("id"), ports.UpdateAmenityInput{
		Name: req.Name,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, amenity)
}
