package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/hbnb-api/internal/api/metrics"
	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	facade ports.Facade
}

func NewReviewHandler(facade ports.Facade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

type createReviewRequest struct {
	Text    string `json:"text"     validate:"required"`
	Rating  int    `json:"rating"   validate:"required,gte=1,lte=5"`
	PlaceID string `json:"place_id" validate:"required"`
}

type updateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// Create submits a review as the authenticated user. Owners cannot review
// their own place and a user may review a given place only once.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	callerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.facade.CreateReview(c.Request().Context(), ports.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: req.PlaceID,
		UserID:  callerID,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("review").Inc()
	return c.JSON(http.StatusCreated, review)
}

// Get returns a single review by id.
//
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  domain.Review
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.facade.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// List returns all reviews.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}  domain.Review
// @Router       /api/v1/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.facade.ListReviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Update edits the text or rating of a review. Only the author or an admin
// may edit; the place and user references are immutable.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Review id"
// @Param        body  body      updateReviewRequest  true  "Fields to update"
// @Success      200   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	callerID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	existing, err := h.facade.GetReview(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !isAdmin && existing.UserID != callerID {
		return domain.ErrForbidden
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.facade.UpdateReview(c.Request().Context(), id, ports.UpdateReviewInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Delete removes a review. Only the author or an admin may delete.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	callerID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	existing, err := h.facade.GetReview(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !isAdmin && existing.UserID != callerID {
		return domain.ErrForbidden
	}

	deleted, err := h.facade.DeleteReview(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrReviewNotFound
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "review deleted"})
}
