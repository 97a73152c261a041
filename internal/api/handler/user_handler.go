package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hbnb/hbnb-api/internal/api/metrics"
	"github.com/hbnb/hbnb-api/internal/core/domain"
	"github.com/hbnb/hbnb-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	facade ports.Facade
}

func NewUserHandler(facade ports.Facade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create registers a new user account.
//
// Anonymous registration is allowed; an authenticated non-admin caller is
// rejected, and only admins may grant the admin flag.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, isAdmin, ok := ctxOptionalIdentity(c); ok && !isAdmin {
		return domain.ErrForbidden
	} else if !ok {
		// Anonymous callers cannot self-grant admin.
		req.IsAdmin = false
	}

	user, err := h.facade.CreateUser(c.Request().Context(), ports.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("user").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Get returns a single user by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.facade.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List returns all users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.facade.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update applies a partial update to a user.
//
// A non-admin may only update their own account, and may not change their
// email or password through this endpoint.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	callerID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if !isAdmin && callerID != id {
		return domain.ErrForbidden
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if !isAdmin && (req.Email != nil || req.Password != nil) {
		return echo.NewHTTPError(http.StatusBadRequest, "you cannot modify email or password")
	}
	if !isAdmin {
		req.IsAdmin = nil
	}

	user, err := h.facade.UpdateUser(c.Request().Context(), id, ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
