package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant-related handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// List handles GET /restaurants
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.restaurantUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "")
}

// GetByID handles GET /restaurants/:id
func (h *RestaurantHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant id")
	}

	restaurant, err := h.restaurantUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "")
}

// GetByName handles GET /restaurants/name/:name
func (h *RestaurantHandler) GetByName(c echo.Context) error {
	restaurants, err := h.restaurantUC.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurants, "")
}

// GetByDistrict handles GET /restaurants/district/:district
func (h *RestaurantHandler) GetByDistrict(c echo.Context) error {
	restaurant, err := h.restaurantUC.GetByDistrict(c.Request().Context(), c.Param("district"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, restaurant, "")
}

// Register handles POST /restaurants. All fields are required and
// enforced by the request validator before the workflow runs.
func (h *RestaurantHandler) Register(c echo.Context) error {
	var input usecase.RegisterRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	restaurant, err := h.restaurantUC.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant registered successfully")
}

// Update handles PUT /restaurants/:id
func (h *RestaurantHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant id")
	}

	var input usecase.UpdateRestaurantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	if _, err := h.restaurantUC.Update(c.Request().Context(), id, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Delete handles DELETE /restaurants/:id
func (h *RestaurantHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant id")
	}

	if err := h.restaurantUC.DeleteByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
