package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler holds dependencies for menu-related handlers
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// List handles GET /food
func (h *FoodHandler) List(c echo.Context) error {
	foods, err := h.foodUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetByID handles GET /food/:id
func (h *FoodHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid food id")
	}

	food, err := h.foodUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, food, "")
}

// GetByRestaurant handles GET /food/restaurant/:id
func (h *FoodHandler) GetByRestaurant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant id")
	}

	foods, err := h.foodUC.GetByRestaurant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetByPriceRange handles GET /food/price-range?minPrice=&maxPrice=
func (h *FoodHandler) GetByPriceRange(c echo.Context) error {
	minPrice, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRICE_RANGE", "Invalid minPrice parameter")
	}
	maxPrice, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_PRICE_RANGE", "Invalid maxPrice parameter")
	}

	foods, err := h.foodUC.GetByPriceRange(c.Request().Context(), minPrice, maxPrice)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetByCategory handles GET /food/category/:category
func (h *FoodHandler) GetByCategory(c echo.Context) error {
	foods, err := h.foodUC.GetByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetByName handles GET /food/name/:name
func (h *FoodHandler) GetByName(c echo.Context) error {
	foods, err := h.foodUC.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetVegetarian handles GET /food/type/vegetarian
func (h *FoodHandler) GetVegetarian(c echo.Context) error {
	foods, err := h.foodUC.GetVegetarian(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// Add handles POST /food
func (h *FoodHandler) Add(c echo.Context) error {
	var input usecase.AddFoodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}

	food, err := h.foodUC.Add(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, food, "Food added successfully")
}

// Update handles PUT /food/:id
func (h *FoodHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid food id")
	}

	var input usecase.UpdateFoodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}

	food, err := h.foodUC.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, food, "Food updated successfully")
}

// Delete handles DELETE /food/:id
func (h *FoodHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid food id")
	}

	if err := h.foodUC.DeleteByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
