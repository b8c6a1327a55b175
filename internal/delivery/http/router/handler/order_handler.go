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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// List handles GET /orders
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	order, err := h.orderUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetByCustomer handles GET /orders/customer/:customerId
func (h *OrderHandler) GetByCustomer(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	orders, err := h.orderUC.GetByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetByRestaurant handles GET /orders/restaurant/:restaurantId
func (h *OrderHandler) GetByRestaurant(c echo.Context) error {
	restaurantID, err := pathID(c, "restaurantId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant id")
	}

	orders, err := h.orderUC.GetByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Add handles POST /orders
func (h *OrderHandler) Add(c echo.Context) error {
	var input usecase.AddOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.Add(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Update handles PUT /orders/:id
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order id")
	}

	var input usecase.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}
