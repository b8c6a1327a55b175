package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bistro/internal/delivery/http/response"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// List handles GET /reviews
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviewUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// GetByID handles GET /reviews/:id
func (h *ReviewHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review id")
	}

	review, err := h.reviewUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "")
}

// GetByRestaurant handles GET /reviews/restaurant/:restaurantId
func (h *ReviewHandler) GetByRestaurant(c echo.Context) error {
	restaurantID, err := pathID(c, "restaurantId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant id")
	}

	reviews, err := h.reviewUC.GetByRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// GetByCustomer handles GET /reviews/user/:customerId
func (h *ReviewHandler) GetByCustomer(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer id")
	}

	reviews, err := h.reviewUC.GetByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// GetByDate handles GET /reviews/date/:date with an RFC3339 timestamp
func (h *ReviewHandler) GetByDate(c echo.Context) error {
	at, err := time.Parse(time.RFC3339, c.Param("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DATE", "Date must be RFC3339")
	}

	reviews, err := h.reviewUC.GetByDate(c.Request().Context(), at)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// Add handles POST /reviews
func (h *ReviewHandler) Add(c echo.Context) error {
	var input usecase.AddReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.Add(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review added successfully")
}

// Update handles PUT /reviews/:id
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review id")
	}

	var input usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// Delete handles DELETE /reviews/:id
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review id")
	}

	if err := h.reviewUC.DeleteByID(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
