// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler   *handler.CustomerHandler
	RestaurantHandler *handler.RestaurantHandler
	FoodHandler       *handler.FoodHandler
	OrderHandler      *handler.OrderHandler
	PaymentHandler    *handler.PaymentHandler
	ReviewHandler     *handler.ReviewHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler   *handler.CustomerHandler
	restaurantHandler *handler.RestaurantHandler
	foodHandler       *handler.FoodHandler
	orderHandler      *handler.OrderHandler
	paymentHandler    *handler.PaymentHandler
	reviewHandler     *handler.ReviewHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:   params.CustomerHandler,
		restaurantHandler: params.RestaurantHandler,
		foodHandler:       params.FoodHandler,
		orderHandler:      params.OrderHandler,
		paymentHandler:    params.PaymentHandler,
		reviewHandler:     params.ReviewHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	customers := api.Group("/customers")
	{
		customers.GET("", r.customerHandler.List)
		customers.GET("/:id", r.customerHandler.GetByID)
		customers.GET("/email/:email", r.customerHandler.GetByEmail)
		customers.POST("", r.customerHandler.Register)
		customers.PUT("/:id", r.customerHandler.Update)
		customers.DELETE("/:id", r.customerHandler.Delete)
	}

	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", r.restaurantHandler.List)
		restaurants.GET("/:id", r.restaurantHandler.GetByID)
		restaurants.GET("/name/:name", r.restaurantHandler.GetByName)
		restaurants.GET("/district/:district", r.restaurantHandler.GetByDistrict)
		restaurants.POST("", r.restaurantHandler.Register)
		restaurants.PUT("/:id", r.restaurantHandler.Update)
		restaurants.DELETE("/:id", r.restaurantHandler.Delete)
	}

	food := api.Group("/food")
	{
		food.GET("", r.foodHandler.List)
		food.GET("/:id", r.foodHandler.GetByID)
		food.GET("/name/:name", r.foodHandler.GetByName)
		food.GET("/restaurant/:id", r.foodHandler.GetByRestaurant)
		food.GET("/price-range", r.foodHandler.GetByPriceRange)
		food.GET("/category/:category", r.foodHandler.GetByCategory)
		food.GET("/type/vegetarian", r.foodHandler.GetVegetarian)
		food.POST("", r.foodHandler.Add)
		food.PUT("/:id", r.foodHandler.Update)
		food.DELETE("/:id", r.foodHandler.Delete)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", r.orderHandler.List)
		orders.GET("/:id", r.orderHandler.GetByID)
		orders.GET("/customer/:customerId", r.orderHandler.GetByCustomer)
		orders.GET("/restaurant/:restaurantId", r.orderHandler.GetByRestaurant)
		orders.POST("", r.orderHandler.Add)
		orders.PUT("/:id", r.orderHandler.Update)
	}

	payments := api.Group("/payments")
	{
		payments.GET("", r.paymentHandler.List)
		payments.GET("/:id", r.paymentHandler.GetByID)
		payments.POST("", r.paymentHandler.Add)
		payments.PUT("/:id", r.paymentHandler.Update)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.List)
		reviews.GET("/:id", r.reviewHandler.GetByID)
		reviews.GET("/restaurant/:restaurantId", r.reviewHandler.GetByRestaurant)
		reviews.GET("/date/:date", r.reviewHandler.GetByDate)
		reviews.GET("/user/:customerId", r.reviewHandler.GetByCustomer)
		reviews.POST("", r.reviewHandler.Add)
		reviews.PUT("/:id", r.reviewHandler.Update)
		reviews.DELETE("/:id", r.reviewHandler.Delete)
	}
}
