package entity

import "time"

// Review is the single customer review attached to an order.
// The referenced customer, restaurant, and order must all exist at creation time.
type Review struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customerId"`
	RestaurantID int64     `json:"restaurantId"`
	OrderID      int64     `json:"orderId"`
	Name         string    `json:"name"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	ReviewTime   time.Time `json:"reviewTime"` // Set once, server-side.
}
