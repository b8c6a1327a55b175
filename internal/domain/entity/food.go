package entity

// Food represents a single menu item offered by a restaurant.
type Food struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"` // Always positive.
	Vegetarian   bool    `json:"vegetarian"`
	RestaurantID int64   `json:"restaurantId"` // Owning restaurant, required.
}
