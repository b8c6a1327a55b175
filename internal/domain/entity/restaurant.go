package entity

// Restaurant represents a restaurant that offers food items.
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	District    string `json:"district"`
	PhoneNumber string `json:"phoneNumber"`
}
