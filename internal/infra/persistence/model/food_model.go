package model

// FoodModel is the GORM-specific struct for the 'food' table.
// Every food row belongs to exactly one restaurant.
type FoodModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(255);not null;index"`
	Description  string  `gorm:"type:varchar(255);not null"`
	Category     string  `gorm:"type:varchar(255);not null;index"`
	Price        float64 `gorm:"type:numeric(10,2);not null"`
	Vegetarian   bool    `gorm:"not null;default:false"`
	RestaurantID int64   `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "food"
}
