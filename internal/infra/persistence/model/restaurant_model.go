package model

// RestaurantModel is the GORM-specific struct for the 'restaurant' table.
type RestaurantModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(255);not null"`
	Address     string `gorm:"type:varchar(255);not null"`
	District    string `gorm:"type:varchar(255);not null;index"`
	PhoneNumber string `gorm:"type:varchar(32);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurant"
}
