package model

import "time"

// ReviewModel is the GORM-specific struct for the 'reviews' table.
// The unique index on OrderID enforces at most one review per order.
type ReviewModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64     `gorm:"not null;index"`
	RestaurantID int64     `gorm:"not null;index"`
	OrderID      int64     `gorm:"not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Rating       int       `gorm:"not null"`
	Description  string    `gorm:"type:varchar(255);not null"`
	ReviewTime   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
