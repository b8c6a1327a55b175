package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Food associations live in the 'order_food' join table.
type OrderModel struct {
	ID           int64          `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64          `gorm:"not null;index"`
	Customer     *CustomerModel `gorm:"foreignKey:CustomerID"`
	Foods        []*FoodModel   `gorm:"many2many:order_food;joinForeignKey:OrderID;joinReferences:FoodID"`
	TotalAmount  float64        `gorm:"-"` // Derived on read, never stored.
	Address      string         `gorm:"type:varchar(255);not null"`
	DeliveryType string         `gorm:"type:varchar(32);not null"`
	OrderTime    time.Time      `gorm:"not null"`
	IsPaid       bool           `gorm:"not null;default:false"`
	Status       string         `gorm:"type:varchar(32);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// AfterFind recomputes the order total from the preloaded food rows.
// Repositories always preload Foods, so the projection stays consistent
// with the authoritative food prices.
func (m *OrderModel) AfterFind(_ *gorm.DB) error {
	var total float64
	for _, food := range m.Foods {
		total += food.Price
	}
	m.TotalAmount = total

	return nil
}
