package model

import "time"

// PaymentModel is the GORM-specific struct for the 'payment' table.
// The unique index on OrderID enforces at most one payment per order.
type PaymentModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	OrderID       int64     `gorm:"not null;uniqueIndex"`
	PaymentTime   time.Time `gorm:"not null"`
	PaymentMethod string    `gorm:"type:varchar(32);not null"`
	PaymentStatus string    `gorm:"type:varchar(32);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payment"
}
