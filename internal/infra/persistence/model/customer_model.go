// Package model contains the GORM-specific persistence structs.
// They mirror the database schema and are mapped to pure domain entities
// by the repository implementations.
package model

// CustomerModel is the GORM-specific struct for the 'customer' table.
type CustomerModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Firstname   string `gorm:"type:varchar(255);not null"`
	Lastname    string `gorm:"type:varchar(255);not null"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address     string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(32)"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customer"
}
