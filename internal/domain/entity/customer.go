// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Customer represents a registered customer account.
type Customer struct {
	ID          int64  `json:"id"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Email       string `json:"email"` // Unique across all customers.
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
