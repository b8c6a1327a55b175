package entity

import "time"

// PaymentMethod represents the means of payment chosen at creation time.
// It is immutable for the lifetime of the payment.
type PaymentMethod string

const (
	PaymentMethodBlik       PaymentMethod = "BLIK"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodOther      PaymentMethod = "OTHER"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBlik, PaymentMethodCreditCard, PaymentMethodCash, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusInProgress PaymentStatus = "IN_PROGRESS"
	PaymentStatusPaid       PaymentStatus = "PAID"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusError      PaymentStatus = "ERROR"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusInProgress, PaymentStatusPaid, PaymentStatusCancelled, PaymentStatusError:
		return true
	default:
		return false
	}
}

// Payment is the single settlement record attached to an order.
// At most one payment exists per order.
type Payment struct {
	ID          int64         `json:"id"`
	OrderID     int64         `json:"orderId"`
	PaymentTime time.Time     `json:"paymentTime"` // Set once at creation.
	Method      PaymentMethod `json:"paymentMethod"`
	Status      PaymentStatus `json:"paymentStatus"`
}
