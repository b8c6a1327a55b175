package entity

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending          OrderStatus = "PENDING"
	OrderStatusProcessing       OrderStatus = "PROCESSING"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
	OrderStatusCancelled        OrderStatus = "CANCELLED"
	OrderStatusAwaitingPickup   OrderStatus = "AWAITING_PICKUP"
	OrderStatusReadyForShipping OrderStatus = "READY_FOR_SHIPPING"
	OrderStatusShipped          OrderStatus = "SHIPPED"
	OrderStatusDelivered        OrderStatus = "DELIVERED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusAwaitingPickup, OrderStatusReadyForShipping,
		OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// DeliveryType represents how an order is handed over to the customer.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "PICKUP"
	DeliveryTypeShipping DeliveryType = "SHIPPING"
	DeliveryTypeOther    DeliveryType = "OTHER"
)

// String returns the string representation of the DeliveryType.
func (t DeliveryType) String() string {
	return string(t)
}

// IsValid checks if the DeliveryType is a valid value.
func (t DeliveryType) IsValid() bool {
	switch t {
	case DeliveryTypePickup, DeliveryTypeShipping, DeliveryTypeOther:
		return true
	default:
		return false
	}
}

// Order composes a customer and a set of food items into a single purchase.
// TotalAmount is a projection over the associated food prices, recomputed by the
// store on every read; it is never written by the application.
type Order struct {
	ID           int64        `json:"id"`
	CustomerID   int64        `json:"customerId"`
	Customer     *Customer    `json:"customer,omitempty"`
	Foods        []*Food      `json:"foods"`
	TotalAmount  float64      `json:"totalAmount"`
	Address      string       `json:"address"`
	DeliveryType DeliveryType `json:"deliveryType"`
	OrderTime    time.Time    `json:"orderTime"` // Set once, server-side.
	Paid         bool         `json:"paid"`      // Mutated only by the payment workflow.
	Status       OrderStatus  `json:"status"`
}
