package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted,
		OrderStatusCancelled, OrderStatusAwaitingPickup, OrderStatusReadyForShipping,
		OrderStatusShipped, OrderStatusDelivered,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %q to be valid", s)
	}

	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("SHIPPING").IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
}

func TestDeliveryType_IsValid(t *testing.T) {
	assert.True(t, DeliveryTypePickup.IsValid())
	assert.True(t, DeliveryTypeShipping.IsValid())
	assert.True(t, DeliveryTypeOther.IsValid())

	assert.False(t, DeliveryType("").IsValid())
	assert.False(t, DeliveryType("DRONE").IsValid())
}

func TestOrderStatus_String(t *testing.T) {
	assert.Equal(t, "READY_FOR_SHIPPING", OrderStatusReadyForShipping.String())
	assert.Equal(t, "AWAITING_PICKUP", OrderStatusAwaitingPickup.String())
}
