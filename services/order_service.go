package services

import (
	"errors"
	"time"

	"bento-shop/models"
)

var ErrNotCancellable = errors.New("only pending orders can be cancelled")

var orderStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusPreparing: true,
	models.OrderStatusReady:     true,
	models.OrderStatusCompleted: true,
	models.OrderStatusCancelled: true,
}

func ValidOrderStatus(status string) bool {
	return orderStatuses[status]
}

// CanCancel reports whether a customer-initiated cancellation is legal.
// Any status other than pending, including an already cancelled order,
// is rejected.
func CanCancel(status string) bool {
	return status == models.OrderStatusPending
}

// ComputeTotalPrice freezes the order total from the menu price at
// creation time; it is never recalculated afterwards.
func ComputeTotalPrice(menuPrice, quantity int) int {
	return menuPrice * quantity
}

// NormalizeDeliveryTime accepts "HH:MM" or "HH:MM:SS" and returns the
// canonical "HH:MM:SS" form.
func NormalizeDeliveryTime(value string) (string, error) {
	if t, err := time.Parse("15:04:05", value); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", value); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", errors.New("invalid delivery_time format. Use HH:MM or HH:MM:SS")
}
