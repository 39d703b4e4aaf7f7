package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	MenuID       int       `json:"menu_id"`
	Quantity     int       `json:"quantity"`
	TotalPrice   int       `json:"total_price"`
	Status       string    `json:"status"`
	DeliveryTime *string   `json:"delivery_time"`
	Notes        *string   `json:"notes"`
	OrderedAt    time.Time `json:"ordered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Menu         *Menu     `json:"menu,omitempty"`
	User         *User     `json:"user,omitempty"`
}
