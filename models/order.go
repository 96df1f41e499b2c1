package models

import "time"

// OrderStatus represents the lifecycle stage of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses lists every valid order status, in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

type Order struct {
	ID        int          `json:"id"`
	Items     []OrderItem  `json:"items"`
	Customer  CustomerInfo `json:"customer"`
	Total     float64      `json:"total"`
	Notes     string       `json:"notes,omitempty"`
	Status    OrderStatus  `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// OrderItem is a snapshot of a menu item at order time; name and price
// are supplied by the caller, not looked up from the catalog.
type OrderItem struct {
	ID             int     `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Quantity       int     `json:"quantity" validate:"required,gt=0"`
	SelectedOption string  `json:"selectedOption,omitempty"`
}

type CustomerInfo struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Address string `json:"address,omitempty"`
}

// OrderStats is the aggregate view over the whole ledger. TotalRevenue
// counts delivered orders only.
type OrderStats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Preparing    int     `json:"preparing"`
	Ready        int     `json:"ready"`
	Delivered    int     `json:"delivered"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}
