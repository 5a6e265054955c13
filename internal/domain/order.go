package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

// ParseOrderStatus validates a raw status value against the allowed set.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch OrderStatus(raw) {
	case StatusPending, StatusShipped, StatusCancelled:
		return OrderStatus(raw), true
	default:
		return "", false
	}
}

// Order describes a placed order. The customer fields are snapshots captured
// at checkout time and do not track the user's profile. Status is the only
// field mutable after creation.
type Order struct {
	ID            int64
	UserID        int64
	CustomerName  string
	Address       string
	Phone         string
	PaymentMethod string
	TotalPrice    int64 // cents
	Status        OrderStatus
	CreatedAt     time.Time
}

// OrderItem is one line of an order. UnitPrice snapshots the product price at
// order-creation time and is immune to later product edits.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice int64 // cents
}
