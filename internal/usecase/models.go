package usecase

import (
	"time"

	"github.com/my-shop/go-backend/internal/domain"
)

// CATALOG USECASE

// CatalogReq carries the optional catalog filters.
type CatalogReq struct {
	Search   string
	Category string
}

// CatalogRes is the catalog page payload.
type CatalogRes struct {
	Products   []domain.Product
	Categories []string
	Selected   string
	Search     string
	Settings   domain.SiteSettings
}

// CHECKOUT USECASE

// CartLine is one client-supplied cart intent. Never trusted for price.
type CartLine struct {
	ID  int64 `json:"id"`
	Qty int   `json:"qty"`
}

// PlaceOrderReq is a checkout submission.
type PlaceOrderReq struct {
	UserID        int64
	CustomerName  string
	Address       string
	Phone         string
	PaymentMethod string
	CartPayload   string // JSON-encoded []CartLine
}

// AUTH USECASE

type RegisterReq struct {
	FullName string
	Username string
	Password string
	Phone    string
}

// ADMIN USECASE

// UploadImage is an image file received via multipart/form-data.
type UploadImage struct {
	Name string
	Data []byte
}

// SaveProductReq carries a validated admin product form.
type SaveProductReq struct {
	Name        string
	Price       int64 // cents
	ImageURL    string
	Description string
	Category    string // raw free text, normalized on save
	Rating      float64
	ReviewText  string
	Stock       int
	IsNew       bool
	IsSale      bool
	Image       *UploadImage // optional, replaces ImageURL when present
}

// OrderStats aggregates order counters for the dashboard.
type OrderStats struct {
	TotalOrders int64
	TotalSales  int64 // cents
	TodayOrders int64
	TodaySales  int64 // cents
}

// DashboardRes is the admin dashboard payload.
type DashboardRes struct {
	Stats        OrderStats
	ProductCount int64
	UserCount    int64
	LatestOrders []domain.Order
	Products     []domain.Product
	Orders       []domain.Order
	Users        []domain.User
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventOrderCreated       OutboxEventType = "order.created"
	EventOrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent is a pending domain event persisted alongside the write that
// produced it.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// EVENT PAYLOADS (JSON)

type OrderItemData struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}

type OrderCreatedEvent struct {
	EventID    string          `json:"event_id"`
	OrderID    int64           `json:"order_id"`
	UserID     int64           `json:"user_id"`
	TotalPrice int64           `json:"total_price"`
	Items      []OrderItemData `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
}

type OrderStatusChangedEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}

// MAPPERS

func NewCatalogReq(search, category string) *CatalogReq {
	return &CatalogReq{
		Search:   search,
		Category: category,
	}
}

func NewPlaceOrderReq(userID int64, customerName, address, phone, paymentMethod, cartPayload string) *PlaceOrderReq {
	return &PlaceOrderReq{
		UserID:        userID,
		CustomerName:  customerName,
		Address:       address,
		Phone:         phone,
		PaymentMethod: paymentMethod,
		CartPayload:   cartPayload,
	}
}

func NewRegisterReq(fullName, username, password, phone string) *RegisterReq {
	return &RegisterReq{
		FullName: fullName,
		Username: username,
		Password: password,
		Phone:    phone,
	}
}

func NewUploadImage(name string, data []byte) *UploadImage {
	return &UploadImage{
		Name: name,
		Data: data,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
