package converter

import "time"

// ProductModel represents a row of the products table in PostgreSQL.
type ProductModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Price       int64     `db:"price"`
	ImageURL    string    `db:"image_url"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Rating      float64   `db:"rating"`
	ReviewText  string    `db:"review_text"`
	IsNew       bool      `db:"is_new"`
	IsSale      bool      `db:"is_sale"`
	Stock       int       `db:"stock"`
	CreatedAt   time.Time `db:"created_at"`
}

// UserModel represents a row of the users table in PostgreSQL.
type UserModel struct {
	ID           int64     `db:"id"`
	FullName     string    `db:"full_name"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	CreatedAt    time.Time `db:"created_at"`
}

// AdminCredentialModel represents a row of the admin_credentials table.
type AdminCredentialModel struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// OrderModel represents a row of the orders table in PostgreSQL.
type OrderModel struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	CustomerName  string    `db:"customer_name"`
	Address       string    `db:"address"`
	Phone         string    `db:"phone"`
	PaymentMethod string    `db:"payment_method"`
	TotalPrice    int64     `db:"total_price"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// OrderItemModel represents a row of the order_items table in PostgreSQL.
type OrderItemModel struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	UnitPrice int64 `db:"unit_price"`
	Quantity  int   `db:"quantity"`
}

// OutboxEventModel represents a row of the outbox_events table in PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     int64      `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
