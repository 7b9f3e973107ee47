package queries

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemView mirrors the immutable snapshot stored on the order.
type OrderItemView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Subtotal  float64   `json:"subtotal"`
}

type ShippingView struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
}

type OrderView struct {
	ID        uuid.UUID       `json:"id"`
	UserEmail string          `json:"user_email"`
	UserName  *string         `json:"user_name,omitempty"`
	Items     []OrderItemView `json:"items"`
	Shipping  ShippingView    `json:"shipping_info"`
	Total     float64         `json:"total"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type UsedProductView struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

type UsedServiceView struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type HealthRecordView struct {
	ID           uuid.UUID         `json:"id"`
	PetID        uuid.UUID         `json:"pet_id"`
	RecordType   string            `json:"record_type"`
	Date         time.Time         `json:"date"`
	Description  string            `json:"description"`
	Notes        *string           `json:"notes,omitempty"`
	NextDueDate  *time.Time        `json:"next_due_date,omitempty"`
	WeightKg     *float64          `json:"weight_kg,omitempty"`
	UsedProducts []UsedProductView `json:"used_products"`
	UsedServices []UsedServiceView `json:"used_services"`
	CreatedAt    time.Time         `json:"created_at"`
}

type PetView struct {
	ID         uuid.UUID `json:"id"`
	OwnerEmail string    `json:"owner_email"`
	OwnerName  string    `json:"owner_name"`
	Name       string    `json:"name"`
	Species    string    `json:"species"`
	Breed      *string   `json:"breed,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type EventView struct {
	ID            uuid.UUID  `json:"id"`
	PetID         uuid.UUID  `json:"pet_id"`
	Title         string     `json:"title"`
	EventDateTime time.Time  `json:"event_datetime"`
	EventType     string     `json:"event_type"`
	Description   *string    `json:"description,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
	ReminderSent  bool       `json:"reminder_sent"`
	ServiceID     *uuid.UUID `json:"service_id,omitempty"`
	ProductID     *uuid.UUID `json:"product_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ProductView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuthorizedUserView carries the identity the ownership checks key on.
type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}
