package domain

import (
	"time"

	"github.com/google/uuid"
)

const OrderStatusConfirmed = "CONFIRMED"

// Order is immutable once committed. Unit prices are captured at
// purchase time so later catalog price changes leave the order intact.
type Order struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string      `gorm:"not null;column:email" json:"email"`
	UserID     uuid.UUID   `gorm:"type:uuid;not null;index;column:user_id" json:"userId"`
	Status     string      `gorm:"not null;column:status" json:"status"`
	TotalCents int64       `gorm:"not null;column:total_cents" json:"totalCents"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Order) TableName() string { return "order" }

type OrderItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index;column:order_id" json:"orderId"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;column:product_id" json:"productId"`
	Quantity       int       `gorm:"not null;column:quantity" json:"quantity"`
	UnitPriceCents int64     `gorm:"not null;column:unit_price_cents" json:"unitPriceCents"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string { return "order_item" }
