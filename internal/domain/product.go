package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	PriceCents  int64     `gorm:"not null;column:price_cents" json:"priceCents"`
	ImageURL    string    `gorm:"column:image_url" json:"imageUrl"`
	Category    string    `gorm:"index;column:category" json:"category"`
	Stock       int       `gorm:"not null;default:0;column:stock" json:"stock"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Product) TableName() string { return "product" }
