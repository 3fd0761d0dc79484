package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel backs all three catalog collections, discriminated by Kind.
type ProductModel struct {
	ID             string            `gorm:"type:uuid;primary_key" json:"id"`
	Kind           string            `gorm:"type:varchar(20);not null;index:idx_products_kind_type" json:"kind"`
	Title          string            `gorm:"type:varchar(255);not null" json:"title"`
	Description    string            `gorm:"type:text;not null" json:"description"`
	Price          float64           `gorm:"not null" json:"price"`
	Image          string            `gorm:"type:varchar(500)" json:"image"`
	TypeDetail     string            `gorm:"type:varchar(50);not null;index:idx_products_kind_type" json:"type_detail"`
	Features       []string          `gorm:"serializer:json" json:"features"`
	Specifications map[string]string `gorm:"serializer:json" json:"specifications"`
	IsActive       bool              `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (ProductModel) TableName() string {
	return "products"
}

func (p *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
