package types

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"not null;column:name" json:"name"`
	Price float64   `gorm:"not null;column:price" json:"price"`
	Stock int       `gorm:"not null;default:0;column:stock" json:"stock"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
