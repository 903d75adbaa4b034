package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TotalAmount is a snapshot of the referenced product prices at creation
// time and is never recomputed when prices change later.
type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;index;not null;column:customer_id" json:"customer_id"`
	Customer    *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Products    []*Product `gorm:"many2many:order_products" json:"products,omitempty"`
	TotalAmount float64    `gorm:"not null;column:total_amount" json:"total_amount"`
	OrderDate   time.Time  `gorm:"not null;column:order_date" json:"order_date"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
