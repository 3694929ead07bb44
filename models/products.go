package models

import "errors"

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// Product represents a product in the catalog.
// It references its category by id; the join is resolved by the browse pipeline.
type Product struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	CategoryID uint   `gorm:"not null;index" json:"categoryId"`
}

func (p *Product) TableName() string {
	return "products"
}
