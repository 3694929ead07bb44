package models

// Category represents a product category.
// Every category is owned by exactly one user.
type Category struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"not null" json:"title"`
	Icon    string `gorm:"not null" json:"icon"`
	OwnerID uint   `gorm:"not null;index" json:"ownerId"`
}

func (c *Category) TableName() string {
	return "categories"
}
