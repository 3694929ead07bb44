// Package browse joins the catalog collections into enriched products and
// narrows them by the viewer's filter criteria.
package browse

import (
	"errors"
	"fmt"

	"github.com/TetianaVeremchuk/product-categories/models"
)

var (
	// ErrCategoryNotFound is returned when a product references a missing category.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrUserNotFound is returned when a category references a missing owner.
	ErrUserNotFound = errors.New("user not found")
)

// ResolveCategory returns the category with the given id.
func ResolveCategory(categories []models.Category, id uint) (models.Category, error) {
	for _, c := range categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("category %d: %w", id, ErrCategoryNotFound)
}

// ResolveUser returns the user with the given id.
func ResolveUser(users []models.User, id uint) (models.User, error) {
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}
