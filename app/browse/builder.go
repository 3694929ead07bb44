package browse

import (
	"fmt"

	"github.com/TetianaVeremchuk/product-categories/models"
)

// EnrichedProduct is a product together with its category and the
// category's owner.
type EnrichedProduct struct {
	models.Product
	Category models.Category `json:"category"`
	User     models.User     `json:"user"`
}

// BuildViewModels enriches every product, keeping the input order.
// The first unresolved reference aborts the build.
func BuildViewModels(f models.Fixtures) ([]EnrichedProduct, error) {
	enriched := make([]EnrichedProduct, 0, len(f.Products))

	for _, p := range f.Products {
		category, err := ResolveCategory(f.Categories, p.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		owner, err := ResolveUser(f.Users, category.OwnerID)
		if err != nil {
			return nil, fmt.Errorf("product %d: category %d owner: %w", p.ID, category.ID, err)
		}

		enriched = append(enriched, EnrichedProduct{
			Product:  p,
			Category: category,
			User:     owner,
		})
	}

	return enriched, nil
}
