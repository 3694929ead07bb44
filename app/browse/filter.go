package browse

import (
	"slices"
	"strings"
)

type predicate func(EnrichedProduct) bool

// FilterProducts keeps the products matching every active criterion of
// state, in input order. The input slice is never modified and the result
// is never nil.
func FilterProducts(products []EnrichedProduct, state FilterState) []EnrichedProduct {
	filtered := append(make([]EnrichedProduct, 0, len(products)), products...)

	for _, keep := range state.predicates() {
		filtered = slices.DeleteFunc(filtered, func(p EnrichedProduct) bool {
			return !keep(p)
		})
	}

	return filtered
}

func (s FilterState) predicates() []predicate {
	var preds []predicate

	if s.SelectedUser != nil {
		// Owners are matched by name, so two users sharing a name are
		// indistinguishable here.
		name := s.SelectedUser.Name
		preds = append(preds, func(p EnrichedProduct) bool {
			return p.User.Name == name
		})
	}

	if query := NormalizeQuery(s.Query); query != "" {
		preds = append(preds, func(p EnrichedProduct) bool {
			return strings.Contains(strings.ToLower(p.Name), query)
		})
	}

	if len(s.SelectedCategories) > 0 {
		ids := slices.Clone(s.SelectedCategories)
		preds = append(preds, func(p EnrichedProduct) bool {
			return slices.Contains(ids, p.Category.ID)
		})
	}

	return preds
}
