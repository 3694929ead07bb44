package browse

import "github.com/TetianaVeremchuk/product-categories/models"

// --- Helpers ---

func scenarioFixtures() models.Fixtures {
	return models.Fixtures{
		Users:      []models.User{{ID: 1, Name: "Max", Sex: models.SexMale}},
		Categories: []models.Category{{ID: 10, Title: "Fruits", Icon: "🍎", OwnerID: 1}},
		Products:   []models.Product{{ID: 100, Name: "Banana", CategoryID: 10}},
	}
}

func shopFixtures() models.Fixtures {
	return models.Fixtures{
		Users: []models.User{
			{ID: 1, Name: "Roma", Sex: models.SexMale},
			{ID: 2, Name: "Anna", Sex: models.SexFemale},
			{ID: 3, Name: "Max", Sex: models.SexMale},
		},
		Categories: []models.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 2},
			{ID: 5, Title: "Clothes", Icon: "👚", OwnerID: 3},
		},
		Products: []models.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "Book", CategoryID: 1},
			{ID: 4, Name: "Jacket", CategoryID: 5},
			{ID: 6, Name: "Banana", CategoryID: 3},
			{ID: 7, Name: "Beer", CategoryID: 2},
			{ID: 9, Name: "Apple", CategoryID: 3},
		},
	}
}

func productIDs(products []EnrichedProduct) []uint {
	ids := make([]uint, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}
