package models

// Fixtures bundles the three read-only collections the catalog is built from.
// Slices keep the order the source returned them in.
type Fixtures struct {
	Users      []User
	Categories []Category
	Products   []Product
}

// Empty reports whether the fixtures hold no records at all.
func (f Fixtures) Empty() bool {
	return len(f.Users) == 0 && len(f.Categories) == 0 && len(f.Products) == 0
}
