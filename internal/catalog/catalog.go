// Package catalog holds the fixed transaction category catalog. Categories are
// reference data, not user-mutable: lookups resolve by id and any unknown id
// resolves to an explicit Default category rather than failing.
package catalog

// Category describes one catalog entry.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Default is the category used for any id the catalog does not know.
var Default = Category{ID: "cat_other", Name: "Other", Icon: "layers", Color: "#B7B4F3"}

// categories lists the catalog in display order.
var categories = []Category{
	{ID: "cat_food", Name: "Food", Icon: "utensils", Color: "#F4A86B"},
	{ID: "cat_shop", Name: "Shopping", Icon: "shopping-bag", Color: "#7F7BD8"},
	{ID: "cat_trans", Name: "Transport", Icon: "car", Color: "#B7B4F3"},
	{ID: "cat_health", Name: "Health", Icon: "heart", Color: "#ED803C"},
	{ID: "cat_work", Name: "Work", Icon: "briefcase", Color: "#5D59B9"},
	{ID: "cat_bill", Name: "Bills", Icon: "zap", Color: "#F9C289"},
	{ID: "cat_leisure", Name: "Leisure", Icon: "coffee", Color: "#CB5F2B"},
	{ID: "cat_travel", Name: "Travel", Icon: "plane", Color: "#A09CE7"},
}

// byID is built once at init; the catalog never changes at runtime.
var byID = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for _, c := range categories {
		m[c.ID] = c
	}
	return m
}()

// All returns the catalog in display order. Callers must not modify the
// returned slice.
func All() []Category {
	return categories
}

// Lookup resolves a category id. The second return reports whether the id was
// known; unknown ids yield the Default category.
func Lookup(id string) (Category, bool) {
	if c, ok := byID[id]; ok {
		return c, true
	}
	return Default, false
}

// IsKnown reports whether the id names a catalog category.
func IsKnown(id string) bool {
	_, ok := byID[id]
	return ok
}
