package catalog

// Item represents a single purchasable menu item.
type Item struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// Categories is the fixed set of menu categories. The order here is the
// order the tabs appear on the page.
var Categories = []string{"Entrées", "Plats", "Desserts", "Boissons"}

// ValidCategory reports whether category is one of the fixed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ItemsInCategory returns the subsequence of items whose category matches
// exactly. Order is preserved, items is never modified.
func ItemsInCategory(items []Item, category string) []Item {
	var filtered []Item
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
