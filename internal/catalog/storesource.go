package catalog

import (
	"context"
	"sort"
)

// MenuLister is the slice of the database the StoreSource needs.
type MenuLister interface {
	GetAllMenuItems() ([]Item, error)
}

// StoreSource serves the catalog from the local menu database, which the
// admin panel edits. This is the default source when no hosted data
// service is configured.
type StoreSource struct {
	db MenuLister
}

// NewStoreSource creates a StoreSource over the given database.
func NewStoreSource(db MenuLister) *StoreSource {
	return &StoreSource{db: db}
}

// Fetch returns all menu items sorted by category then name.
func (s *StoreSource) Fetch(ctx context.Context) ([]Item, error) {
	items, err := s.db.GetAllMenuItems()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}
