package database

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"sync"
	"time"

	"dragondore/internal/catalog"
	"dragondore/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// dbData is everything stored in the JSON data file.
type dbData struct {
	MenuItems    []catalog.Item       `json:"menu_items"`
	Reservations []models.Reservation `json:"reservations"`
	CartBlobs    map[string]string    `json:"cart_blobs"`
}

// JSONDatabase stores the site's data in a single JSON file, guarded by
// an RWMutex and written back on every mutation.
type JSONDatabase struct {
	mu       sync.RWMutex
	data     dbData
	filePath string
}

// NewDatabase opens (or creates) the JSON data file at filePath.
func NewDatabase(filePath string) (*JSONDatabase, error) {
	db := &JSONDatabase{filePath: filePath}
	if err := db.loadData(); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *JSONDatabase) loadData() error {
	if _, err := os.Stat(db.filePath); os.IsNotExist(err) {
		db.initEmpty()
		return db.saveData()
	}

	fileData, err := os.ReadFile(db.filePath)
	if err != nil {
		return err
	}
	if len(fileData) == 0 {
		db.initEmpty()
		return nil
	}
	if err := json.Unmarshal(fileData, &db.data); err != nil {
		return err
	}
	if db.data.CartBlobs == nil {
		db.data.CartBlobs = make(map[string]string)
	}
	return nil
}

func (db *JSONDatabase) initEmpty() {
	db.data.MenuItems = []catalog.Item{}
	db.data.Reservations = []models.Reservation{}
	db.data.CartBlobs = make(map[string]string)
}

func (db *JSONDatabase) saveData() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(db.filePath, data, 0644)
}

// --- Menu item functions ---

// GetAllMenuItems returns all menu items.
func (db *JSONDatabase) GetAllMenuItems() ([]catalog.Item, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	items := make([]catalog.Item, len(db.data.MenuItems))
	copy(items, db.data.MenuItems)
	return items, nil
}

// GetMenuItemByID returns the menu item with the given id.
func (db *JSONDatabase) GetMenuItemByID(id string) (*catalog.Item, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	for _, item := range db.data.MenuItems {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

// CreateMenuItem stores a new menu item and assigns its id.
func (db *JSONDatabase) CreateMenuItem(item *catalog.Item) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	item.ID = uuid.New().String()
	db.data.MenuItems = append(db.data.MenuItems, *item)
	return db.saveData()
}

// UpdateMenuItem replaces the stored menu item with the same id.
func (db *JSONDatabase) UpdateMenuItem(item *catalog.Item) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, existing := range db.data.MenuItems {
		if existing.ID == item.ID {
			db.data.MenuItems[i] = *item
			return db.saveData()
		}
	}
	return ErrNotFound
}

// DeleteMenuItem removes the menu item with the given id.
func (db *JSONDatabase) DeleteMenuItem(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, item := range db.data.MenuItems {
		if item.ID == id {
			db.data.MenuItems = append(db.data.MenuItems[:i], db.data.MenuItems[i+1:]...)
			return db.saveData()
		}
	}
	return ErrNotFound
}

// --- Reservation functions ---

// CreateReservation stores a new reservation and assigns its id.
func (db *JSONDatabase) CreateReservation(res *models.Reservation) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	res.ID = uuid.New().String()
	res.CreatedAt = time.Now()
	db.data.Reservations = append(db.data.Reservations, *res)
	return db.saveData()
}

// GetAllReservations returns all reservations, newest first.
func (db *JSONDatabase) GetAllReservations() ([]models.Reservation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	reservations := make([]models.Reservation, len(db.data.Reservations))
	copy(reservations, db.data.Reservations)
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})
	return reservations, nil
}

// DeleteReservation removes the reservation with the given id.
func (db *JSONDatabase) DeleteReservation(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	for i, res := range db.data.Reservations {
		if res.ID == id {
			db.data.Reservations = append(db.data.Reservations[:i], db.data.Reservations[i+1:]...)
			return db.saveData()
		}
	}
	return ErrNotFound
}

// --- Cart blob functions ---
// The database doubles as the default cart.Storage backend: serialized
// carts are kept as opaque strings under their namespaced key.

// Get returns the cart payload stored under key.
func (db *JSONDatabase) Get(key string) (string, bool, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	value, ok := db.data.CartBlobs[key]
	return value, ok, nil
}

// Set stores a cart payload under key.
func (db *JSONDatabase) Set(key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.data.CartBlobs[key] = value
	return db.saveData()
}
