package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"dragondore/internal/cart"
	"dragondore/internal/catalog"
	"dragondore/internal/models"
	"dragondore/internal/order"
	"dragondore/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeDB is an in-memory DBInterface.
type fakeDB struct {
	mu           sync.Mutex
	items        []catalog.Item
	reservations []models.Reservation
	nextID       int
}

func (f *fakeDB) GetAllMenuItems() ([]catalog.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalog.Item(nil), f.items...), nil
}

func (f *fakeDB) GetMenuItemByID(id string) (*catalog.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeDB) CreateMenuItem(item *catalog.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	item.ID = "item-" + strconv.Itoa(f.nextID)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeDB) UpdateMenuItem(item *catalog.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.items {
		if existing.ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeDB) DeleteMenuItem(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeDB) CreateReservation(res *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	res.ID = "res-1"
	f.reservations = append(f.reservations, *res)
	return nil
}

func (f *fakeDB) GetAllReservations() ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Reservation(nil), f.reservations...), nil
}

func (f *fakeDB) DeleteReservation(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, res := range f.reservations {
		if res.ID == id {
			f.reservations = append(f.reservations[:i], f.reservations[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type recordingSink struct {
	mu     sync.Mutex
	orders []order.Order
	err    error
}

func (s *recordingSink) Submit(ctx context.Context, o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.orders = append(s.orders, o)
	return nil
}

type stubSource struct{ items []catalog.Item }

func (s stubSource) Fetch(ctx context.Context) ([]catalog.Item, error) {
	return s.items, nil
}

// stubTemplates covers the pages the tests touch without real files.
func stubTemplates(t *testing.T, names ...string) map[string]*template.Template {
	t.Helper()
	templates := map[string]*template.Template{}
	for _, name := range names {
		tmpl, err := template.New(name).Parse(`<html>{{.title}}</html>`)
		require.NoError(t, err)
		templates[name] = tmpl
	}
	return templates
}

func testRouter(t *testing.T, sink order.Sink) (*gin.Engine, *fakeDB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := &fakeDB{items: []catalog.Item{
		{ID: "a", Category: "Entrées", Name: "Nems", Price: 8.90},
		{ID: "b", Category: "Plats", Name: "Canard laqué", Price: 28.90},
	}}

	cat := catalog.NewCache(stubSource{items: db.items})
	carts := cart.NewService(cart.NewMemoryStorage())
	email := services.NewEmailService("", 0, "", "", "from@test", "to@test")

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	h := NewHandler(db, cat, carts, sink, email, string(hash))

	r := gin.New()
	r.HTMLRender = &HTMLRenderer{Templates: stubTemplates(t,
		"admin_login.html", "reservation.html", "checkout.html", "takeaway.html")}

	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCartItem)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.GET("/cart/count", h.GetCartCount)
	r.GET("/takeaway/checkout", h.CheckoutPage)
	r.POST("/takeaway/order", h.SubmitOrder)
	r.POST("/reservation", h.HandleReservation)
	r.GET("/admin/login", h.AdminLoginPage)
	r.POST("/admin/login", h.AdminLogin)
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	admin.GET("/reservations", h.AdminGetReservations)

	return r, db
}

func postJSON(r *gin.Engine, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartCreatesSessionAndCounts(t *testing.T) {
	r, _ := testRouter(t, &recordingSink{})

	w := postJSON(r, "/cart/add", gin.H{"item_id": "a"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == sessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "first cart call must issue a session cookie")

	// Same session adds again: quantities merge.
	w = postJSON(r, "/cart/add", gin.H{"item_id": "a"}, []*http.Cookie{session})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int     `json:"count"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.InDelta(t, 17.80, resp.Total, 1e-9)
}

func TestAddToCartUnknownItem(t *testing.T) {
	r, _ := testRouter(t, &recordingSink{})
	w := postJSON(r, "/cart/add", gin.H{"item_id": "missing"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	r, _ := testRouter(t, &recordingSink{})

	w := postJSON(r, "/cart/add", gin.H{"item_id": "a"}, nil)
	session := w.Result().Cookies()[0]

	w = postJSON(r, "/cart/update", gin.H{"item_id": "a", "quantity": 4}, []*http.Cookie{session})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":4`)

	w = postJSON(r, "/cart/remove", gin.H{"item_id": "a"}, []*http.Cookie{session})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestGetCartCountWithoutSession(t *testing.T) {
	r, _ := testRouter(t, &recordingSink{})

	req := httptest.NewRequest(http.MethodGet, "/cart/count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestCheckoutPageEmptyCartRedirects(t *testing.T) {
	r, _ := testRouter(t, &recordingSink{})

	req := httptest.NewRequest(http.MethodGet, "/takeaway/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/takeaway", w.Header().Get("Location"))
}

func TestSubmitOrderClearsCart(t *testing.T) {
	sink := &recordingSink{}
	r, _ := testRouter(t, sink)

	w := postJSON(r, "/cart/add", gin.H{"item_id": "b"}, nil)
	session := w.Result().Cookies()[0]

	w = postJSON(r, "/takeaway/order", gin.H{
		"name":        "Marie Dupont",
		"phone":       "06 12 34 56 78",
		"pickup_time": "19:30",
	}, []*http.Cookie{session})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, sink.orders, 1)
	assert.InDelta(t, 28.90, sink.orders[0].Total, 1e-9)

	// Cart is cleared after success.
	req := httptest.NewRequest(http.MethodGet, "/cart/count", nil)
	req.AddCookie(session)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestSubmitOrderMissingFields(t *testing.T) {
	sink := &recordingSink{}
	r, _ := testRouter(t, sink)

	w := postJSON(r, "/cart/add", gin.H{"item_id": "b"}, nil)
	session := w.Result().Cookies()[0]

	w = postJSON(r, "/takeaway/order", gin.H{"name": "Marie"}, []*http.Cookie{session})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sink.orders)
}

func TestSubmitOrderSinkFailureKeepsCart(t *testing.T) {
	sink := &recordingSink{err: errors.New("smtp down")}
	r, _ := testRouter(t, sink)

	w := postJSON(r, "/cart/add", gin.H{"item_id": "b"}, nil)
	session := w.Result().Cookies()[0]

	w = postJSON(r, "/takeaway/order", gin.H{
		"name":        "Marie Dupont",
		"phone":       "06 12 34 56 78",
		"pickup_time": "19:30",
	}, []*http.Cookie{session})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// The cart still holds the line so the user can retry.
	req := httptest.NewRequest(http.MethodGet, "/cart/count", nil)
	req.AddCookie(session)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	r, _ := testRouter(t, &recordingSink{})

	req := httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAdminLoginLifecycle(t *testing.T) {
	r, db := testRouter(t, &recordingSink{})
	db.reservations = []models.Reservation{{ID: "res-1", Name: "Alice"}}

	// Wrong password rejected.
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString("password=wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct password opens a session.
	req = httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString("password=secret"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)

	var adminCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" {
			adminCookie = c
		}
	}
	require.NotNil(t, adminCookie)

	// The session cookie grants access to the protected group.
	req = httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)
	req.AddCookie(adminCookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
}

func TestHandleReservationStoresAndRenders(t *testing.T) {
	r, db := testRouter(t, &recordingSink{})

	req := httptest.NewRequest(http.MethodPost, "/reservation",
		bytes.NewBufferString("name=Alice&phone=0612345678&date=2026-09-12&time=20:00&guests=4"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, db.reservations, 1)
	assert.Equal(t, "Alice", db.reservations[0].Name)
	assert.Equal(t, 4, db.reservations[0].Guests)
}
