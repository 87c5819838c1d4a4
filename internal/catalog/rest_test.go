package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTSourceFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/menu_items", r.URL.Path)
		assert.Equal(t, "category.asc,name.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","category":"Entrées","name":"Nems","description":"","price":8.90,"image_url":""},
			{"id":"2","category":"Plats","name":"Canard laqué","description":"","price":28.90,"image_url":""}
		]`))
	}))
	defer server.Close()

	source := NewRESTSource(server.URL, "test-key")
	items, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Nems", items[0].Name)
	assert.InDelta(t, 28.90, items[1].Price, 1e-9)
}

func TestRESTSourceFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	source := NewRESTSource(server.URL, "bad-key")
	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}

func TestRESTSourceFetchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	source := NewRESTSource(server.URL, "test-key")
	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}

func TestRESTSourceFetchConnectionRefused(t *testing.T) {
	source := NewRESTSource("http://127.0.0.1:1", "test-key")
	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}
