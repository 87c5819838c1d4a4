package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// RESTSource fetches menu items from the hosted data service over its
// PostgREST endpoint. Sorting is requested from the service itself so
// the response arrives ordered by category then name.
type RESTSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRESTSource creates a RESTSource for the given service URL and API key.
func NewRESTSource(baseURL, apiKey string) *RESTSource {
	return &RESTSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves the menu_items table, sorted category asc, name asc.
func (s *RESTSource) Fetch(ctx context.Context) ([]Item, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "category.asc,name.asc")

	endpoint := fmt.Sprintf("%s/rest/v1/menu_items?%s", s.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu fetch failed: unexpected status %d", resp.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("menu response decode failed: %w", err)
	}
	return items, nil
}
