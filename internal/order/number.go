package order

import "github.com/google/uuid"

// generateOrderNumber creates a short reference the restaurant reads
// back to the customer on the confirmation call.
func generateOrderNumber() string {
	return "CMD-" + uuid.New().String()[:8]
}
