package handlers

import (
	"log"
	"net/http"

	"dragondore/internal/catalog"

	"github.com/gin-gonic/gin"
)

// findItem looks the item up in the currently served catalog, which may
// be the fallback catalog when the menu source is down.
func (h *Handler) findItem(c *gin.Context, id string) (catalog.Item, bool) {
	for _, item := range h.catalog.Load(c.Request.Context()) {
		if item.ID == id {
			return item, true
		}
	}
	return catalog.Item{}, false
}

// AddToCart adds one unit of an item to the visitor's cart.
func (h *Handler) AddToCart(c *gin.Context) {
	var req struct {
		ItemID string `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	item, ok := h.findItem(c, req.ItemID)
	if !ok {
		log.Printf("AddToCart - item not found: %s", req.ItemID)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Plat introuvable"})
		return
	}

	store := h.cartFor(c)
	store.AddItem(item)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   store.TotalItemCount(),
		"total":   store.TotalPrice(),
	})
}

// UpdateCartItem sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req struct {
		ItemID   string `json:"item_id" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	store := h.cartFor(c)
	store.SetQuantity(req.ItemID, req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   store.TotalItemCount(),
		"total":   store.TotalPrice(),
	})
}

// RemoveFromCart removes a line from the visitor's cart.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	var req struct {
		ItemID string `json:"item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	store := h.cartFor(c)
	store.RemoveItem(req.ItemID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   store.TotalItemCount(),
		"total":   store.TotalPrice(),
	})
}

// GetCartCount returns the cart badge count.
func (h *Handler) GetCartCount(c *gin.Context) {
	sessionID, _ := c.Cookie(sessionCookie)
	if sessionID == "" {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": h.carts.ForSession(sessionID).TotalItemCount()})
}
