package handlers

import (
	"log"
	"net/http"

	"dragondore/internal/catalog"
	"dragondore/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminPage renders the admin panel with both tabs: menu items and
// reservations.
func (h *Handler) AdminPage(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")

	items, err := h.db.GetAllMenuItems()
	if err != nil {
		log.Printf("AdminPage - menu items error: %v", err)
		items = []catalog.Item{}
	}
	reservations, err := h.db.GetAllReservations()
	if err != nil {
		log.Printf("AdminPage - reservations error: %v", err)
		reservations = []models.Reservation{}
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"title":        "Administration - Dragon Doré",
		"items":        items,
		"reservations": reservations,
		"categories":   catalog.Categories,
	})
}

// AddMenuItem creates a menu item from the admin form.
func (h *Handler) AddMenuItem(c *gin.Context) {
	var form models.MenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("AddMenuItem - form bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Formulaire invalide"})
		return
	}
	if !catalog.ValidCategory(form.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Catégorie inconnue"})
		return
	}

	item := catalog.Item{
		Category:    form.Category,
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		ImageURL:    form.ImageURL,
	}
	if err := h.db.CreateMenuItem(&item); err != nil {
		log.Printf("AddMenuItem - save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Enregistrement impossible"})
		return
	}

	log.Printf("AddMenuItem - created %s (%s)", item.Name, item.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// UpdateMenuItem updates an existing menu item.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id := c.Param("id")

	var form models.MenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Formulaire invalide"})
		return
	}
	if !catalog.ValidCategory(form.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Catégorie inconnue"})
		return
	}

	item := catalog.Item{
		ID:          id,
		Category:    form.Category,
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
		ImageURL:    form.ImageURL,
	}
	if err := h.db.UpdateMenuItem(&item); err != nil {
		log.Printf("UpdateMenuItem - update error for %s: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Plat introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

// DeleteMenuItem removes a menu item.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.DeleteMenuItem(id); err != nil {
		log.Printf("DeleteMenuItem - delete error for %s: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Plat introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminGetReservations returns all reservations as JSON, newest first.
func (h *Handler) AdminGetReservations(c *gin.Context) {
	reservations, err := h.db.GetAllReservations()
	if err != nil {
		log.Printf("AdminGetReservations - error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Lecture impossible"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}

// AdminDeleteReservation removes a reservation.
func (h *Handler) AdminDeleteReservation(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.DeleteReservation(id); err != nil {
		log.Printf("AdminDeleteReservation - delete error for %s: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Réservation introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
