package handlers

import (
	"log"
	"net/http"

	"dragondore/internal/catalog"
	"dragondore/internal/models"

	"github.com/gin-gonic/gin"
)

// HomePage renders the landing page.
func (h *Handler) HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":       "Dragon Doré - Restaurant Chinois",
		"current_url": c.Request.URL.Path,
	})
}

// MenuPage renders the menu grouped by category. The selected category
// defaults to the first of the fixed list.
func (h *Handler) MenuPage(c *gin.Context) {
	items := h.catalog.Load(c.Request.Context())

	selected := c.Query("category")
	if !catalog.ValidCategory(selected) {
		selected = catalog.Categories[0]
	}

	c.HTML(http.StatusOK, "menu.html", gin.H{
		"title":            "Menu - Dragon Doré",
		"categories":       catalog.Categories,
		"selectedCategory": selected,
		"items":            catalog.ItemsInCategory(items, selected),
		"current_url":      c.Request.URL.Path,
	})
}

// TakeawayPage renders the ordering page: the menu on one side, the
// visitor's cart on the other.
func (h *Handler) TakeawayPage(c *gin.Context) {
	items := h.catalog.Load(c.Request.Context())

	selected := c.Query("category")
	if !catalog.ValidCategory(selected) {
		selected = catalog.Categories[0]
	}

	store := h.cartFor(c)
	c.HTML(http.StatusOK, "takeaway.html", gin.H{
		"title":            "Commande à Emporter - Dragon Doré",
		"categories":       catalog.Categories,
		"selectedCategory": selected,
		"items":            catalog.ItemsInCategory(items, selected),
		"cartLines":        store.Lines(),
		"cartCount":        store.TotalItemCount(),
		"cartTotal":        store.TotalPrice(),
		"current_url":      c.Request.URL.Path,
	})
}

// ReservationPage renders the reservation form.
func (h *Handler) ReservationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "reservation.html", gin.H{
		"title":       "Réservation - Dragon Doré",
		"current_url": c.Request.URL.Path,
	})
}

// HandleReservation stores a reservation request and notifies the
// restaurant by email.
func (h *Handler) HandleReservation(c *gin.Context) {
	var form models.ReservationForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("HandleReservation - form bind error: %v", err)
		c.HTML(http.StatusBadRequest, "reservation.html", gin.H{
			"title": "Réservation - Dragon Doré",
			"error": "Veuillez remplir tous les champs obligatoires",
		})
		return
	}

	res := models.Reservation{
		Name:   form.Name,
		Phone:  form.Phone,
		Date:   form.Date,
		Time:   form.Time,
		Guests: form.Guests,
	}
	if err := h.db.CreateReservation(&res); err != nil {
		log.Printf("HandleReservation - save error: %v", err)
		c.HTML(http.StatusInternalServerError, "reservation.html", gin.H{
			"title": "Réservation - Dragon Doré",
			"error": "Erreur lors de la réservation. Veuillez réessayer.",
		})
		return
	}

	log.Printf("HandleReservation - reservation %s saved: %s, %s %s, %d guests",
		res.ID, res.Name, res.Date, res.Time, res.Guests)

	go func() {
		if err := h.email.SendReservationNotification(res); err != nil {
			log.Printf("HandleReservation - notification error: %v", err)
		}
	}()

	c.HTML(http.StatusOK, "reservation.html", gin.H{
		"title":   "Réservation - Dragon Doré",
		"success": true,
	})
}

// InfoPage renders opening hours, address and access details.
func (h *Handler) InfoPage(c *gin.Context) {
	c.HTML(http.StatusOK, "info.html", gin.H{
		"title":       "Infos Pratiques - Dragon Doré",
		"current_url": c.Request.URL.Path,
	})
}

// BlogPage renders the article list.
func (h *Handler) BlogPage(c *gin.Context) {
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"title":       "Blog - Dragon Doré",
		"current_url": c.Request.URL.Path,
	})
}

// BlogArticlePage renders the single published article.
func (h *Handler) BlogArticlePage(c *gin.Context) {
	c.HTML(http.StatusOK, "blog_article.html", gin.H{
		"title":       "Les Plats Chinois Incontournables - Dragon Doré",
		"current_url": c.Request.URL.Path,
	})
}

// LegalPage renders the legal notice.
func (h *Handler) LegalPage(c *gin.Context) {
	c.HTML(http.StatusOK, "legal.html", gin.H{
		"title":       "Mentions Légales - Dragon Doré",
		"current_url": c.Request.URL.Path,
	})
}
