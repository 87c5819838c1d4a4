package handlers

import (
	"errors"
	"log"
	"net/http"

	"dragondore/internal/order"

	"github.com/gin-gonic/gin"
)

// CheckoutPage renders the order form with a frozen summary of the cart.
// An empty cart is sent back to the takeaway page; the composer itself
// does not enforce non-emptiness.
func (h *Handler) CheckoutPage(c *gin.Context) {
	store := h.cartFor(c)
	if store.TotalItemCount() == 0 {
		c.Redirect(http.StatusSeeOther, "/takeaway")
		return
	}

	composer := order.NewComposer(store, h.sink)
	composer.BeginDraft()
	draft := composer.Draft()

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"title":       "Finaliser la Commande - Dragon Doré",
		"lines":       draft.Lines,
		"total":       draft.Total,
		"current_url": c.Request.URL.Path,
	})
}

// SubmitOrder runs the full composition for the visitor's cart: draft
// snapshot, validation, submission to the sink. On success the cart is
// cleared and the client is sent to the confirmation page.
func (h *Handler) SubmitOrder(c *gin.Context) {
	store := h.cartFor(c)

	var form order.Form
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("SubmitOrder - form bind error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Veuillez remplir tous les champs obligatoires"})
		return
	}

	composer := order.NewComposer(store, h.sink)
	composer.BeginDraft()

	if err := composer.Submit(c.Request.Context(), form); err != nil {
		if errors.Is(err, order.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Veuillez remplir tous les champs obligatoires"})
			return
		}
		log.Printf("SubmitOrder - submission failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Erreur lors de l'envoi. Veuillez réessayer."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/order-success"})
}

// OrderSuccessPage renders the confirmation page.
func (h *Handler) OrderSuccessPage(c *gin.Context) {
	c.HTML(http.StatusOK, "order_success.html", gin.H{
		"title": "Commande Envoyée - Dragon Doré",
	})
}
