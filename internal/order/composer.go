// Package order implements takeaway order composition: a draft frozen
// from the cart at checkout time, client-field validation, and a
// submission state machine over a pluggable order sink.
package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dragondore/internal/cart"
)

// State is the order composition state.
type State int

const (
	Idle State = iota
	Drafting
	Submitting
	Succeeded
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drafting:
		return "drafting"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNotDrafting is returned when Submit or Cancel is called outside
	// the Drafting state.
	ErrNotDrafting = errors.New("no draft in progress")
	// ErrMissingFields is returned when a required contact field is empty.
	ErrMissingFields = errors.New("name, phone and pickup time are required")
)

// Form carries the contact and pickup fields of the order form.
type Form struct {
	Name       string `form:"name" json:"name" binding:"required"`
	Phone      string `form:"phone" json:"phone" binding:"required"`
	PickupTime string `form:"pickup_time" json:"pickup_time" binding:"required"`
	Notes      string `form:"notes" json:"notes"`
}

// Order is the composed payload handed to the sink: contact fields plus
// the frozen cart snapshot and its total.
type Order struct {
	Number     string      `json:"number"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	PickupTime string      `json:"pickup_time"`
	Notes      string      `json:"notes,omitempty"`
	Lines      []cart.Line `json:"lines"`
	Total      float64     `json:"total"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Sink receives composed orders. The restaurant is notified out of band;
// there is no server-side order store.
type Sink interface {
	Submit(ctx context.Context, o Order) error
}

// Composer drives one checkout interaction over a cart store.
// Transitions: Idle → Drafting (BeginDraft) → Submitting → Succeeded, or
// → Failed on a sink error with the draft retained for retry; Cancel
// returns Drafting or Failed to Idle.
type Composer struct {
	store *cart.Store
	sink  Sink

	state State
	draft *Order
}

// NewComposer creates an idle Composer over the given cart and sink.
func NewComposer(store *cart.Store, sink Sink) *Composer {
	return &Composer{store: store, sink: sink, state: Idle}
}

// State returns the current composition state.
func (c *Composer) State() State {
	return c.state
}

// Draft returns the current draft, nil outside Drafting/Submitting.
func (c *Composer) Draft() *Order {
	return c.draft
}

// BeginDraft freezes the current cart lines and total into a new draft
// and moves to Drafting. Later cart mutations do not touch the draft.
// An empty cart is permitted here; the UI only offers checkout when the
// cart is non-empty.
func (c *Composer) BeginDraft() {
	c.draft = &Order{
		Lines: c.store.Lines(),
		Total: c.store.TotalPrice(),
	}
	c.state = Drafting
}

// Submit validates the form, fills the draft and hands it to the sink.
// On acknowledgment the cart is cleared and the composer ends in
// Succeeded. On a sink error the draft is kept, the composer moves to
// Failed and the error is returned; Submit may be called again to retry.
func (c *Composer) Submit(ctx context.Context, form Form) error {
	if c.state != Drafting && c.state != Failed {
		return ErrNotDrafting
	}
	if strings.TrimSpace(form.Name) == "" ||
		strings.TrimSpace(form.Phone) == "" ||
		strings.TrimSpace(form.PickupTime) == "" {
		return ErrMissingFields
	}

	c.draft.Number = generateOrderNumber()
	c.draft.Name = form.Name
	c.draft.Phone = form.Phone
	c.draft.PickupTime = form.PickupTime
	c.draft.Notes = form.Notes
	c.draft.CreatedAt = time.Now()

	c.state = Submitting
	if err := c.sink.Submit(ctx, *c.draft); err != nil {
		log.Printf("Composer.Submit - sink error for order %s: %v", c.draft.Number, err)
		c.state = Failed
		return fmt.Errorf("order submission failed: %w", err)
	}

	log.Printf("Composer.Submit - order %s submitted, %d lines, total %.2f",
		c.draft.Number, len(c.draft.Lines), c.draft.Total)
	c.store.Clear()
	c.draft = nil
	c.state = Succeeded
	return nil
}

// Cancel discards the draft without touching the cart and returns to
// Idle. No-op outside Drafting and Failed.
func (c *Composer) Cancel() {
	if c.state != Drafting && c.state != Failed {
		return
	}
	c.draft = nil
	c.state = Idle
}
