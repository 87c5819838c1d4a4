package models

import "time"

// Reservation is a table booking request. The restaurant confirms every
// reservation by phone; status is not tracked here.
type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	CreatedAt time.Time `json:"created_at"`
}

// ReservationForm carries the reservation page form fields.
type ReservationForm struct {
	Name   string `form:"name" json:"name" binding:"required"`
	Phone  string `form:"phone" json:"phone" binding:"required"`
	Date   string `form:"date" json:"date" binding:"required"`
	Time   string `form:"time" json:"time" binding:"required"`
	Guests int    `form:"guests" json:"guests" binding:"required,min=1,max=20"`
}
