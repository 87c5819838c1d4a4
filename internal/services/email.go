package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"dragondore/internal/models"
	"dragondore/internal/order"

	"gopkg.in/gomail.v2"
)

// EmailService sends notifications to the restaurant. When SMTP is not
// configured the service runs disabled: every send is logged and
// acknowledged locally.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewEmailService creates an EmailService. user/pass empty means
// disabled mode.
func NewEmailService(host string, port int, user, pass, from, to string) *EmailService {
	if user == "" || pass == "" {
		log.Println("EmailService - SMTP not configured, notifications disabled")
		return &EmailService{from: from, to: to}
	}
	return &EmailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		to:     to,
	}
}

// Enabled reports whether a real SMTP dialer is configured.
func (es *EmailService) Enabled() bool {
	return es.dialer != nil
}

func (es *EmailService) send(subject, body string) error {
	if es.dialer == nil {
		log.Printf("EmailService - disabled, would send: %s", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", es.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		log.Printf("EmailService - send failed: %v", err)
		return err
	}
	return nil
}

// SendOrderNotification mails a takeaway order to the restaurant.
func (es *EmailService) SendOrderNotification(o order.Order) error {
	var lines strings.Builder
	for _, line := range o.Lines {
		fmt.Fprintf(&lines, "<li>%s ×%d — %.2f€</li>", line.Item.Name, line.Quantity, line.LineTotal())
	}

	subject := fmt.Sprintf("Commande à emporter %s — %s", o.Number, o.Name)
	body := fmt.Sprintf(`
		<h2>Nouvelle commande à emporter</h2>
		<p><strong>N°:</strong> %s</p>
		<p><strong>Client:</strong> %s — %s</p>
		<p><strong>Retrait:</strong> %s</p>
		<ul>%s</ul>
		<p><strong>Total: %.2f€</strong></p>
		<p>Notes: %s</p>
	`, o.Number, o.Name, o.Phone, o.PickupTime, lines.String(), o.Total, o.Notes)

	return es.send(subject, body)
}

// SendReservationNotification mails a table reservation to the restaurant.
func (es *EmailService) SendReservationNotification(res models.Reservation) error {
	subject := fmt.Sprintf("Réservation — %s, %s %s", res.Name, res.Date, res.Time)
	body := fmt.Sprintf(`
		<h2>Nouvelle réservation</h2>
		<p><strong>Nom:</strong> %s</p>
		<p><strong>Téléphone:</strong> %s</p>
		<p><strong>Date:</strong> %s à %s</p>
		<p><strong>Couverts:</strong> %d</p>
	`, res.Name, res.Phone, res.Date, res.Time, res.Guests)

	return es.send(subject, body)
}

// EmailSink adapts EmailService to the order.Sink interface.
type EmailSink struct {
	email *EmailService
}

// NewEmailSink creates an EmailSink over the given service.
func NewEmailSink(email *EmailService) *EmailSink {
	return &EmailSink{email: email}
}

// Submit notifies the restaurant of the order. The context is accepted
// for interface symmetry; gomail has no context support.
func (s *EmailSink) Submit(ctx context.Context, o order.Order) error {
	return s.email.SendOrderNotification(o)
}
