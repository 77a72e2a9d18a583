// Package mailer sends the storefront's transactional emails over an
// SMTP relay. No delivery confirmation is consumed; callers treat sends
// as fire-and-forget unless the send itself is the requested operation.
package mailer

import (
	"log"

	"gopkg.in/gomail.v2"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/models"
	"storefront-backend/internal/telemetry"
)

type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	storeName   string
	adminEmails []string
}

func New(host string, port int, user, password, from, storeName string, adminEmails []string) *Mailer {
	return &Mailer{
		dialer:      gomail.NewDialer(host, port, user, password),
		from:        from,
		storeName:   storeName,
		adminEmails: adminEmails,
	}
}

func (m *Mailer) send(template string, to []string, subject, html string) error {
	if len(to) == 0 {
		log.Printf("[MAIL] [WARN] %s: no recipients, skipping", template)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	err := m.dialer.DialAndSend(msg)
	telemetry.CountEmail(template, err)
	if err != nil {
		log.Printf("[MAIL] [ERROR] %s to %v failed: %v", template, to, err)
		return apperr.Upstream("mail relay", err)
	}
	log.Printf("[MAIL] [INFO] sent %s to %v", template, to)
	return nil
}

// SendOrderConfirmation thanks the customer right after checkout.
func (m *Mailer) SendOrderConfirmation(order *models.Order) error {
	html, err := renderConfirmation(order)
	if err != nil {
		return err
	}
	return m.send("confirmation", []string{order.Email},
		"Order Confirmation #"+order.OrderID, html)
}

// SendAdminNotification tells the admins a new order arrived.
func (m *Mailer) SendAdminNotification(order *models.Order) error {
	html, err := renderAdminNotification(order)
	if err != nil {
		return err
	}
	return m.send("admin-notification", m.adminEmails,
		"New Order Notification - "+order.OrderID, html)
}

// SendInvoice emails the itemized invoice to the order's customer.
func (m *Mailer) SendInvoice(order *models.Order) error {
	html, err := renderInvoice(order)
	if err != nil {
		return err
	}
	return m.send("invoice", []string{order.Email},
		"Invoice for Order #"+order.OrderID, html)
}

// SendThankYou emails a post-delivery thank-you note.
func (m *Mailer) SendThankYou(order *models.Order) error {
	html, err := renderThankYou(order, m.storeName)
	if err != nil {
		return err
	}
	return m.send("thank-you", []string{order.Email},
		"Thank you for shopping with "+m.storeName, html)
}
