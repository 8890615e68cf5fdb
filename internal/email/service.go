// Package email sends storefront notification mail over SMTP.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Service handles email sending via SMTP.
type Service struct {
	host   string
	port   string
	from   string
	logger zerolog.Logger
}

// NewService creates a new email service.
func NewService(host, port, from string, logger zerolog.Logger) *Service {
	return &Service{
		host:   host,
		port:   port,
		from:   from,
		logger: logger.With().Str("component", "email").Logger(),
	}
}

// SendNewOrder notifies the store team that an order was placed.
func (s *Service) SendNewOrder(to, orderID, customerName, itemSummary, orderLink string, total float64) error {
	shortID := orderID
	if len(orderID) > 8 {
		shortID = orderID[:8]
	}
	subject := fmt.Sprintf("New order %s from %s", shortID, customerName)
	body := BuildNewOrderBody(orderID, customerName, itemSummary, orderLink, total)
	return s.send(to, subject, body)
}

// SendStatusChanged notifies the customer that their order moved to a
// new status.
func (s *Service) SendStatusChanged(to, orderID, newStatus, itemSummary, trackingLink string, total float64) error {
	shortID := orderID
	if len(orderID) > 8 {
		shortID = orderID[:8]
	}
	subject := fmt.Sprintf("Your order %s is now %s", shortID, newStatus)
	body := BuildStatusChangedBody(orderID, newStatus, itemSummary, trackingLink, total)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return err
	}

	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}
