// Package twilio delivers due-reminder notifications over WhatsApp.
package twilio

import (
	"errors"
	"fmt"
	"log"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrNotConfigured is returned when the sender or credentials are missing.
var ErrNotConfigured = errors.New("twilio client not configured")

// Client wraps the Twilio messaging API for a single WhatsApp sender.
type Client struct {
	client       *twilio.RestClient
	fromWhatsApp string
	logger       *log.Logger
}

// New creates a Twilio client bound to the configured WhatsApp sender number.
// Without credentials the client is inert and every send fails with
// ErrNotConfigured.
func New(accountSID, authToken, fromWhatsApp string, logger *log.Logger) *Client {
	c := &Client{fromWhatsApp: fromWhatsApp, logger: logger}
	if accountSID != "" && authToken != "" {
		c.client = twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken})
	}
	return c
}

// SendWhatsAppMessage sends body to the given number.
func (c *Client) SendWhatsAppMessage(to, body string) error {
	if c == nil || c.client == nil {
		return ErrNotConfigured
	}

	sender := normalizeWhatsAppAddress(c.fromWhatsApp)
	if sender == "" {
		return fmt.Errorf("%w: sender WhatsApp number is empty", ErrNotConfigured)
	}
	recipient := normalizeWhatsAppAddress(to)
	if recipient == "" {
		return fmt.Errorf("twilio: recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(sender)
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send message error: %w", err)
	}
	if resp.Sid != nil {
		c.logger.Printf("notify: WhatsApp message to %s sent, SID %s", recipient, *resp.Sid)
	}
	return nil
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}
