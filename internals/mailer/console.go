package mailer

import (
	"log"
	"strings"
	"sync"
)

// consoleService logs messages instead of delivering them. Used in dev and
// when no Sendgrid key is configured.
type consoleService struct {
	mu   sync.Mutex
	sent []Message
}

var _ Service = (*consoleService)(nil)

func NewConsoleService() Service {
	return &consoleService{}
}

func (svc *consoleService) Send(msg *Message) error {
	svc.mu.Lock()
	svc.sent = append(svc.sent, *msg)
	svc.mu.Unlock()

	body := msg.TextBody
	if body == "" {
		body = msg.HTMLBody
	}
	log.Printf("[MAIL] to=%s subject=%q\n%s", msg.To.Address, msg.Subject, strings.TrimSpace(body))
	return nil
}

// FromConfig picks Sendgrid when a key is present, console otherwise.
func FromConfig(apiKey, fromName, fromAddress string) Service {
	if strings.TrimSpace(apiKey) != "" {
		return NewSendgridService(apiKey, fromName, fromAddress)
	}
	return NewConsoleService()
}
