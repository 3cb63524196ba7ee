package mailer

import "net/mail"

// Message is one outbound email. Body is plain text; HTML is optional.
type Message struct {
	To       mail.Address
	Subject  string
	TextBody string
	HTMLBody string
}

// Service is any transport that can deliver messages. Delivery is
// fire-and-forget: implementations log per-message failures and never
// return them to the caller.
type Service interface {
	Send(msg *Message) error
}
