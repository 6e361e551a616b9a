// Package email builds and sends the few messages NexCard sends. There is no
// mail provider: LogSender writes every message to the log.
package email

import (
	"context"
	"fmt"
	"log/slog"
)

// Message is a plain text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender logs emails instead of sending them.
type LogSender struct {
	from string
}

// NewLogSender creates a LogSender using from as the sender address.
func NewLogSender(from string) *LogSender {
	return &LogSender{from: from}
}

// Send logs msg.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return fmt.Errorf("send %q: no recipient", msg.Subject)
	}
	slog.InfoContext(ctx, "Email sent (logged)",
		"from", s.from,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

// Invitation is the message sent to a new team member.
func Invitation(to, inviter, joinURL string) Message {
	return Message{
		To:      to,
		Subject: "You're invited to join your team on NexCard",
		Body: fmt.Sprintf("%s invited you to share digital business cards on NexCard.\n\nAccept the invitation: %s\n",
			inviter, joinURL),
	}
}

// PasswordReset is the message carrying a reset link.
func PasswordReset(to, resetURL string) Message {
	return Message{
		To:      to,
		Subject: "Reset your NexCard password",
		Body:    fmt.Sprintf("Someone asked to reset the password of this account.\n\nChoose a new password: %s\n\nIf this wasn't you, ignore this email.\n", resetURL),
	}
}
