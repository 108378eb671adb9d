// services/notifier.go
package services

//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// ChannelFor picks WhatsApp for numbers carrying a country code, SMS otherwise.
func ChannelFor(phone string) Channel {
	if strings.HasPrefix(phone, "+") {
		return ChannelWhatsApp
	}
	return ChannelSMS
}

type Message struct {
	To      string
	Body    string
	Channel Channel
}

// Notifier delivers a message and returns the provider's message id.
type Notifier interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// LogNotifier only logs messages. It stands in when no provider is configured.
type LogNotifier struct{}

func (LogNotifier) Send(_ context.Context, msg Message) (string, error) {
	log.Info().
		Str("to", msg.To).
		Str("channel", string(msg.Channel)).
		Str("body", msg.Body).
		Msg("Message not sent - no provider configured")
	return "", nil
}
