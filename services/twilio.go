package services

import (
	"context"
	"errors"
	"fmt"

	"salonpro-desk/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNoSender = errors.New("no sender number configured for channel")

type TwilioNotifier struct {
	client       *twilio.RestClient
	smsFrom      string
	whatsAppFrom string
}

func NewTwilioNotifier(cfg config.TwilioConfig) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		smsFrom:      cfg.PhoneNumber,
		whatsAppFrom: cfg.WhatsAppNumber,
	}
}

// Send posts msg through the Twilio messages API. The twilio client takes no
// context, so ctx is only checked before the call.
func (n *TwilioNotifier) Send(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(msg.Body)

	switch msg.Channel {
	case ChannelWhatsApp:
		if n.whatsAppFrom == "" {
			return "", fmt.Errorf("%w: %s", ErrNoSender, msg.Channel)
		}
		params.SetTo("whatsapp:" + msg.To)
		params.SetFrom("whatsapp:" + n.whatsAppFrom)
	default:
		if n.smsFrom == "" {
			return "", fmt.Errorf("%w: %s", ErrNoSender, ChannelSMS)
		}
		params.SetTo(msg.To)
		params.SetFrom(n.smsFrom)
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio create message: %w", err)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
