// models/reminder_log.go
package models

import "time"

type ReminderKind string

const (
	ReminderPayment ReminderKind = "payment"
	ReminderReceipt ReminderKind = "receipt"
)

type ReminderStatus string

const (
	ReminderSent   ReminderStatus = "sent"
	ReminderFailed ReminderStatus = "failed"
)

// ReminderLog records one delivery attempt of a reminder or receipt.
type ReminderLog struct {
	ID           string         `json:"id"`
	Kind         ReminderKind   `json:"kind"`
	To           string         `json:"to"`
	Channel      string         `json:"channel"` // whatsapp, sms
	Message      string         `json:"message"`
	Status       ReminderStatus `json:"status"`
	MessageSID   string         `json:"messageSid,omitempty"`
	ErrorMessage string         `json:"errorMessage,omitempty"`
	SentAt       time.Time      `json:"sentAt"`
}
