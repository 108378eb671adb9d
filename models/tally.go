package models

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrInvalidPaymentMethod    = errors.New("payment method must be cash, card or upi")
	ErrInvalidPaymentStatus    = errors.New("unknown payment status")
	ErrInvalidSettlementStatus = errors.New("payment status can only be set to completed, failed or cancelled")
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s.Settled()
}

// Settled reports whether s is one of the statuses an entry moves to once the
// payment attempt is over.
func (s PaymentStatus) Settled() bool {
	switch s {
	case PaymentCompleted, PaymentFailed, PaymentCancelled:
		return true
	}
	return false
}

type ServiceLine struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type TallyItem struct {
	ID               string        `json:"id"`
	Date             string        `json:"date"`
	Time             string        `json:"time"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	StaffName        string        `json:"staffName"`
	Services         []ServiceLine `json:"services"`
	TotalCost        float64       `json:"totalCost"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	PaymentDate      time.Time     `json:"paymentDate"`
	UPITransactionID string        `json:"upiTransactionId,omitempty"`
}

// NewTallyItem is the caller-supplied part of a ledger entry. An empty
// PaymentStatus means pending.
type NewTallyItem struct {
	Date          string
	Time          string
	CustomerName  string
	CustomerPhone string
	StaffName     string
	Services      []ServiceLine
	TotalCost     float64
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
}

func (n NewTallyItem) Validate() error {
	if !n.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}
	if n.PaymentStatus != "" && !n.PaymentStatus.Valid() {
		return ErrInvalidPaymentStatus
	}
	return nil
}

func (t TallyItem) Clone() TallyItem {
	t.Services = slices.Clone(t.Services)
	return t
}
