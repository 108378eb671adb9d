package models

import "slices"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no-show"
)

// Appointment is owned by the booking views; the store only relies on ID.
type Appointment struct {
	ID           string            `json:"id"`
	CustomerID   string            `json:"customerId"`
	CustomerName string            `json:"customerName"`
	StaffID      string            `json:"staffId"`
	StaffName    string            `json:"staffName"`
	Services     []string          `json:"services"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Duration     int               `json:"duration"` // minutes
	Status       AppointmentStatus `json:"status"`
	Notes        string            `json:"notes,omitempty"`
}

type AppointmentPatch struct {
	CustomerID   *string            `json:"customerId"`
	CustomerName *string            `json:"customerName"`
	StaffID      *string            `json:"staffId"`
	StaffName    *string            `json:"staffName"`
	Services     *[]string          `json:"services"`
	Date         *string            `json:"date"`
	Time         *string            `json:"time"`
	Duration     *int               `json:"duration"`
	Status       *AppointmentStatus `json:"status"`
	Notes        *string            `json:"notes"`
}

func (p AppointmentPatch) Apply(a Appointment) Appointment {
	if p.CustomerID != nil {
		a.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		a.CustomerName = *p.CustomerName
	}
	if p.StaffID != nil {
		a.StaffID = *p.StaffID
	}
	if p.StaffName != nil {
		a.StaffName = *p.StaffName
	}
	if p.Services != nil {
		a.Services = slices.Clone(*p.Services)
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}

func (a Appointment) Clone() Appointment {
	a.Services = slices.Clone(a.Services)
	return a
}
