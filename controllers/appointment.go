package controllers

import (
	"net/http"

	"salonpro-desk/models"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddAppointmentInput accepts an appointment as the booking view builds it.
// An empty id is replaced with a generated one.
type AddAppointmentInput struct {
	ID           string                   `json:"id"`
	CustomerID   string                   `json:"customerId" binding:"required"`
	CustomerName string                   `json:"customerName"`
	StaffID      string                   `json:"staffId"`
	StaffName    string                   `json:"staffName"`
	Services     []string                 `json:"services"`
	Date         string                   `json:"date" binding:"required,datetime=2006-01-02"`
	Time         string                   `json:"time" binding:"required,datetime=15:04"`
	Duration     int                      `json:"duration" binding:"omitempty,min=0"`
	Status       models.AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes        string                   `json:"notes"`
}

type UpdateAppointmentInput struct {
	models.AppointmentPatch
	Status *models.AppointmentStatus `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no-show"`
}

type SelectedCustomerInput struct {
	CustomerID *string `json:"customerId"`
}

// GetAppointments lists appointments, optionally only those of ?customerId=
func GetAppointments(c *gin.Context) {
	appointments := stores.MustAppointments(c.Request.Context())
	if customerID := c.Query("customerId"); customerID != "" {
		c.JSON(http.StatusOK, appointments.ForCustomer(customerID))
		return
	}
	c.JSON(http.StatusOK, appointments.List())
}

func AddAppointment(c *gin.Context) {
	var input AddAppointmentInput
	if !bindJSON(c, &input) {
		return
	}

	appointment := models.Appointment{
		ID:           input.ID,
		CustomerID:   input.CustomerID,
		CustomerName: input.CustomerName,
		StaffID:      input.StaffID,
		StaffName:    input.StaffName,
		Services:     input.Services,
		Date:         input.Date,
		Time:         input.Time,
		Duration:     input.Duration,
		Status:       input.Status,
		Notes:        input.Notes,
	}
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	if appointment.Status == "" {
		appointment.Status = models.AppointmentScheduled
	}
	if appointment.Services == nil {
		appointment.Services = []string{}
	}

	stores.MustAppointments(c.Request.Context()).Add(appointment)
	c.JSON(http.StatusCreated, appointment)
}

func UpdateAppointment(c *gin.Context) {
	var input UpdateAppointmentInput
	if !bindJSON(c, &input) {
		return
	}
	patch := input.AppointmentPatch
	patch.Status = input.Status

	appointments := stores.MustAppointments(c.Request.Context())
	id := c.Param("id")
	if !appointments.Update(id, patch) {
		utils.RespondNotFound(c, "Appointment")
		return
	}
	appointment, _ := appointments.Get(id)
	c.JSON(http.StatusOK, appointment)
}

func GetSelectedCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"customerId": stores.MustAppointments(c.Request.Context()).SelectedCustomerID(),
	})
}

// SetSelectedCustomer stores the booking flow's current customer; null clears it
func SetSelectedCustomer(c *gin.Context) {
	var input SelectedCustomerInput
	if !bindJSON(c, &input) {
		return
	}

	appointments := stores.MustAppointments(c.Request.Context())
	appointments.SetSelectedCustomerID(input.CustomerID)
	c.JSON(http.StatusOK, gin.H{"customerId": appointments.SelectedCustomerID()})
}
