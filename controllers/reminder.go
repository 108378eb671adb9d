// controllers/reminder.go
package controllers

import (
	"context"
	"net/http"

	"salonpro-desk/models"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

// PaymentReminder sends reminders for outstanding payments and keeps a log of
// recent deliveries.
type PaymentReminder interface {
	SendPendingPaymentReminders(ctx context.Context) (int, error)
	History() []models.ReminderLog
}

type ReminderController struct {
	Reminders PaymentReminder
}

// SendPaymentReminders runs the reminder job now instead of waiting for the schedule
func (rc *ReminderController) SendPaymentReminders(c *gin.Context) {
	sent, err := rc.Reminders.SendPendingPaymentReminders(c.Request.Context())
	if err != nil {
		utils.LogError(err, "Manual payment reminder run failed")
		apiErr := utils.NewAPIError(http.StatusBadGateway, "REMINDER_DELIVERY_FAILED", "Some reminders could not be sent", err.Error())
		c.AbortWithStatusJSON(apiErr.StatusCode, gin.H{"error": apiErr, "sent": sent})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}

// GetReminderLog lists recent reminder and receipt deliveries, newest first
func (rc *ReminderController) GetReminderLog(c *gin.Context) {
	history := rc.Reminders.History()
	if history == nil {
		history = []models.ReminderLog{}
	}
	c.JSON(http.StatusOK, history)
}
