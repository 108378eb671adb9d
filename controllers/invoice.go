// controllers/invoice.go
package controllers

import (
	"net/http"

	"salonpro-desk/models"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

// GetInvoice renders the invoice for a single tally entry
func GetInvoice(c *gin.Context) {
	item, ok := stores.MustTally(c.Request.Context()).Get(c.Param("id"))
	if !ok {
		utils.RespondNotFound(c, "Tally entry")
		return
	}
	c.JSON(http.StatusOK, models.NewInvoice(item))
}

// GetInvoices lists invoices for the settled entries, optionally of one ?date=
func GetInvoices(c *gin.Context) {
	date := c.Query("date")

	invoices := []models.Invoice{}
	for _, item := range stores.MustTally(c.Request.Context()).List() {
		if item.PaymentStatus != models.PaymentCompleted {
			continue
		}
		if date != "" && item.Date != date {
			continue
		}
		invoices = append(invoices, models.NewInvoice(item))
	}
	c.JSON(http.StatusOK, invoices)
}
