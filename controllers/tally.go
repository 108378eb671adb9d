package controllers

import (
	"errors"
	"net/http"

	"salonpro-desk/models"
	"salonpro-desk/services"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

type ServiceLineInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

type CreateTallyInput struct {
	Date          string               `json:"date" binding:"required,datetime=2006-01-02"`
	Time          string               `json:"time" binding:"required,datetime=15:04"`
	CustomerName  string               `json:"customerName" binding:"required"`
	CustomerPhone string               `json:"customerPhone" binding:"omitempty,phone"`
	StaffName     string               `json:"staffName"`
	Services      []ServiceLineInput   `json:"services" binding:"dive"`
	TotalCost     float64              `json:"totalCost" binding:"min=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card upi"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus" binding:"omitempty,oneof=pending completed failed cancelled"`
}

type UpdateTallyStatusInput struct {
	Status           models.PaymentStatus `json:"status" binding:"required,oneof=completed failed cancelled"`
	UPITransactionID string               `json:"upiTransactionId"`
}

// GetTally lists ledger entries, filtered by ?date= and ?status= when given
func GetTally(c *gin.Context) {
	date, status := c.Query("date"), models.PaymentStatus(c.Query("status"))

	out := []models.TallyItem{}
	for _, item := range stores.MustTally(c.Request.Context()).List() {
		if date != "" && item.Date != date {
			continue
		}
		if status != "" && item.PaymentStatus != status {
			continue
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}

func GetTallyEntry(c *gin.Context) {
	item, ok := stores.MustTally(c.Request.Context()).Get(c.Param("id"))
	if !ok {
		utils.RespondNotFound(c, "Tally entry")
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateTallyEntry(c *gin.Context) {
	var input CreateTallyInput
	if !bindJSON(c, &input) {
		return
	}

	lines := make([]models.ServiceLine, 0, len(input.Services))
	for _, l := range input.Services {
		lines = append(lines, models.ServiceLine{Name: l.Name, Price: l.Price})
	}

	item, err := stores.MustTally(c.Request.Context()).Create(models.NewTallyItem{
		Date:          input.Date,
		Time:          input.Time,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		StaffName:     input.StaffName,
		Services:      lines,
		TotalCost:     input.TotalCost,
		PaymentMethod: input.PaymentMethod,
		PaymentStatus: input.PaymentStatus,
	})
	if errors.Is(err, models.ErrInvalidPaymentMethod) || errors.Is(err, models.ErrInvalidPaymentStatus) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed", err.Error()))
		return
	}
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record payment", ""))
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateTallyStatus settles a pending entry or corrects a settled one
func UpdateTallyStatus(c *gin.Context) {
	var input UpdateTallyStatusInput
	if !bindJSON(c, &input) {
		return
	}

	tally := stores.MustTally(c.Request.Context())
	id := c.Param("id")
	if _, ok := tally.Get(id); !ok {
		utils.RespondNotFound(c, "Tally entry")
		return
	}

	if err := tally.UpdateStatus(id, input.Status, input.UPITransactionID); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed", err.Error()))
		return
	}

	item, _ := tally.Get(id)
	c.JSON(http.StatusOK, item)
}

// GetTallySummary totals the ledger, for a single ?date= when given
func GetTallySummary(c *gin.Context) {
	items := stores.MustTally(c.Request.Context()).List()
	c.JSON(http.StatusOK, services.SummarizeTally(items, c.Query("date")))
}
