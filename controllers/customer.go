package controllers

import (
	"errors"
	"net/http"

	"salonpro-desk/models"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name              string        `json:"name" binding:"required"`
	Phone             string        `json:"phone" binding:"required,phone"`
	Email             string        `json:"email" binding:"omitempty,email"`
	Gender            models.Gender `json:"gender" binding:"required,oneof=male female"`
	PreferredServices []string      `json:"preferredServices"`
	Notes             *string       `json:"notes"`
	Photo             string        `json:"photo"`
}

// UpdateCustomerInput is a partial update; omitted fields keep their value.
type UpdateCustomerInput struct {
	models.CustomerPatch
	Phone  *string        `json:"phone" binding:"omitempty,phone"`
	Email  *string        `json:"email" binding:"omitempty,email"`
	Gender *models.Gender `json:"gender" binding:"omitempty,oneof=male female"`
}

func (in UpdateCustomerInput) patch() models.CustomerPatch {
	p := in.CustomerPatch
	p.Phone, p.Email, p.Gender = in.Phone, in.Email, in.Gender
	return p
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		utils.RespondValidationFailed(c, err)
		return false
	}
	return true
}

// CreateCustomer adds a customer with fresh visit stats
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if !bindJSON(c, &input) {
		return
	}

	customer, err := stores.MustCustomers(c.Request.Context()).Create(models.NewCustomer{
		Name:              input.Name,
		Phone:             input.Phone,
		Email:             input.Email,
		Gender:            input.Gender,
		PreferredServices: input.PreferredServices,
		Notes:             input.Notes,
		Photo:             input.Photo,
	})
	if errors.Is(err, models.ErrInvalidGender) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed", err.Error()))
		return
	}
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create customer", ""))
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// GetCustomers lists every customer, or the one matching ?phone=
func GetCustomers(c *gin.Context) {
	customers := stores.MustCustomers(c.Request.Context())

	if phone := c.Query("phone"); phone != "" {
		out := []models.Customer{}
		if customer, ok := customers.FindByPhone(phone); ok {
			out = append(out, customer)
		}
		c.JSON(http.StatusOK, out)
		return
	}

	c.JSON(http.StatusOK, customers.List())
}

func GetCustomer(c *gin.Context) {
	customer, ok := stores.MustCustomers(c.Request.Context()).Get(c.Param("id"))
	if !ok {
		utils.RespondNotFound(c, "Customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerAppointments lists the appointments booked for a customer
func GetCustomerAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, ok := stores.MustCustomers(ctx).Get(id); !ok {
		utils.RespondNotFound(c, "Customer")
		return
	}
	c.JSON(http.StatusOK, stores.MustAppointments(ctx).ForCustomer(id))
}

func UpdateCustomer(c *gin.Context) {
	var input UpdateCustomerInput
	if !bindJSON(c, &input) {
		return
	}

	customer, ok := stores.MustCustomers(c.Request.Context()).Update(c.Param("id"), input.patch())
	if !ok {
		utils.RespondNotFound(c, "Customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func DeleteCustomer(c *gin.Context) {
	if !stores.MustCustomers(c.Request.Context()).Delete(c.Param("id")) {
		utils.RespondNotFound(c, "Customer")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
