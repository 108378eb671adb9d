package controllers

import (
	"net/http"

	"salonpro-desk/models"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
)

type WorkingHoursInput struct {
	Start string `json:"start" binding:"required,datetime=15:04"`
	End   string `json:"end" binding:"required,datetime=15:04"`
}

type AddEmployeeInput struct {
	Name          string             `json:"name" binding:"required"`
	Role          string             `json:"role" binding:"required"`
	Photo         string             `json:"photo"`
	Available     bool               `json:"available"`
	Specialties   []string           `json:"specialties"`
	Rating        *float64           `json:"rating" binding:"omitempty,min=0,max=5"`
	NextAvailable *string            `json:"nextAvailable"`
	WorkingHours  *WorkingHoursInput `json:"workingHours"`
}

type UpdateEmployeeInput struct {
	models.EmployeePatch
	Rating       *float64           `json:"rating" binding:"omitempty,min=0,max=5"`
	WorkingHours *WorkingHoursInput `json:"workingHours"`
}

func (in *WorkingHoursInput) hours() *models.WorkingHours {
	if in == nil {
		return nil
	}
	return &models.WorkingHours{Start: in.Start, End: in.End}
}

func GetEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, stores.MustStaff(c.Request.Context()).List())
}

func GetEmployee(c *gin.Context) {
	employee, ok := stores.MustStaff(c.Request.Context()).Get(c.Param("id"))
	if !ok {
		utils.RespondNotFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// GetAvailableCount reports how many employees can take a client right now
func GetAvailableCount(c *gin.Context) {
	staff := stores.MustStaff(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"available": staff.AvailableCount(),
		"total":     len(staff.List()),
	})
}

func AddEmployee(c *gin.Context) {
	var input AddEmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	employee := stores.MustStaff(c.Request.Context()).Create(models.NewEmployee{
		Name:          input.Name,
		Role:          input.Role,
		Photo:         input.Photo,
		Available:     input.Available,
		Specialties:   input.Specialties,
		Rating:        input.Rating,
		NextAvailable: input.NextAvailable,
		WorkingHours:  input.WorkingHours.hours(),
	})
	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context) {
	var input UpdateEmployeeInput
	if !bindJSON(c, &input) {
		return
	}
	patch := input.EmployeePatch
	patch.Rating = input.Rating
	patch.WorkingHours = input.WorkingHours.hours()

	employee, ok := stores.MustStaff(c.Request.Context()).Update(c.Param("id"), patch)
	if !ok {
		utils.RespondNotFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context) {
	if !stores.MustStaff(c.Request.Context()).Remove(c.Param("id")) {
		utils.RespondNotFound(c, "Employee")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee removed successfully"})
}
