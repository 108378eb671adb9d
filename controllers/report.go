// controllers/report.go
package controllers

import (
	"net/http"
	"sort"

	"salonpro-desk/models"
	"salonpro-desk/services"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportController handles all reporting functions
type ReportController struct {
	// InactiveAfterDays marks customers whose last visit is older as inactive.
	InactiveAfterDays int
}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue  decimal.Decimal           `json:"currentMonthRevenue"`
	PreviousMonthRevenue decimal.Decimal           `json:"previousMonthRevenue"`
	MonthGrowth          float64                   `json:"monthGrowth"`
	Ledger               services.TallySummary     `json:"ledger"`
	TopServices          []services.ServiceRevenue `json:"topServices"`
	TopCustomers         []CustomerSummary         `json:"topCustomers"`
	InactiveCustomers    []CustomerSummary         `json:"inactiveCustomers"`
	QuickStats           QuickStatistics           `json:"quickStats"`
}

type CustomerSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Visits         int     `json:"visits"`
	Spent          float64 `json:"spent"`
	DaysSinceVisit int     `json:"daysSinceVisit"`
}

type QuickStatistics struct {
	TotalCustomers       int                              `json:"totalCustomers"`
	TotalStaff           int                              `json:"totalStaff"`
	TotalEntries         int                              `json:"totalEntries"`
	AvgOrderValue        decimal.Decimal                  `json:"avgOrderValue"`
	AppointmentsByStatus map[models.AppointmentStatus]int `json:"appointmentsByStatus"`
}

const topCustomersLimit = 5

func monthRevenue(items []models.TallyItem, month string) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.PaymentStatus == models.PaymentCompleted && len(item.Date) >= 7 && item.Date[:7] == month {
			total = total.Add(services.Amount(item.TotalCost))
		}
	}
	return total
}

// GetReportAnalytics returns the complete report summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	customers := stores.MustCustomers(ctx).List()
	items := stores.MustTally(ctx).List()
	today := now()

	ledger := services.SummarizeTally(items, "")
	current := monthRevenue(items, today.Format("2006-01"))
	previous := monthRevenue(items, today.AddDate(0, -1, -today.Day()+1).Format("2006-01"))

	summary := AnalyticsSummary{
		CurrentMonthRevenue:  current,
		PreviousMonthRevenue: previous,
		Ledger:               ledger,
		TopServices:          ledger.TopServices,
		TopCustomers:         []CustomerSummary{},
		InactiveCustomers:    []CustomerSummary{},
		QuickStats: QuickStatistics{
			TotalCustomers:       len(customers),
			TotalStaff:           len(stores.MustStaff(ctx).List()),
			TotalEntries:         ledger.Entries,
			AvgOrderValue:        ledger.AverageTicket,
			AppointmentsByStatus: map[models.AppointmentStatus]int{},
		},
	}
	if previous.IsPositive() {
		summary.MonthGrowth = current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}

	for _, a := range stores.MustAppointments(ctx).List() {
		summary.QuickStats.AppointmentsByStatus[a.Status]++
	}

	ranked := make([]CustomerSummary, 0, len(customers))
	for _, cust := range customers {
		s := CustomerSummary{
			ID:             cust.ID,
			Name:           cust.Name,
			Visits:         cust.VisitCount,
			Spent:          cust.TotalSpent,
			DaysSinceVisit: utils.DaysBetween(cust.LastVisit, today),
		}
		ranked = append(ranked, s)
		if rc.InactiveAfterDays > 0 && s.DaysSinceVisit > rc.InactiveAfterDays {
			summary.InactiveCustomers = append(summary.InactiveCustomers, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Spent > ranked[j].Spent })
	if len(ranked) > topCustomersLimit {
		ranked = ranked[:topCustomersLimit]
	}
	summary.TopCustomers = ranked

	c.JSON(http.StatusOK, summary)
}
