package controllers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"salonpro-desk/models"
	"salonpro-desk/services"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

const (
	upcomingLimit = 5
	recentLimit   = 3
)

type DashboardOverview struct {
	Date                 string               `json:"date"`
	TotalCustomers       int                  `json:"totalCustomers"`
	TotalStaff           int                  `json:"totalStaff"`
	AvailableStaff       int                  `json:"availableStaff"`
	TodayAppointments    int                  `json:"todayAppointments"`
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	TodayRevenue         decimal.Decimal      `json:"todayRevenue"`
	PendingPayments      int                  `json:"pendingPayments"`
	PendingAmount        decimal.Decimal      `json:"pendingAmount"`
	RecentCustomers      []RecentCustomer     `json:"recentCustomers"`
	SelectedCustomerID   *string              `json:"selectedCustomerId"`
}

type RecentCustomer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Service   string `json:"service"`
	VisitDate string `json:"visitDate"` // e.g. "Today", "Yesterday"
}

func GetDashboardOverview(c *gin.Context) {
	ctx := c.Request.Context()
	customers := stores.MustCustomers(ctx).List()
	staff := stores.MustStaff(ctx)
	appointments := stores.MustAppointments(ctx)
	tally := stores.MustTally(ctx)

	today := now()
	date := today.Format(time.DateOnly)

	overview := DashboardOverview{
		Date:                 date,
		TotalCustomers:       len(customers),
		TotalStaff:           len(staff.List()),
		AvailableStaff:       staff.AvailableCount(),
		UpcomingAppointments: []models.Appointment{},
		RecentCustomers:      []RecentCustomer{},
		SelectedCustomerID:   appointments.SelectedCustomerID(),
	}

	// Today's appointments
	for _, a := range appointments.List() {
		if a.Date != date {
			continue
		}
		overview.TodayAppointments++
		if a.Status == models.AppointmentScheduled {
			overview.UpcomingAppointments = append(overview.UpcomingAppointments, a)
		}
	}
	sort.SliceStable(overview.UpcomingAppointments, func(i, j int) bool {
		return overview.UpcomingAppointments[i].Time < overview.UpcomingAppointments[j].Time
	})
	if len(overview.UpcomingAppointments) > upcomingLimit {
		overview.UpcomingAppointments = overview.UpcomingAppointments[:upcomingLimit]
	}

	// Revenue and outstanding payments
	items := tally.List()
	overview.TodayRevenue = services.SummarizeTally(items, date).Revenue
	all := services.SummarizeTally(items, "")
	overview.PendingPayments = all.ByStatus[models.PaymentPending]
	overview.PendingAmount = all.Outstanding

	// Recent customers (last 3 visits)
	recent := make([]models.Customer, 0, len(customers))
	for _, cust := range customers {
		if cust.VisitCount > 0 {
			recent = append(recent, cust)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].LastVisit.After(recent[j].LastVisit)
	})
	for i, cust := range recent {
		if i == recentLimit {
			break
		}
		overview.RecentCustomers = append(overview.RecentCustomers, RecentCustomer{
			ID:        cust.ID,
			Name:      cust.Name,
			Service:   strings.Join(cust.PreferredServices, ", "),
			VisitDate: utils.RelativeDay(cust.LastVisit, today),
		})
	}

	c.JSON(http.StatusOK, overview)
}
