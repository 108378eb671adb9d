package routes

import (
	"net/http"
	"slices"
	"time"

	"salonpro-desk/config"
	"salonpro-desk/controllers"
	"salonpro-desk/middleware"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Deps are the long-lived collaborators the router hands to controllers.
type Deps struct {
	Registry    *stores.Registry
	Reminders   controllers.PaymentReminder
	RateLimiter *middleware.RateLimiter
}

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	if err := utils.RegisterValidators(); err != nil {
		log.Error().Err(err).Msg("Failed to register validators")
	}

	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			return slices.Contains(cfg.CORSAllowedOrigins, origin)
		},
		MaxAge: 12 * time.Hour,
	}))
	r.Use(config.PerformanceLogger())
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := &controllers.AuthController{
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
		Secret:       cfg.JWTSecret,
		Expiry:       cfg.JWTExpiry,
	}
	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), authController.Me)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	api.Use(middleware.ProvideStores(deps.Registry))
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.GET("/:id/appointments", controllers.GetCustomerAppointments)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		employees := api.Group("/employees")
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.GET("/available-count", controllers.GetAvailableCount)
			employees.GET("/:id", controllers.GetEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.POST("", controllers.AddAppointment)
			appointments.GET("/selected-customer", controllers.GetSelectedCustomer)
			appointments.PUT("/selected-customer", controllers.SetSelectedCustomer)
			appointments.PUT("/:id", controllers.UpdateAppointment)
		}

		tally := api.Group("/tally")
		{
			tally.GET("", controllers.GetTally)
			tally.POST("", controllers.CreateTallyEntry)
			tally.GET("/summary", controllers.GetTallySummary)
			tally.GET("/:id", controllers.GetTallyEntry)
			tally.PATCH("/:id/status", controllers.UpdateTallyStatus)
			tally.GET("/:id/invoice", controllers.GetInvoice)
		}
		api.GET("/invoices", controllers.GetInvoices)

		if deps.Reminders != nil {
			reminderController := &controllers.ReminderController{Reminders: deps.Reminders}
			api.POST("/reminders/payments", reminderController.SendPaymentReminders)
			api.GET("/reminders/log", reminderController.GetReminderLog)
		}

		//Reports routes
		reportController := controllers.ReportController{InactiveAfterDays: 60}
		api.GET("/reports", reportController.GetReportAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
