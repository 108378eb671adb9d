package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonpro-desk/config"
	"salonpro-desk/middleware"
	"salonpro-desk/routes"
	"salonpro-desk/services"
	"salonpro-desk/stores"
	"salonpro-desk/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.LogFormat == "json" {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := stores.NewRegistry()

	var notifier services.Notifier = services.LogNotifier{}
	if cfg.Twilio.Enabled() {
		notifier = services.NewTwilioNotifier(cfg.Twilio)
	}
	reminders := services.NewReminderService(reg, notifier)
	reminders.WatchReceipts()
	if err := reminders.StartScheduler(cfg.ReminderSchedule); err != nil {
		log.Fatal().Err(err).Msg("Failed to start reminder scheduler")
	}

	visits := services.NewVisitTracker(reg)
	visits.Start()

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	}

	r := routes.SetupRouter(cfg, routes.Deps{
		Registry:    reg,
		Reminders:   reminders,
		RateLimiter: limiter,
	})
	printRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	visits.Stop()
	if err := reminders.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("Reminder service did not drain in time")
	}
	if limiter != nil {
		limiter.Stop()
	}

	log.Info().Msg("Server exited")
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		log.Debug().Str("method", route.Method).Str("path", route.Path).Msg("Route registered")
	}
}
