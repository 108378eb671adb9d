package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const slowRequestThreshold = 200 * time.Millisecond

// PerformanceLogger logs every request with its latency and flags slow ones.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Str("client_ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("Request processed")

		if latency > slowRequestThreshold {
			log.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Dur("latency", latency).
				Msg("Slow request")
		}
	}
}
