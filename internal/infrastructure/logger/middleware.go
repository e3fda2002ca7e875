package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type LoggerMiddleware struct {
	logger zerolog.Logger
}

// RequestLogger journalise chaque requête HTTP traitée
func (lm *LoggerMiddleware) RequestLogger() gin.HandlerFunc {
	skip := map[string]struct{}{
		"/health": {},
		"/ready":  {},
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		evt := lm.logger.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			evt = lm.logger.Error()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}

		evt.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery intercepte les panics et répond 500 sans exposer le détail
func (lm *LoggerMiddleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		lm.logger.Error().Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Une erreur interne est survenue.",
		})
	})
}
