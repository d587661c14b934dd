package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var scannerPrefixes = []string{
	"/admin",
	"/phpmyadmin",
	"/wp-admin",
	"/wp-login",
	"/.env",
	"/.git",
	"/.aws",
	"/cgi-bin",
	"/actuator",
	"/console",
	"/backup",
}

var scannerSuffixes = []string{".php", ".asp", ".aspx", ".jsp", ".bak", ".sql", ".zip"}

// NoiseFilter suppresses access logs for unauthenticated scanner probes.
// Register after Logging so the flag is set before Logging reads it.
func NoiseFilter(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.GetBool(AuthenticatedKey) {
			return
		}

		status := c.Writer.Status()
		if status == http.StatusMethodNotAllowed || (status >= 400 && isScannerPath(c.Request.URL.Path)) {
			c.Set(SkipLoggingKey, true)
			logger.Debug("Scanner request filtered",
				"component", "api",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", status,
				"client_ip", c.ClientIP())
		}
	}
}

func isScannerPath(path string) bool {
	lower := strings.ToLower(path)
	for _, prefix := range scannerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	for _, suffix := range scannerSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
