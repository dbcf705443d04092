package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var skipPaths = []string{"/api/health", "/health"}

// Logger writes one colored line per handled request with status, latency
// and the resolved user when auth middleware has run.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skip := range skipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		userID := c.GetString("userID")

		fullPath := path
		if query != "" {
			fullPath = path + "?" + query
		}

		line := ""
		if userID != "" {
			line = ColorGray + " user=" + userID + ColorReset
		}

		log.Printf("%s%s%s %s%s%s %s[%d]%s %s%v%s%s",
			getMethodColor(method), method, ColorReset,
			ColorBlue, fullPath, ColorReset,
			getStatusColor(status), status, ColorReset,
			ColorGray, latency, ColorReset,
			line)
	}
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return ColorGreen
	case "POST":
		return ColorBlue
	case "PUT":
		return ColorYellow
	case "DELETE":
		return ColorRed
	case "PATCH":
		return ColorPurple
	default:
		return ColorWhite
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ColorGreen
	case status >= 300 && status < 400:
		return ColorCyan
	case status >= 400 && status < 500:
		return ColorYellow
	case status >= 500:
		return ColorRed
	default:
		return ColorWhite
	}
}
