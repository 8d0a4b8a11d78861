package analytics

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Recorder stores a single visit.
type Recorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
}

var untrackedPrefixes = []string{
	"/static/",
	"/assets/",
	"/api/",
	"/admin",
	"/metrics",
	"/healthz",
	"/favicon",
	"/privacy",
}

const recordTimeout = 5 * time.Second

// Middleware records page views in the background once the handler has run.
// Requests that matched no route are skipped, as are asset, API and admin
// requests and every request carrying "DNT: 1". Failures are logged and never
// reach the visitor.
func Middleware(rec Recorder, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.FullPath() == "" || c.Request.Method != http.MethodGet || !Trackable(path) || c.GetHeader("DNT") == "1" {
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := rec.Record(ctx, ip, ua, path); err != nil {
				logger.Warn("record visit", "path", path, "error", err)
			}
		}()
	}
}

// Trackable reports whether a request path counts as a page view.
func Trackable(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}
