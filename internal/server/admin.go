package server

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HSL-2003/portfolio/internal/view"
)

const (
	adminCookie    = "admin_token"
	adminCookieAge = 24 * 60 * 60
)

// adminAuth holds the configured credentials and the session token issued on
// login. The token is regenerated on every start.
type adminAuth struct {
	username string
	password string
	token    string
}

func newAdminAuth(username, password string) (*adminAuth, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	return &adminAuth{username: username, password: password, token: hex.EncodeToString(b)}, nil
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

func (a *adminAuth) require() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminRoutes(r *gin.RouterGroup) {
	log := s.deps.Logger
	visits := s.deps.Visits

	r.GET("/admin/login", func(c *gin.Context) {
		renderHTML(c, http.StatusOK, view.AdminLogin(""))
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if !s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			log.Warn("admin login failed", "visitor", visits.HashIP(c.ClientIP()))
			renderHTML(c, http.StatusUnauthorized, view.AdminLogin("Invalid credentials"))
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.admin.token, adminCookieAge, "/admin", "", c.Request.TLS != nil, true)
		log.Info("admin login", "visitor", visits.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	protected := r.Group("/admin", s.admin.require())
	protected.GET("/dashboard", func(c *gin.Context) {
		stats, err := visits.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "failed to load statistics")
			return
		}
		renderHTML(c, http.StatusOK, view.AdminDashboard(stats))
	})
	protected.GET("/api/stats", func(c *gin.Context) {
		stats, err := visits.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
	protected.GET("/export/stats", func(c *gin.Context) {
		stats, err := visits.Stats(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="admin-stats.json"`)
		log.Info("admin stats exported", "visitor", visits.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})
	protected.POST("/privacy/delete-visitor-data", func(c *gin.Context) {
		n, err := visits.Cleanup(c.Request.Context(), s.cfg.Retention)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "privacy cleanup failed"})
			return
		}
		log.Info("privacy cleanup", "deleted", n, "visitor", visits.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, gin.H{"message": "privacy cleanup complete", "deleted": n})
	})
}
