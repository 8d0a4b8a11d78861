package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

const htmlContentType = "text/html; charset=utf-8"

// renderHTML renders node fully before writing so a rendering error can still
// turn into a 500.
func renderHTML(c *gin.Context, status int, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, htmlContentType, buf.Bytes())
}
