package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HSL-2003/portfolio/internal/assets"
	"github.com/HSL-2003/portfolio/internal/view"
	"github.com/HSL-2003/portfolio/web"
)

func staticFS() http.FileSystem {
	return filesOnly{http.FS(web.Static())}
}

// filesOnly hides directories so the file server never lists them.
type filesOnly struct {
	http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	catalog := s.deps.Catalog
	if m := s.deps.Metrics; m != nil {
		m.IncPageRender()
		m.SetMissingAssets(len(assets.Missing(catalog, s.deps.Site.Images())))
	}
	c.Header("Cache-Control", "no-cache")
	renderHTML(c, http.StatusOK, view.Page(s.deps.Site, view.Options{
		Resolver:  catalog,
		SceneSeed: s.cfg.SceneSeed,
	}))
}

func (s *Server) handlePrivacy(c *gin.Context) {
	renderHTML(c, http.StatusOK, view.Privacy())
}

// handleAsset serves author assets. The CV is served as a download.
func (s *Server) handleAsset(c *gin.Context) {
	name, ok := assets.Clean(strings.TrimPrefix(c.Param("filepath"), "/"))
	if !ok || !s.deps.Catalog.Exists(name) {
		c.Status(http.StatusNotFound)
		return
	}
	if cv, ok := assets.Clean(s.deps.Site.Profile.CV); ok && cv == name {
		c.Header("Content-Disposition", `attachment; filename="`+path.Base(name)+`"`)
	}
	c.Header("Cache-Control", "public, max-age=3600")
	http.ServeFileFS(c.Writer, c.Request, s.deps.Catalog.FS(), name)
}
