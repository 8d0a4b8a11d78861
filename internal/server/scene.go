package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/HSL-2003/portfolio/internal/scene"
)

// Generated scenes are deterministic, so the encoded JSON is cached per seed.
// Only a handful of seeds are kept; the page only ever asks for one.
const maxCachedScenes = 8

type sceneCache struct {
	cfg scene.Config

	mu      sync.Mutex
	encoded map[uint64][]byte
}

func newSceneCache(cfg scene.Config) *sceneCache {
	return &sceneCache{cfg: cfg, encoded: make(map[uint64][]byte)}
}

func (sc *sceneCache) get(seed uint64) ([]byte, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if b, ok := sc.encoded[seed]; ok {
		return b, nil
	}
	b, err := json.Marshal(scene.Generate(sc.cfg, seed))
	if err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	if len(sc.encoded) < maxCachedScenes {
		sc.encoded[seed] = b
	}
	return b, nil
}

func (s *Server) handleScene(c *gin.Context) {
	seed := s.cfg.SceneSeed
	if raw := c.Query("seed"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an unsigned integer"})
			return
		}
		seed = v
	}

	b, err := s.scenes.get(seed)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scene unavailable"})
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "application/json", b)
}
