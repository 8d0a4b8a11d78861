package assets

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "co1.jpg", want: "co1.jpg", ok: true},
		{in: "/co1.jpg", want: "co1.jpg", ok: true},
		{in: "assets/logo.png", want: "assets/logo.png", ok: true},
		{in: "./img/a.png", want: "img/a.png", ok: true},
		{in: "../secret", ok: false},
		{in: "https://cdn.example.com/a.png", ok: false},
		{in: "//cdn.example.com/a.png", ok: false},
		{in: "   ", ok: false},
		{in: "/", ok: false},
	}
	for _, tc := range tests {
		got, ok := Clean(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestCatalogExists(t *testing.T) {
	fsys := fstest.MapFS{
		"co1.jpg":       {Data: []byte("jpg")},
		"thumbs/p1.jpg": {Data: []byte("jpg")},
	}
	c := NewCatalog(fsys)

	assert.True(t, c.Exists("co1.jpg"))
	assert.True(t, c.Exists("/thumbs/p1.jpg"))
	assert.False(t, c.Exists("thumbs"), "directories are not assets")
	assert.False(t, c.Exists("co2.jpg"))
}

func TestCatalogKeepsAssetsSubdirectory(t *testing.T) {
	c := NewCatalog(fstest.MapFS{"assets/logo.png": {Data: []byte("png")}})

	assert.True(t, c.Exists("assets/logo.png"))
	assert.False(t, c.Exists("logo.png"))
}

func TestCatalogCachesUntilInvalidated(t *testing.T) {
	fsys := fstest.MapFS{}
	c := NewCatalog(fsys)

	assert.False(t, c.Exists("co1.jpg"))
	fsys["co1.jpg"] = &fstest.MapFile{Data: []byte("jpg")}
	assert.False(t, c.Exists("co1.jpg"), "answer is cached")

	c.Invalidate()
	assert.True(t, c.Exists("co1.jpg"))
}

func TestMissing(t *testing.T) {
	c := NewCatalog(fstest.MapFS{"a.jpg": {Data: []byte("x")}})
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, Missing(c, []string{"a.jpg", "b.jpg", "c.jpg"}))
	assert.Empty(t, Missing(c, []string{"a.jpg"}))
}

func TestWatchInvalidatesOnNewFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog(os.DirFS(dir))
	require.False(t, c.Exists("co1.jpg"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	go func() { done <- c.Watch(ctx, dir, logger) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "co1.jpg"), []byte("jpg"), 0o644))

	assert.Eventually(t, func() bool { return c.Exists("co1.jpg") }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	c := NewCatalog(fstest.MapFS{})
	err := c.Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
