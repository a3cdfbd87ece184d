package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nhatvu148/solar-portfolio/internal/content"
)

func TestResolveContentPath(t *testing.T) {
	tests := []struct {
		name             string
		flag, env, saved string
		expected         string
	}{
		{"nothing", "", "", "", ""},
		{"flag wins", "a.yaml", "b.yaml", "c.yaml", "a.yaml"},
		{"env before settings", "", "b.yaml", "c.yaml", "b.yaml"},
		{"settings", "", " ", "c.yaml", "c.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveContentPath(tt.flag, tt.env, tt.saved))
		})
	}
}

func TestOpenContent_Embedded(t *testing.T) {
	store, watcher := OpenContent("", zaptest.NewLogger(t))
	assert.Nil(t, watcher)
	assert.Len(t, store.Planets(), 9)
}

func TestOpenContent_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planets.yaml")
	require.NoError(t, os.WriteFile(path, content.DefaultDocument(), 0o644))

	store, watcher := OpenContent(path, zaptest.NewLogger(t))
	require.NotNil(t, watcher)
	assert.Len(t, store.Planets(), 9)
}

func TestOpenContent_BadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("planets: [\n"), 0o644))

	store, watcher := OpenContent(path, nil)
	assert.Nil(t, watcher)
	assert.Len(t, store.Planets(), 9)
}
