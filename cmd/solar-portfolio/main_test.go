package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nhatvu148/solar-portfolio/internal/capability"
	"github.com/nhatvu148/solar-portfolio/internal/content"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProbe_ChromeOnPublicOriginIsStatic(t *testing.T) {
	out, err := execute(t, "probe",
		"--user-agent", "Mozilla/5.0 Chrome/120.0 Safari/537.36",
		"--vendor", "Google Inc.",
		"--protocol", "https:",
		"--hostname", "example.com",
		"--fragment", "",
		"--brand-check=false",
		"--format", "yaml")
	require.NoError(t, err)

	var report capability.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.True(t, report.WillHaveIssues)
	assert.True(t, report.SkipFullRendering)
	assert.Equal(t, "example.com", report.Signals.Hostname)
}

func TestProbe_OverrideShowsScene(t *testing.T) {
	out, err := execute(t, "probe",
		"--user-agent", "Mozilla/5.0 Chrome/120.0",
		"--vendor", "Google Inc.",
		"--protocol", "https:",
		"--hostname", "example.com",
		"--fragment", "#force-3d")
	require.NoError(t, err)
	assert.Contains(t, out, "Presenter:        scene")
	assert.Contains(t, out, "Forced:           true")
}

func TestProbe_FragmentWithoutHash(t *testing.T) {
	out, err := execute(t, "probe",
		"--user-agent", "Mozilla/5.0 Chrome/120.0",
		"--vendor", "Google Inc.",
		"--protocol", "https:",
		"--hostname", "example.com",
		"--fragment", "force-3d")
	require.NoError(t, err)
	assert.Contains(t, out, "Fragment:         #force-3d")
	assert.Contains(t, out, "Forced:           true")
}

func TestProbe_UnknownFormat(t *testing.T) {
	_, err := execute(t, "probe", "--format", "json")
	assert.Error(t, err)
}

func TestExportContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "planets.yaml")

	out, err := execute(t, "export-content", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content.DefaultDocument(), data)

	planets, err := content.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, planets, 9)

	_, err = execute(t, "export-content", path)
	assert.ErrorContains(t, err, "--force")

	_, err = execute(t, "export-content", path, "--force")
	assert.NoError(t, err)
}
