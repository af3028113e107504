package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hostsfmt.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "/etc/hosts", cfg.HostsFile)
	assert.Equal(t, "hosts", cfg.Format)
	assert.Equal(t, uint32(3600), cfg.ZoneTTL)
	assert.True(t, cfg.Watch)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeINI(t, `
HostsFile = /tmp/hosts
httplisten = :9000
format = zone
ZoneTTL = 60
skipbadencoding = true
watch = false
`)

	cfg := DefaultConfig()
	require.NoError(t, cfg.LoadFromFile(path))
	assert.Equal(t, "/tmp/hosts", cfg.HostsFile)
	assert.Equal(t, ":9000", cfg.HTTPListen)
	assert.Equal(t, "zone", cfg.Format)
	assert.Equal(t, uint32(60), cfg.ZoneTTL)
	assert.True(t, cfg.SkipBadEncoding)
	assert.False(t, cfg.Watch)
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "defaults untouched")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOSTSFILE", "/srv/hosts")
	t.Setenv("HOSTSFORMAT", "json")
	t.Setenv("ZONETTL", "not-a-number")
	t.Setenv("WATCH", "false")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	assert.Equal(t, "/srv/hosts", cfg.HostsFile)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, uint32(3600), cfg.ZoneTTL, "bad value ignored")
	assert.False(t, cfg.Watch)
}

func TestNewEnvOverridesFile(t *testing.T) {
	path := writeINI(t, "hostsfile = /from/file\nformat = yaml\n")
	t.Setenv("HOSTSFILE", "/from/env")

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.HostsFile)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	path := writeINI(t, "format = xml\n")

	cfg, err := New(path)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}
