package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
launchbox:
  directory: /games/LaunchBox
  path_rewrites:
    - from: 'D:\'
      to: 'X:\emulation\'
retroachievements:
  username: player
  api_key: secret
checker:
  skip_hack: false
consoles:
  - rc_name: GameCube
    lb_name: Nintendo GameCube
  - rc_name: PlayStation
    rc_id: 12
    lb_name: Sony Playstation
    lb_alias: Sony PlayStation
  - rc_name: Dreamcast
    lb_name: Sega Dreamcast
    should_scan: false
`

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/games/LaunchBox", cfg.Launchbox.Directory)
	require.Len(t, cfg.Launchbox.PathRewrites, 1)
	assert.Equal(t, `D:\`, cfg.Launchbox.PathRewrites[0].From)
	assert.Equal(t, `X:\emulation\`, cfg.Launchbox.PathRewrites[0].To)

	t.Run("Defaults", func(t *testing.T) {
		assert.Equal(t, "https://retroachievements.org/API/", cfg.RetroAchievements.BaseURL)
		assert.Equal(t, 5, cfg.RetroAchievements.Retries)
		assert.Equal(t, time.Second, cfg.RetroAchievements.RetryDelay)
		assert.Equal(t, 3.0, cfg.RetroAchievements.RateLimit)
		assert.Equal(t, 24*time.Hour, cfg.RetroAchievements.CacheTTL)
		assert.Equal(t, "file", cfg.Cache.Backend)
		assert.Equal(t, "hashes", cfg.Cache.HashesDir)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, filepath.Join("/games/LaunchBox", "ThirdParty", "RetroAchievements", "RAHasher.exe"), cfg.Hashing.RAHasherPath)
	})

	t.Run("Checker", func(t *testing.T) {
		assert.True(t, cfg.Checker.SkipDemo)
		assert.False(t, cfg.Checker.SkipHack)
		assert.True(t, cfg.Checker.SkipSubset)
	})

	t.Run("Consoles", func(t *testing.T) {
		require.Len(t, cfg.Consoles, 3)
		assert.True(t, cfg.Consoles[0].Scan())
		assert.Equal(t, 12, cfg.Consoles[1].RCID)
		assert.Equal(t, "Sony PlayStation", cfg.Consoles[1].LBAlias)
		assert.False(t, cfg.Consoles[2].Scan())
	})

	cfg.Launchbox.Directory = launchboxRoot(t)
	assert.NoError(t, cfg.Validate())
}

func launchboxRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Data", "Platforms.xml"), []byte("<LaunchBox></LaunchBox>"), 0o644))
	return root
}

func TestLoadConfig_DevOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "launchbox:\n  directory: /shared\n")
	writeConfig(t, filepath.Join(dir, "dev"), "launchbox:\n  directory: /personal\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/personal", cfg.Launchbox.Directory)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)
	t.Setenv("RETROACHIEVEMENTS_API_KEY", "from-env")
	t.Setenv("CHECKER_SKIP_DEMO", "false")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.RetroAchievements.APIKey)
	assert.False(t, cfg.Checker.SkipDemo)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, sampleConfig)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launchbox.directory")
	assert.Contains(t, err.Error(), "api_key")
	assert.Contains(t, err.Error(), "at least one console")

	cfg.Launchbox.Directory = launchboxRoot(t)
	cfg.RetroAchievements.Username = "u"
	cfg.RetroAchievements.APIKey = "k"
	cfg.Consoles = []ConsoleConfig{{RCName: "GameCube"}}
	assert.ErrorContains(t, cfg.Validate(), "consoles[0]: lb_name is required")

	cfg.Consoles[0].LBName = "Nintendo GameCube"
	assert.NoError(t, cfg.Validate())

	t.Run("Missing root", func(t *testing.T) {
		missing := *cfg
		missing.Launchbox.Directory = filepath.Join(t.TempDir(), "not-launchbox")
		err := missing.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "launchbox directory")
	})

	t.Run("Root without platform list", func(t *testing.T) {
		empty := *cfg
		empty.Launchbox.Directory = t.TempDir()
		err := empty.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Platforms.xml")
	})
}

func TestPartitions(t *testing.T) {
	no := false
	cfg := &Config{Consoles: []ConsoleConfig{
		{RCName: "GameCube", LBName: "Nintendo GameCube"},
		{RCName: "PlayStation", RCID: 12, LBName: "Sony Playstation", LBAlias: "Sony PlayStation"},
		{RCName: "Dreamcast", LBName: "Sega Dreamcast", ShouldScan: &no},
	}}

	all := cfg.Partitions()
	require.Len(t, all, 3)
	assert.True(t, all[0].Active)
	assert.Equal(t, 12, all[1].RemoteID)
	assert.Equal(t, "Sony PlayStation", all[1].LocalAlias)
	assert.False(t, all[2].Active)

	filtered := cfg.Partitions("sony playstation", "Dreamcast")
	assert.False(t, filtered[0].Active)
	assert.True(t, filtered[1].Active)
	assert.False(t, filtered[2].Active, "should_scan=false wins over the filter")
}
