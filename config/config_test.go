package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	utils "github.com/minaorangina/matatu/internal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, key, value string) {
	t.Helper()

	old, had := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "delays.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"MATATU_PORT", "MATATU_LOG_LEVEL", "MATATU_COLOR_LOG", "MATATU_DELAYS_FILE", "MATATU_DISABLE_DELAYS", "MATATU_IDLE_TIMEOUT", "MATATU_SWEEP_INTERVAL"} {
			setenv(t, key, "")
			os.Unsetenv(key)
		}

		cfg, err := Load()

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Port, 8000)
		utils.AssertEqual(t, cfg.LogLevel, "info")
		utils.AssertTrue(t, cfg.ColorLog)
		utils.AssertFalse(t, cfg.DisableDelays)
		utils.AssertEqual(t, cfg.DelaysFile, "")
		utils.AssertEqual(t, cfg.IdleTimeout, 30*time.Minute)
		utils.AssertEqual(t, cfg.SweepInterval, time.Minute)
	})

	t.Run("from the environment", func(t *testing.T) {
		setenv(t, "MATATU_PORT", "9001")
		setenv(t, "MATATU_LOG_LEVEL", "debug")
		setenv(t, "MATATU_COLOR_LOG", "false")
		setenv(t, "MATATU_DISABLE_DELAYS", "true")
		setenv(t, "MATATU_IDLE_TIMEOUT", "90s")

		cfg, err := Load()

		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cfg.Port, 9001)
		utils.AssertEqual(t, cfg.Level(), zerolog.DebugLevel)
		utils.AssertFalse(t, cfg.ColorLog)
		utils.AssertTrue(t, cfg.DisableDelays)
		utils.AssertEqual(t, cfg.IdleTimeout, 90*time.Second)
	})

	t.Run("bad port", func(t *testing.T) {
		setenv(t, "MATATU_PORT", "eight thousand")

		_, err := Load()
		utils.AssertErrored(t, err)
	})

	t.Run("bad flag", func(t *testing.T) {
		setenv(t, "MATATU_DISABLE_DELAYS", "sometimes")

		_, err := Load()
		utils.AssertErrored(t, err)
	})
}

func TestLevel(t *testing.T) {
	utils.AssertEqual(t, Config{LogLevel: "WARN"}.Level(), zerolog.WarnLevel)
	utils.AssertEqual(t, Config{LogLevel: "chatty"}.Level(), zerolog.InfoLevel)
	utils.AssertEqual(t, Config{}.Level(), zerolog.InfoLevel)
}

func TestDelays(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		d, err := Config{}.Delays()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, d, DefaultDelays())
		utils.AssertEqual(t, Millis(d.CountReveal), 3500*time.Millisecond)
	})

	t.Run("disabled", func(t *testing.T) {
		d, err := Config{DisableDelays: true, DelaysFile: "ignored.yaml"}.Delays()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, d, Delays{})
	})

	t.Run("from a file", func(t *testing.T) {
		path := writeFile(t, "aiThink: 10\ncounting: 20\n")

		d, err := Config{DelaysFile: path}.Delays()

		utils.AssertNoError(t, err)
		want := DefaultDelays()
		want.AIThink = 10
		want.Counting = 20
		utils.AssertEqual(t, d, want)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseDelayConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		utils.AssertErrored(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeFile(t, "aiThink: [soon\n")

		_, err := ParseDelayConfig(path)
		utils.AssertErrored(t, err)
	})
}
