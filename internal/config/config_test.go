package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SPAN", "W1", "W2", "SPACING", "PRECISION", "STEPS", "STRICT", "LOG_LEVEL"} {
		t.Setenv(envPrefix+key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultPrecision, cfg.Precision)
	assert.Equal(t, defaultSteps, cfg.Steps)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.Strict)
	assert.Zero(t, cfg.Span)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MOVLOAD_SPAN", "10")
	t.Setenv("MOVLOAD_W1", " 3 ")
	t.Setenv("MOVLOAD_W2", "1")
	t.Setenv("MOVLOAD_SPACING", "4")
	t.Setenv("MOVLOAD_PRECISION", "3")
	t.Setenv("MOVLOAD_STRICT", "true")
	t.Setenv("MOVLOAD_LOG_LEVEL", "debug")

	cfg, err := Load(&CLIOverrides{})
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Span)
	assert.Equal(t, 3.0, cfg.W1)
	assert.Equal(t, 1.0, cfg.W2)
	assert.Equal(t, 4.0, cfg.Spacing)
	assert.Equal(t, 3, cfg.Precision)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvironment_Malformed(t *testing.T) {
	tests := map[string]string{
		"MOVLOAD_SPAN":      "ten",
		"MOVLOAD_STEPS":     "1.5",
		"MOVLOAD_STRICT":    "maybe",
		"MOVLOAD_PRECISION": "x",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load(nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("MOVLOAD_SPAN", "8")
	t.Setenv("MOVLOAD_W1", "2")
	t.Setenv("MOVLOAD_STEPS", "4")

	path := writeConfig(t, `
problem:
  span: 10
  w1: 3
  w2: 1
  spacing: 4
output:
  precision: 1
strict: true
log_level: info
`)

	spacing := 5.0
	precision := 4
	cfg, err := Load(&CLIOverrides{
		ConfigFile: path,
		Spacing:    &spacing,
		Precision:  &precision,
	})
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Span, "YAML overrides environment")
	assert.Equal(t, 3.0, cfg.W1, "YAML overrides environment")
	assert.Equal(t, 1.0, cfg.W2)
	assert.Equal(t, 5.0, cfg.Spacing, "flag overrides YAML")
	assert.Equal(t, 4, cfg.Precision, "flag overrides YAML")
	assert.Equal(t, 4, cfg.Steps, "environment kept when YAML is silent")
	assert.True(t, cfg.Strict)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadYAML_ExplicitZeroOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MOVLOAD_W2", "5")
	t.Setenv("MOVLOAD_STRICT", "true")

	path := writeConfig(t, `
problem:
  w2: 0
strict: false
`)

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.W2)
	assert.False(t, cfg.Strict)
}

func TestLoadYAML_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeConfig(t, "problem: [1, 2\n")
		_, err := Load(&CLIOverrides{ConfigFile: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse YAML")
	})
}

func TestValidateConfig(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name      string
		overrides CLIOverrides
	}{
		{"negative precision", CLIOverrides{Precision: intPtr(-1)}},
		{"precision too high", CLIOverrides{Precision: intPtr(11)}},
		{"zero steps", CLIOverrides{Steps: intPtr(0)}},
		{"unknown log level", CLIOverrides{LogLevel: strPtr("loud")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(&tc.overrides)
			assert.Error(t, err)
		})
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
