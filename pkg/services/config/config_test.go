package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/playbill/pkg/services/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFile_ReturnsDefaultTariff(t *testing.T) {
	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultTariff(), cfg.Tariff)
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "tariff.yaml")
	content := `tariff:
  tragedy:
    base: 45000
  comedy:
    per_head_rate: 250
  credits:
    comedy_bonus_divisor: 10`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := Load(path)

	// Then
	require.NoError(t, err)
	expected := pricing.DefaultTariff()
	expected.Tragedy.Base = 45000
	expected.Comedy.PerHeadRate = 250
	expected.Credits.ComedyBonusDivisor = 10
	assert.Equal(t, expected, cfg.Tariff)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	// Given
	t.Setenv("PLAYBILL_TARIFF_COMEDY_THRESHOLD", "25")

	// When
	cfg, err := Load("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Tariff.Comedy.Threshold)
	assert.Equal(t, int64(40000), cfg.Tariff.Tragedy.Base)
}

func TestLoad_InvalidTariff_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "tariff.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tariff:\n  credits:\n    comedy_bonus_divisor: 0"), 0o644))

	// When
	_, err := Load(path)

	// Then
	assert.ErrorContains(t, err, "comedy_bonus_divisor must be positive")
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorContains(t, err, "failed to read config file")
}
