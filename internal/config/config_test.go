package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/seoradar")
	t.Setenv("SHEET_CSV_URL", "https://example.com/export.csv")
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, defaultDataFile, cfg.DataFile)

	// scoring defaults come through untouched
	assert.Equal(t, 1.0, cfg.Scoring.WSales)
	assert.Equal(t, 0.3, cfg.Scoring.WGrowth)
	assert.Equal(t, 3.0, cfg.Scoring.TopRankExclusion)
}

func TestLoadEnvironmentVariables_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SHEET_CSV_URL", "https://example.com/export.csv")

	_, err := LoadEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadEnvironmentVariables_MissingSheetURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/seoradar")
	t.Setenv("SHEET_CSV_URL", "")

	_, err := LoadEnvironmentVariables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHEET_CSV_URL")
}

func TestLoadEnvironmentVariables_ScoringOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORE_W_SALES", "2.5")
	t.Setenv("SCORE_MIN_SALES", "100")
	t.Setenv("SCORE_TOP_RANK_EXCLUSION", "5")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Scoring.WSales)
	assert.Equal(t, 100.0, cfg.Scoring.MinSales)
	assert.Equal(t, 5.0, cfg.Scoring.TopRankExclusion)

	// untouched weights keep their defaults
	assert.Equal(t, 0.5, cfg.Scoring.WPageViews)
}

func TestLoadEnvironmentVariables_InvalidOverrideIgnored(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORE_W_SALES", "not a number")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, 1.0, cfg.Scoring.WSales)
}
