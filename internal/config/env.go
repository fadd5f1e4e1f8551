package config

import (
	"fmt"
	"os"
	"strconv"

	"codeberg.org/seoradar/server/internal/scoring"
	"github.com/joho/godotenv"
)

// default path of the flat data file the ingester overwrites on refresh
const defaultDataFile = "sheet_query_data.csv"

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	sheetCSVURL := os.Getenv("SHEET_CSV_URL")
	dataFile := os.Getenv("DATA_FILE")
	environment := os.Getenv("ENVIRONMENT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if sheetCSVURL == "" {
		return nil, fmt.Errorf("SHEET_CSV_URL environment variable is required")
	}

	if dataFile == "" {
		dataFile = defaultDataFile
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		DatabaseURL: databaseURL,
		SheetCSVURL: sheetCSVURL,
		DataFile:    dataFile,
		Environment: environment,
		Scoring:     loadScoringOverrides(),
	}, nil
}

// reads optional weight/threshold overrides on top of the scorer defaults;
// the business treats these as tunable parameters, not code
func loadScoringOverrides() scoring.Config {
	cfg := scoring.DefaultConfig()

	overrideFloat("SCORE_W_SALES", &cfg.WSales)
	overrideFloat("SCORE_W_CV", &cfg.WConversions)
	overrideFloat("SCORE_W_PV", &cfg.WPageViews)
	overrideFloat("SCORE_W_IMP", &cfg.WImpressions)
	overrideFloat("SCORE_W_GROWTH", &cfg.WGrowth)
	overrideFloat("SCORE_W_POSITION", &cfg.WPosition)
	overrideFloat("SCORE_MIN_SALES", &cfg.MinSales)
	overrideFloat("SCORE_TOP_RANK_EXCLUSION", &cfg.TopRankExclusion)

	return cfg
}

func overrideFloat(name string, target *float64) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*target = v
	}
}
