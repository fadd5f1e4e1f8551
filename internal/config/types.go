package config

import "codeberg.org/seoradar/server/internal/scoring"

type Config struct {
	DatabaseURL string
	SheetCSVURL string
	DataFile    string
	Environment string
	Scoring     scoring.Config
}
