package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			RawFile:     "netflix_data.csv",
			CleanedFile: "cleaned_netflix_data.csv",
			DateColumn:  6,
			DBPath:      "",
			DBTable:     "titles",
			DBColumn:    "date_added",
		},
		Output: OutputConfig{
			DOTFile:            "netflix_graph.dot",
			HighlightThreshold: 1000,
			RankDir:            "LR",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
