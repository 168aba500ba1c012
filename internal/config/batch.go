package config

// BatchConfig holds settings for batch analysis.
type BatchConfig struct {
	// SuppressDuplicates analyses each distinct position once; later
	// occurrences are reported as duplicates of the first.
	SuppressDuplicates bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{}
}
