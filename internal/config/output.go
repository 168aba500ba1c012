package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of plain text
	JSONFormat bool

	// ShowBoard prints the board diagram before and after play
	ShowBoard bool

	// ShowFEN adds the resulting position to each reported move
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
