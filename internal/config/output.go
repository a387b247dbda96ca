package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON reports instead of text
	JSONFormat bool

	// Unicode draws pieces with figurine glyphs instead of letters
	Unicode bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool

	// ShowBoard draws the board diagram
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
