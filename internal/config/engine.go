package config

// EngineConfig holds settings that change how a game maintains its state.
type EngineConfig struct {
	// ReplayOnly skips rebuilding the destinations index after each move.
	// The index is rebuilt on first query instead, which speeds up bulk replay.
	ReplayOnly bool

	// StrictApply makes Apply check the move against the legal destinations
	// and reject anything else with ErrIllegalMove.
	StrictApply bool
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{}
}
