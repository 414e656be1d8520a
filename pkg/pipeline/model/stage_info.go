package model

import "fmt"

// StageInfo describes one stage of a pipeline without exposing its payload.
type StageInfo struct {
	// Index is the position of the stage in the chain.
	Index int
	// Type is the mechanism used to evaluate the stage.
	Type StageType
	// Implements is the semantic kind reported for the stage. It equals Type unless the
	// stage is an alias, e.g. a matrix implementing the Lab v2 to v4 rescale.
	Implements     StageType
	InputChannels  int
	OutputChannels int
}

// Aliased reports whether the stage is reported under a different kind than the one evaluating it.
func (s StageInfo) Aliased() bool {
	return s.Type != s.Implements
}

func (s StageInfo) String() string {
	if s.Aliased() {
		return fmt.Sprintf("%s [%s] %d -> %d", s.Implements, s.Type, s.InputChannels, s.OutputChannels)
	}

	return fmt.Sprintf("%s %d -> %d", s.Type, s.InputChannels, s.OutputChannels)
}
