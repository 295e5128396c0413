package trackers

import (
	"github.com/samuelfneumann/tdcontrol/experiment"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment. Lengths are stored as float64 so that they can be loaded
// with LoadData like any other tracked data.
type EpisodeLength struct {
	episodeLengths []float64
}

// NewEpisodeLength returns a new EpisodeLength tracker
func NewEpisodeLength() *EpisodeLength {
	return &EpisodeLength{}
}

// LogEpisode implements the experiment.Logger interface
func (e *EpisodeLength) LogEpisode(_ int, ep experiment.Episode) {
	e.episodeLengths = append(e.episodeLengths, float64(ep.NSteps))
}

// Data returns the lengths tracked so far, one per episode
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength tracker to disk
func (e *EpisodeLength) Save(filename string) error {
	return save(filename, e.episodeLengths)
}
