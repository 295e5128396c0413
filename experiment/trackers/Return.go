package trackers

import (
	"github.com/samuelfneumann/tdcontrol/experiment"
)

// Return tracks and saves the episodic return in an experiment. The
// return is the undiscounted sum of rewards of an episode.
type Return struct {
	episodeReturns []float64
}

// NewReturn creates and returns a new *Return tracker
func NewReturn() *Return {
	return &Return{}
}

// LogEpisode implements the experiment.Logger interface
func (r *Return) LogEpisode(_ int, e experiment.Episode) {
	r.episodeReturns = append(r.episodeReturns, e.TotalReward)
}

// Data returns the returns tracked so far, one per episode
func (r *Return) Data() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return tracker to disk
func (r *Return) Save(filename string) error {
	return save(filename, r.episodeReturns)
}
