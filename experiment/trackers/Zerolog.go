package trackers

import (
	"github.com/rs/zerolog"

	"github.com/samuelfneumann/tdcontrol/experiment"
)

// Zerolog logs the statistics of every n-th episode as a structured
// log event
type Zerolog struct {
	logger zerolog.Logger
	every  int
}

// NewZerolog returns a new Zerolog logger which logs every n-th
// episode to logger. Values of n below 1 log every episode.
func NewZerolog(logger zerolog.Logger, n int) *Zerolog {
	if n < 1 {
		n = 1
	}
	return &Zerolog{logger: logger, every: n}
}

// LogEpisode implements the experiment.Logger interface
func (z *Zerolog) LogEpisode(i int, e experiment.Episode) {
	if (i+1)%z.every != 0 {
		return
	}
	z.logger.Info().
		Int("episode", i+1).
		Uint64("steps", e.NSteps).
		Float64("return", e.TotalReward).
		Msg("episode complete")
}
