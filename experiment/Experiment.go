// Package experiment implements drivers which run control agents in
// episodic domains.
//
// A driver produces one Episode each time Next is called. A
// SerialExperiment trains its agent, while an Evaluation follows the
// agent's greedy policy without learning. Run pulls a number of
// episodes from a driver and reports each to an optional Logger.
package experiment

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/tdcontrol/utils/progressbar"
)

// Episode packages together the statistics of a single episode
type Episode struct {
	// NSteps is the number of transitions taken in the episode
	NSteps uint64

	// TotalReward is the undiscounted sum of rewards in the episode
	TotalReward float64
}

// String implements the fmt.Stringer interface
func (e Episode) String() string {
	return fmt.Sprintf("Episode | Steps: %d  |  Return: %.2f", e.NSteps,
		e.TotalReward)
}

// Driver runs one episode each time Next is called. A Driver owns its
// agent for as long as it is in use.
type Driver interface {
	Next() Episode
}

// Logger receives the statistics of each episode run by Run
type Logger interface {
	LogEpisode(i int, e Episode)
}

type loggers []Logger

// Loggers returns a Logger which passes each episode to every argument
// Logger in order
func Loggers(l ...Logger) Logger {
	return loggers(l)
}

func (l loggers) LogEpisode(i int, e Episode) {
	for _, logger := range l {
		logger.LogEpisode(i, e)
	}
}

// Run pulls n episodes from d and returns them in order. Each episode
// is passed to logger, which may be nil. If showProgress is true, a
// progress bar is printed to stderr.
func Run(d Driver, n int, logger Logger, showProgress bool) []Episode {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.New(os.Stderr, 50, n)
		bar.Display()
	}

	episodes := make([]Episode, 0, n)
	for i := 0; i < n; i++ {
		e := d.Next()
		episodes = append(episodes, e)

		if logger != nil {
			logger.LogEpisode(i, e)
		}
		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return episodes
}
