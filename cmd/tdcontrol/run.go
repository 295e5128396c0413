package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/tdcontrol/experiment"
	"github.com/samuelfneumann/tdcontrol/experiment/trackers"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Train and evaluate an agent described by a configuration file",
		Long: `Run trains the agent of a configuration file in its domain, then
evaluates the agent's greedy policy. Each run is saved to its own
directory, named by a random run ID, under the output directory:

  config.json       the configuration of the run
  returns.bin       training episode returns
  lengths.bin       training episode lengths
  evaluation.bin    evaluation episode returns
  curves.html       a chart of the training returns and lengths`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "Experiment configuration file (JSON)")
	flags.String("out", "results", "Directory to save results in")
	flags.Int("episodes", 0, "Override the number of training episodes")
	flags.Uint64("seed", 0, "Override the seed of the configuration")
	flags.Int("log-every", 100, "Log every n-th training episode")
	flags.Int("checkpoint", 0, "Save the training returns every n episodes, 0 for never")
	flags.Int("window", 10, "Moving average window of the plotted curves")
	flags.Bool("progress", false, "Show a progress bar during training")
	flags.Bool("no-color", false, "Disable colors in the summary")
	v.BindPFlags(flags)

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log-level"))
	if err != nil {
		return err
	}

	c, err := loadConfig(v.GetString("config"))
	if err != nil {
		return err
	}
	if n := v.GetInt("episodes"); n > 0 {
		c.Episodes = n
	}
	if v.IsSet("seed") {
		c.Seed = v.GetUint64("seed")
	}

	runID := uuid.NewString()
	dir := filepath.Join(v.GetString("out"), runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("run: could not create output directory: %v", err)
	}
	logger = logger.With().Str("run", runID).Logger()
	logger.Info().
		Str("domain", string(c.Domain.Type)).
		Str("agent", string(c.Agent.Type)).
		Int("episodes", c.Episodes).
		Uint64("seed", c.Seed).
		Msg("starting experiment")

	if err := saveConfig(filepath.Join(dir, "config.json"), c); err != nil {
		return err
	}

	returns := trackers.NewReturn()
	lengths := trackers.NewEpisodeLength()
	evalReturns := trackers.NewReturn()
	training := []experiment.Logger{
		returns,
		lengths,
		trackers.NewZerolog(logger, v.GetInt("log-every")),
	}

	var checkpoint *trackers.Checkpoint
	if n := v.GetInt("checkpoint"); n > 0 {
		checkpoint, err = trackers.NewCheckpoint(returns, n,
			trackers.FilenameEnumerator(0, filepath.Join(dir, "returns-"),
				".bin"))
		if err != nil {
			return fmt.Errorf("run: %v", err)
		}
		training = append(training, checkpoint)
	}

	result, err := c.Run(experiment.Loggers(training...), evalReturns,
		v.GetBool("progress"))
	if err != nil {
		return err
	}
	if checkpoint != nil && checkpoint.Err() != nil {
		logger.Warn().Err(checkpoint.Err()).Msg("checkpoint failed")
	}

	saves := map[string]trackers.Saver{
		"returns.bin":    returns,
		"lengths.bin":    lengths,
		"evaluation.bin": evalReturns,
	}
	for name, s := range saves {
		if err := s.Save(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}

	window := v.GetInt("window")
	if err := plotFile(filepath.Join(dir, "curves.html"), "Training",
		trackers.Curve{
			Name:   "return",
			Values: trackers.MovingAverage(returns.Data(), window),
		},
		trackers.Curve{
			Name:   "length",
			Values: trackers.MovingAverage(lengths.Data(), window),
		},
	); err != nil {
		return err
	}
	logger.Info().Str("dir", dir).Msg("results saved")

	au := aurora.NewAurora(!v.GetBool("no-color"))
	printSummary(cmd.OutOrStdout(), au, runID, window, result)
	return nil
}

// loadConfig reads an experiment configuration from a JSON file
func loadConfig(filename string) (experiment.Config, error) {
	if filename == "" {
		return experiment.Config{}, fmt.Errorf("loadConfig: no " +
			"configuration file given")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return experiment.Config{}, fmt.Errorf("loadConfig: %v", err)
	}

	var c experiment.Config
	if err := json.Unmarshal(data, &c); err != nil {
		return experiment.Config{}, fmt.Errorf("loadConfig: %s: %v",
			filename, err)
	}
	return c, nil
}

func saveConfig(filename string, c experiment.Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("saveConfig: %v", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("saveConfig: %v", err)
	}
	return nil
}

// printSummary prints the mean return of the final window training
// episodes and of the evaluation episodes
func printSummary(w io.Writer, au aurora.Aurora, runID string, window int,
	result experiment.Result) {
	fmt.Fprintf(w, "%s %s\n", au.Bold("Run"), au.Cyan(runID))

	training := make([]float64, len(result.Training))
	for i, e := range result.Training {
		training[i] = e.TotalReward
	}
	if window < 1 || window > len(training) {
		window = len(training)
	}
	if window > 0 {
		final := training[len(training)-window:]
		fmt.Fprintf(w, "  training   mean return of final %d episodes: %s\n",
			window, au.Green(fmt.Sprintf("%.3f", stat.Mean(final, nil))))
	}

	if len(result.Evaluation) == 0 {
		fmt.Fprintln(w, au.Yellow("  evaluation skipped"))
		return
	}
	eval := make([]float64, len(result.Evaluation))
	for i, e := range result.Evaluation {
		eval[i] = e.TotalReward
	}
	fmt.Fprintf(w, "  evaluation mean return over %d episodes:   %s\n",
		len(eval), au.Green(fmt.Sprintf("%.3f", stat.Mean(eval, nil))))
}
