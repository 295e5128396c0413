package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/policy"
	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

// chain is a domain which moves one cell right on every action and
// terminates after length steps. A negative length never terminates.
type chain struct {
	position, length int
}

func (c *chain) Emit() timestep.Observation {
	state := []float64{float64(c.position)}
	if c.IsTerminal() {
		return timestep.Terminal(state)
	}
	return timestep.Full(state, []int{0, 1})
}

func (c *chain) Step(a int) timestep.Transition {
	from := c.Emit()
	c.position++
	to := c.Emit()
	return timestep.Transition{
		From:   from,
		Action: a,
		Reward: c.Reward(from, to),
		To:     to,
	}
}

func (c *chain) Reward(_, _ timestep.Observation) float64 { return 1 }
func (c *chain) IsTerminal() bool { return c.position == c.length }

func (c *chain) StateSpace() spaces.Space {
	d, _ := spaces.NewContinuous(0, float64(c.length))
	return spaces.NewUnitary(d)
}

func (c *chain) ActionSpace() spaces.Space {
	a, _ := spaces.NewActionSpace(2)
	return a
}

func chainFactory(length int, created *int) domain.Factory {
	return func() domain.Domain {
		if created != nil {
			*created++
		}
		return &chain{length: length}
	}
}

// recorder is a ControlAgent which records the calls made to it
type recorder struct {
	pis, evaluations int
	transitions      []timestep.Transition
	terminals        [][]float64
}

func (r *recorder) Pi([]float64) int       { r.pis++; return 0 }
func (r *recorder) PiTarget([]float64) int { return 0 }

func (r *recorder) EvaluatePolicy(p policy.Policy, _ []float64) int {
	r.evaluations++
	return p.Sample(nil, []float64{0, 1})
}

func (r *recorder) HandleTransition(t timestep.Transition) {
	r.transitions = append(r.transitions, t)
}

func (r *recorder) HandleTerminal(s []float64) {
	r.terminals = append(r.terminals, s)
}

func TestSerialExperimentStepLimit(t *testing.T) {
	r := &recorder{}
	s, err := NewSerialExperiment(r, chainFactory(100, nil), 10)
	require.NoError(t, err)

	e := s.Next()
	assert.Equal(t, Episode{NSteps: 10, TotalReward: 10}, e)
	assert.Len(t, r.transitions, 10)
	assert.Equal(t, 10, r.pis)

	// The cut off episode still ends with HandleTerminal
	require.Len(t, r.terminals, 1)
	assert.Equal(t, []float64{10}, r.terminals[0])
	assert.False(t, r.transitions[9].Terminal())
}

func TestSerialExperimentTerminal(t *testing.T) {
	r := &recorder{}
	created := 0
	s, err := NewSerialExperiment(r, chainFactory(3, &created), 10)
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		assert.Equal(t, Episode{NSteps: 3, TotalReward: 3}, s.Next())
		assert.Equal(t, i, created)
		assert.Len(t, r.terminals, i)
	}
	assert.True(t, r.transitions[2].Terminal())
	assert.Equal(t, []float64{3}, r.terminals[1])
}

func TestSerialExperimentTerminalStart(t *testing.T) {
	r := &recorder{}
	s, err := NewSerialExperiment(r, chainFactory(0, nil), 10)
	require.NoError(t, err)

	assert.Equal(t, Episode{}, s.Next())
	assert.Empty(t, r.transitions)
	assert.Len(t, r.terminals, 1)
}

func TestEvaluation(t *testing.T) {
	r := &recorder{}
	ev, err := NewEvaluation(r, chainFactory(5, nil), 0)
	require.NoError(t, err)

	assert.Equal(t, Episode{NSteps: 5, TotalReward: 5}, ev.Next())
	assert.Equal(t, 5, r.evaluations)
	assert.Empty(t, r.transitions)
	assert.Empty(t, r.terminals)
	assert.Zero(t, r.pis)
}

func TestEvaluationStepCap(t *testing.T) {
	ev, err := NewEvaluation(&recorder{}, chainFactory(-1, nil), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), ev.Next().NSteps)
}

type episodeLog struct {
	indices  []int
	episodes []Episode
}

func (l *episodeLog) LogEpisode(i int, e Episode) {
	l.indices = append(l.indices, i)
	l.episodes = append(l.episodes, e)
}

func TestRun(t *testing.T) {
	s, err := NewSerialExperiment(&recorder{}, chainFactory(4, nil), 10)
	require.NoError(t, err)

	first, second := &episodeLog{}, &episodeLog{}
	episodes := Run(s, 3, Loggers(first, second), false)
	require.Len(t, episodes, 3)
	for _, l := range []*episodeLog{first, second} {
		assert.Equal(t, []int{0, 1, 2}, l.indices)
		assert.Equal(t, episodes, l.episodes)
	}

	// A nil logger is allowed
	assert.Len(t, Run(s, 2, nil, false), 2)
}

func TestConstructionErrors(t *testing.T) {
	_, err := NewSerialExperiment(nil, chainFactory(1, nil), 1)
	assert.Error(t, err)
	_, err = NewSerialExperiment(&recorder{}, nil, 1)
	assert.Error(t, err)
	_, err = NewSerialExperiment(&recorder{}, chainFactory(1, nil), 0)
	assert.Error(t, err)

	_, err = NewEvaluation(nil, chainFactory(1, nil), 0)
	assert.Error(t, err)
	_, err = NewEvaluation(&recorder{}, nil, 0)
	assert.Error(t, err)
}
