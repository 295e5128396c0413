package qlearning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/domain/mountaincar"
	"github.com/samuelfneumann/tdcontrol/fa"
	"github.com/samuelfneumann/tdcontrol/parameter"
	"github.com/samuelfneumann/tdcontrol/projection"
	"github.com/samuelfneumann/tdcontrol/spaces"
	"github.com/samuelfneumann/tdcontrol/timestep"
)

var (
	left  = []float64{0.25}
	right = []float64{0.75}
)

func linear(t testing.TB) *fa.Linear {
	p, err := spaces.NewPartitioned(0, 1, 2)
	require.NoError(t, err)
	g, err := projection.NewUniformGrid(spaces.NewUnitary(p))
	require.NoError(t, err)
	l, err := fa.NewLinear(g, 2)
	require.NoError(t, err)
	return l
}

func transition(from []float64, a int, r float64, to []float64,
	terminal bool) timestep.Transition {
	next := timestep.Full(to, []int{0, 1})
	if terminal {
		next = timestep.Terminal(to)
	}
	return timestep.Transition{
		From:   timestep.Full(from, []int{0, 1}),
		Action: a,
		Reward: r,
		To:     next,
	}
}

func TestUpdate(t *testing.T) {
	l := linear(t)
	l.UpdateAction(right, 0, 1)
	l.UpdateAction(right, 1, 3)

	q, err := New(l, parameter.NewConstant(0.1), parameter.NewConstant(0.5),
		parameter.NewConstant(0.5), 1)
	require.NoError(t, err)

	q.HandleTransition(transition(left, 0, 1, right, false))
	assert.InDelta(t, 1.25, l.EvaluateAction(left, 0), 1e-12)

	// Terminal transitions do not bootstrap
	q.HandleTransition(transition(left, 1, 1, right, true))
	assert.InDelta(t, 0.5, l.EvaluateAction(left, 1), 1e-12)

	assert.Equal(t, 1, q.PiTarget(right))
}

func TestHandleTerminal(t *testing.T) {
	epsilon, _ := parameter.NewExponential(1, 0, 0.5)
	lr, _ := parameter.NewExponential(1, 0, 0.5)
	gamma, _ := parameter.NewExponential(1, 0, 0.5)

	q, err := New(linear(t), epsilon, lr, gamma, 1)
	require.NoError(t, err)
	q.HandleTerminal(right)

	for _, p := range []parameter.Parameter{epsilon, lr, gamma} {
		assert.Equal(t, 0.5, p.Value())
	}

	_, err = New(linear(t), nil, lr, gamma, 1)
	assert.Error(t, err)
}

func mountainCar(t testing.TB) *mountaincar.MountainCar {
	m, err := mountaincar.New(domain.FixedStarter{-0.5, 0}, 0.45)
	require.NoError(t, err)
	return m
}

func tileCodingConfig() Config {
	return Config{
		Features: projection.NewConfig(projection.TileCodingConfig{
			Tilings: 8, Memory: 4096, TilesPerDim: 8,
		}),
		Epsilon:      parameter.Fixed(0.1),
		LearningRate: parameter.Fixed(0.1 / 8),
		Gamma:        parameter.Fixed(1),
	}
}

func TestConfigCreateAgent(t *testing.T) {
	data, err := json.Marshal(agent.NewTypedConfig(tileCodingConfig()))
	require.NoError(t, err)
	var decoded agent.TypedConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, agent.QLearning, decoded.Type)

	a, err := decoded.CreateAgent(mountainCar(t), 1)
	require.NoError(t, err)
	require.IsType(t, &QLearning{}, a)
	assert.IsType(t, &fa.TileCoded{}, a.(*QLearning).QFunction())

	c := tileCodingConfig()
	c.Features = projection.NewConfig(projection.UniformGridConfig{
		Partitions: 10,
	})
	c.InitWeights = 1
	a, err = c.CreateAgent(mountainCar(t), 1)
	require.NoError(t, err)
	assert.IsType(t, &fa.Linear{}, a.(*QLearning).QFunction())
	assert.Equal(t, []float64{1, 1, 1},
		a.(*QLearning).QFunction().EvaluateAll([]float64{-0.5, 0}))

	assert.Error(t, Config{}.Validate())
}

func BenchmarkTileCodedMountainCarStep(b *testing.B) {
	a, err := tileCodingConfig().CreateAgent(mountainCar(b), 1)
	if err != nil {
		b.Fatal(err)
	}

	env := mountainCar(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obs := env.Emit()
		t := env.Step(a.Pi(obs.State))
		a.HandleTransition(t)
		if t.Terminal() {
			a.HandleTerminal(t.To.State)
			env = mountainCar(b)
		}
	}
}
