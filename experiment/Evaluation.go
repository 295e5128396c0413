package experiment

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/agent"
	"github.com/samuelfneumann/tdcontrol/domain"
	"github.com/samuelfneumann/tdcontrol/policy"
)

// Evaluation runs the greedy policy of an agent for one episode each
// time Next is called. The agent does not learn and its annealed
// parameters are not stepped.
type Evaluation struct {
	agent   agent.ControlAgent
	factory domain.Factory
	greedy  policy.Greedy

	// stepCap bounds the length of an episode. Zero means episodes
	// only end at a terminal observation.
	stepCap uint64
}

// NewEvaluation returns a new Evaluation. If stepCap is positive,
// episodes are cut off after stepCap steps, which guards against
// greedy policies that never reach a terminal state.
func NewEvaluation(a agent.ControlAgent, f domain.Factory,
	stepCap uint64) (*Evaluation, error) {
	if a == nil {
		return nil, fmt.Errorf("newEvaluation: agent cannot be nil")
	}
	if f == nil {
		return nil, fmt.Errorf("newEvaluation: factory cannot be nil")
	}
	return &Evaluation{
		agent:   a,
		factory: f,
		greedy:  policy.NewGreedy(),
		stepCap: stepCap,
	}, nil
}

// Next implements the Driver interface
func (ev *Evaluation) Next() Episode {
	d := ev.factory()
	obs := d.Emit()

	var e Episode
	for !obs.Terminal && (ev.stepCap == 0 || e.NSteps < ev.stepCap) {
		t := d.Step(ev.agent.EvaluatePolicy(ev.greedy, obs.State))
		e.NSteps++
		e.TotalReward += t.Reward
		obs = t.To
	}
	return e
}
