package main

import (
	"fmt"
	"math/rand"
)

// Backend executes a fully assembled circuit for a number of shots and
// returns measurement-outcome frequencies summing to the shot count. The
// orchestrator treats it as an opaque executor; failures propagate
// unmodified.
type Backend interface {
	Run(c *Circuit, shots int) (Counts, error)
}

// StatevectorBackend simulates the circuit exactly and samples the two
// classical bits from the marginal distribution of the measured qubits.
// Outcome strings read classical bit 1 first, then bit 0.
type StatevectorBackend struct {
	rng *rand.Rand
}

// NewStatevectorBackend creates a backend with its own seeded generator,
// so repeated runs with the same seed reproduce identical counts.
func NewStatevectorBackend(seed int64) *StatevectorBackend {
	return &StatevectorBackend{rng: rand.New(rand.NewSource(seed))}
}

func (b *StatevectorBackend) Run(c *Circuit, shots int) (Counts, error) {
	if !c.Measured() {
		return nil, fmt.Errorf("circuit carries no measurement pair")
	}
	state, err := SimulateCircuit(c)
	if err != nil {
		return nil, err
	}

	mq := c.MeasuredQubits()
	probs := state.MarginalProbabilities(mq[:])
	clampProbabilities(probs)

	counts := Counts{}
	for range shots {
		u := b.rng.Float64()
		acc := 0.0
		outcome := len(probs) - 1
		for i, p := range probs {
			acc += p
			if u < acc {
				outcome = i
				break
			}
		}
		counts[outcomeBits(outcome)]++
	}
	return counts, nil
}

// outcomeBits renders a sampled outcome index as "<c1><c0>".
func outcomeBits(outcome int) string {
	return fmt.Sprintf("%d%d", (outcome>>1)&1, outcome&1)
}
