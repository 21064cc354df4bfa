package main

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// DefaultShots is the per-configuration shot count.
const DefaultShots = 1000

// Counts maps a 2-bit outcome string to its occurrence count.
type Counts map[string]int

// Merge adds other's counts into c.
func (c Counts) Merge(other Counts) {
	for key, n := range other {
		c[key] += n
	}
}

// Total returns the sum over all outcomes.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// String formats the counts with sorted outcome keys: {00: 940, 11: 60}.
func (c Counts) String() string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", key, c[key])
	}
	sb.WriteByte('}')
	return sb.String()
}

// ErrorCounts maps canonical error keys to their own outcome counts.
type ErrorCounts map[string]Counts

// Simulator drives error configurations through the circuit builder and
// a backend, one configuration at a time. No configuration is retried; a
// failure aborts the whole batch.
type Simulator struct {
	Scheme  Scheme
	Backend Backend
	Shots   int
}

// NewSimulator creates a simulator running DefaultShots per configuration.
func NewSimulator(scheme Scheme, backend Backend) *Simulator {
	return &Simulator{Scheme: scheme, Backend: backend, Shots: DefaultShots}
}

// SymbolicCircuit assembles the scheme's circuit with symbolic error
// markers, for diagrams only.
func (s *Simulator) SymbolicCircuit() (*Circuit, *Register, error) {
	n := AncillasFor(s.Scheme)
	b := NewBellCircuit(n, n)
	if err := b.Build(s.Scheme, SymbolicInjector{}); err != nil {
		return nil, nil, err
	}
	return b.Circuit(), b.Register(), nil
}

// canonical normalizes an error pair for this scheme. The simple scheme
// structurally confines errors to the primary qubits, so ancilla indices
// collapse to 0 and the canonical key reports (0, gate) for both sides.
func (s *Simulator) canonical(pair ErrorPair) ErrorPair {
	if s.Scheme == SchemeSimple {
		pair[0].Index = 0
		pair[1].Index = 0
	}
	pair[0].Group = 1
	pair[1].Group = 2
	return pair
}

// RunOne builds the circuit with one concrete error pair, executes it,
// and returns its counts plus the canonical error key.
func (s *Simulator) RunOne(pair ErrorPair) (Counts, string, error) {
	pair = s.canonical(pair)
	key := pair.Key()

	n := AncillasFor(s.Scheme)
	b := NewBellCircuit(n, n)
	if err := b.Build(s.Scheme, PauliInjector{Errors: pair}); err != nil {
		return nil, "", err
	}

	counts, err := s.Backend.Run(b.Circuit(), s.Shots)
	if err != nil {
		return nil, "", err
	}
	return counts, key, nil
}

// RunAll exhaustively enumerates every error configuration in a fixed
// order (indices ascending, gates in i, x, z order) and runs each
// canonical configuration exactly once: configurations collapsing to an
// already-seen canonical key are skipped, not re-run.
func (s *Simulator) RunAll() (Counts, ErrorCounts, error) {
	n := AncillasFor(s.Scheme)
	all := Counts{}
	perError := ErrorCounts{}

	for idx1 := 0; idx1 <= n; idx1++ {
		for idx2 := 0; idx2 <= n; idx2++ {
			for _, gate1 := range GateKinds {
				for _, gate2 := range GateKinds {
					pair := ErrorPair{
						{Group: 1, Index: idx1, Gate: gate1},
						{Group: 2, Index: idx2, Gate: gate2},
					}
					if _, seen := perError[s.canonical(pair).Key()]; seen {
						continue
					}
					counts, key, err := s.RunOne(pair)
					if err != nil {
						return nil, nil, err
					}
					all.Merge(counts)
					perError[key] = counts
				}
			}
		}
	}
	return all, perError, nil
}

// RunRandom samples the requested number of error configurations from
// the caller's generator, drawing each group's index uniformly and its
// gate by weighted choice (equal weights when nil), and aggregates runs
// landing on the same canonical key.
func (s *Simulator) RunRandom(iterations int, weights []float64, rng *rand.Rand) (Counts, ErrorCounts, error) {
	n := AncillasFor(s.Scheme)
	all := Counts{}
	perError := ErrorCounts{}

	for range iterations {
		idx1 := rng.Intn(n + 1)
		idx2 := rng.Intn(n + 1)
		gate1 := pickGate(rng, weights)
		gate2 := pickGate(rng, weights)

		pair := ErrorPair{
			{Group: 1, Index: idx1, Gate: gate1},
			{Group: 2, Index: idx2, Gate: gate2},
		}
		counts, key, err := s.RunOne(pair)
		if err != nil {
			return nil, nil, err
		}

		all.Merge(counts)
		if existing, ok := perError[key]; ok {
			existing.Merge(counts)
		} else {
			perError[key] = counts
		}
	}
	return all, perError, nil
}

// pickGate draws a gate kind by cumulative weight over the fixed
// i, x, z order.
func pickGate(rng *rand.Rand, weights []float64) GateKind {
	if weights == nil {
		return GateKinds[rng.Intn(len(GateKinds))]
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	u := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return GateKinds[i]
		}
	}
	return GateKinds[len(GateKinds)-1]
}
