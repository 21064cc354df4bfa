package main

import (
	"fmt"
	"math"
	"math/cmplx"
)

type Complex = complex128

// StateVector holds the full amplitude vector of an n-qubit register,
// indexed so that bit q of a basis state is qubit q's value.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector initializes all qubits to |0>.
func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Apply applies one circuit gate to the state. Barriers, measurements and
// symbolic error markers have no amplitude effect and are skipped.
func (s *StateVector) Apply(g Gate) error {
	switch g.Type {
	case "H":
		s.applyH(g.Target)
	case "X":
		s.applyX(g.Target)
	case "Y":
		s.applyY(g.Target)
	case "Z":
		s.applyZ(g.Target)
	case "CX":
		s.applyCX(g.Control, g.Target)
	case "CCX":
		s.applyCCX(g.Controls[0], g.Controls[1], g.Target)
	case "BARRIER", "MEASURE", "ERR":
	default:
		return fmt.Errorf("cannot simulate gate type %q", g.Type)
	}
	return nil
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			newAmps[i] = hFactor * (s.Amplitudes[i] + s.Amplitudes[j])
			newAmps[j] = hFactor * (s.Amplitudes[i] - s.Amplitudes[j])
		}
	}
	s.Amplitudes = newAmps
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = -1i*s.Amplitudes[j], 1i*s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyZ(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= -1
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCCX(control1, control2, target int) {
	n := len(s.Amplitudes)
	c1Bit := 1 << control1
	c2Bit := 1 << control2
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&c1Bit != 0 && i&c2Bit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// MarginalProbabilities returns the outcome distribution over the listed
// qubits, with qubits[k] contributing bit k of the outcome index. The
// remaining qubits are traced out.
func (s *StateVector) MarginalProbabilities(qubits []int) []float64 {
	probs := make([]float64, 1<<len(qubits))
	for i, amp := range s.Amplitudes {
		p := real(amp * cmplx.Conj(amp))
		if p == 0 {
			continue
		}
		outcome := 0
		for k, q := range qubits {
			if i&(1<<q) != 0 {
				outcome |= 1 << k
			}
		}
		probs[outcome] += p
	}
	return probs
}

// probEpsilon is the floor below which a marginal probability is treated
// as floating-point residue of a deterministic outcome.
const probEpsilon = 1e-9

// clampProbabilities zeroes residue terms and renormalizes, so circuits
// with a deterministic outcome sample it with certainty.
func clampProbabilities(probs []float64) {
	total := 0.0
	for i, p := range probs {
		if p < probEpsilon {
			probs[i] = 0
			continue
		}
		total += p
	}
	if total == 0 {
		return
	}
	for i := range probs {
		probs[i] /= total
	}
}

// SimulateCircuit runs every gate of the circuit over a fresh state.
// Gates are applied in insertion order: the step packer keeps gates
// sharing a qubit in order, and concurrent gates on disjoint qubits
// commute.
func SimulateCircuit(c *Circuit) (*StateVector, error) {
	state := NewStateVector(max(c.NumQubits, 1))
	for _, g := range c.Gates {
		if err := state.Apply(g); err != nil {
			return nil, err
		}
	}
	return state, nil
}
