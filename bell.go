package main

import "fmt"

// Scheme identifies a correction scheme. The values double as the CLI
// subcommand names.
type Scheme string

const (
	SchemeNone       Scheme = "no_correction"
	SchemeSimple     Scheme = "simple"
	SchemeRepetition Scheme = "repetition_simple"
	SchemeShor       Scheme = "shor"
)

// Schemes lists all correction schemes.
var Schemes = []Scheme{SchemeNone, SchemeSimple, SchemeRepetition, SchemeShor}

// ParseScheme parses a correction scheme name.
func ParseScheme(name string) (Scheme, error) {
	for _, s := range Schemes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown correction scheme %q", name)
}

// AncillasFor returns the per-group ancilla count a scheme requires.
func AncillasFor(s Scheme) int {
	switch s {
	case SchemeSimple:
		return 1
	case SchemeRepetition:
		return 2
	case SchemeShor:
		return 8
	default:
		return 0
	}
}

// schemeSpec drives the shared assembly pipeline: the gate sequences
// differ per scheme, the skeleton does not.
type schemeSpec struct {
	ancillas int
	prepare  func(b *BellCircuit) error            // pre-injection encoding, nil if none
	correct  func(b *BellCircuit, group int) error // per-group correction gadget, nil if none
}

var schemeSpecs = map[Scheme]schemeSpec{
	SchemeNone: {},
	SchemeSimple: {
		ancillas: 1,
		correct: func(b *BellCircuit, group int) error {
			// Qubit 1 sits in |+> after preparation and qubit 2 in |0>,
			// so each side gets the correction matching its basis.
			var err error
			if group == 1 {
				_, err = b.AddPlusPhaseFlipCorrection(group, true)
			} else {
				_, err = b.AddZeroBitFlipCorrection(group, true)
			}
			return err
		},
	},
	SchemeRepetition: {
		ancillas: 2,
		correct: func(b *BellCircuit, group int) error {
			var err error
			if group == 1 {
				_, err = b.AddRepetitionPhaseFlipCorrection(group, true)
			} else {
				_, err = b.AddRepetitionBitFlipCorrection(group, true)
			}
			return err
		},
	},
	SchemeShor: {
		ancillas: 8,
		prepare: func(b *BellCircuit) error {
			for group := 1; group <= 2; group++ {
				if err := b.prepareShorRepetition(group); err != nil {
					return err
				}
			}
			return nil
		},
		correct: (*BellCircuit).addShorCorrection,
	},
}

// BellCircuit assembles the circuit preparing the Bell state
// (|00> + |11>)/sqrt(2), with room for errors before the entangling gate
// and a correction scheme trying to undo them.
type BellCircuit struct {
	reg     *Register
	circuit *Circuit
}

// NewBellCircuit allocates the register and an empty circuit.
func NewBellCircuit(nAncGroup1, nAncGroup2 int) *BellCircuit {
	reg := NewRegister(nAncGroup1, nAncGroup2)
	return &BellCircuit{reg: reg, circuit: NewCircuit(reg.NumQubits())}
}

// Circuit returns the builder's current circuit snapshot.
func (b *BellCircuit) Circuit() *Circuit {
	return b.circuit
}

// Register returns the underlying register layout.
func (b *BellCircuit) Register() *Register {
	return b.reg
}

// Build assembles the full circuit for a scheme:
//
//	prepare superposition → (shor) encode → inject errors →
//	correct per group → entangle → measure
//
// with a barrier after every stage so diagram columns stay distinct and
// no stage reorders across another.
func (b *BellCircuit) Build(scheme Scheme, inj Injector) error {
	spec, ok := schemeSpecs[scheme]
	if !ok {
		return fmt.Errorf("unknown correction scheme %q", scheme)
	}
	for group := 1; group <= 2; group++ {
		if err := b.requireAncillas(group, spec.ancillas); err != nil {
			return err
		}
	}

	q1, _ := b.reg.Primary(1)
	q2, _ := b.reg.Primary(2)

	b.circuit.AddGate("H", q1)
	b.circuit.AddBarrier()

	if spec.prepare != nil {
		if err := spec.prepare(b); err != nil {
			return err
		}
	}

	if err := inj.Inject(b.circuit, b.reg); err != nil {
		return err
	}
	b.circuit.AddBarrier()

	if spec.correct != nil {
		for group := 1; group <= 2; group++ {
			if err := spec.correct(b, group); err != nil {
				return err
			}
			b.circuit.AddBarrier()
		}
	}

	b.circuit.AddControlled("CX", q1, q2)
	b.circuit.AddBarrier()

	_, err := b.AddMeasurement(true)
	return err
}

// AddMeasurement applies the measurement step: a disentangling CX and a
// Hadamard rotate the Bell state so the error-free outcome reads "00" on
// both classical bits.
func (b *BellCircuit) AddMeasurement(inPlace bool) (*Circuit, error) {
	q1, _ := b.reg.Primary(1)
	q2, _ := b.reg.Primary(2)

	c := b.circuit.Clone()
	c.AddControlled("CX", q1, q2)
	c.AddGate("H", q1)
	if err := c.AddMeasurementPair(q1, q2); err != nil {
		return nil, err
	}

	if inPlace {
		b.circuit = c
	}
	return c, nil
}
