package main

import "fmt"

// GateKind is a single-qubit error gate.
type GateKind string

const (
	GateIdentity  GateKind = "i"
	GateBitFlip   GateKind = "x"
	GatePhaseFlip GateKind = "z"
)

// GateKinds lists the error gates in their fixed enumeration order.
var GateKinds = []GateKind{GateIdentity, GateBitFlip, GatePhaseFlip}

// ParseGateKind parses an error gate name.
func ParseGateKind(s string) (GateKind, error) {
	switch GateKind(s) {
	case GateIdentity, GateBitFlip, GatePhaseFlip:
		return GateKind(s), nil
	}
	return "", fmt.Errorf("unknown error gate %q (want i, x or z)", s)
}

// ErrorDescriptor addresses one injected error inside a qubit group.
// Index 0 targets the group's primary qubit, index k>0 its k-th ancilla.
type ErrorDescriptor struct {
	Group int
	Index int
	Gate  GateKind
}

// Validate checks the descriptor against a register allocation.
func (e ErrorDescriptor) Validate(reg *Register) error {
	if e.Group != 1 && e.Group != 2 {
		return fmt.Errorf("%w: %d is not a valid group for an error, want 1 or 2", ErrInvalidGroup, e.Group)
	}
	if n := reg.AncillaCount(e.Group); e.Index < 0 || e.Index > n {
		return fmt.Errorf("%w: group %d has %d ancillas, so %d is out of index for applying the error",
			ErrAncillaIndex, e.Group, n, e.Index)
	}
	return nil
}

// ErrorPair carries one error per qubit group, group 1 first.
type ErrorPair [2]ErrorDescriptor

// Key returns the canonical string under which this configuration's
// counts are aggregated: "[(index, gate), (index, gate)]".
func (p ErrorPair) Key() string {
	return fmt.Sprintf("[(%d, %s), (%d, %s)]", p[0].Index, p[0].Gate, p[1].Index, p[1].Gate)
}

// Injector places the error-injection stage into a circuit. Two variants
// exist: symbolic markers for diagrams and concrete Pauli gates for
// execution.
type Injector interface {
	Inject(c *Circuit, reg *Register) error
}

// SymbolicInjector inserts a labelled zero-effect marker per group,
// spanning the primary and its ancillas. Used only for circuit diagrams.
type SymbolicInjector struct{}

func (SymbolicInjector) Inject(c *Circuit, reg *Register) error {
	for group := 1; group <= 2; group++ {
		p, err := reg.Primary(group)
		if err != nil {
			return err
		}
		span := make([]int, 0, reg.AncillaCount(group))
		for k := 1; k <= reg.AncillaCount(group); k++ {
			a, err := reg.Ancilla(group, k)
			if err != nil {
				return err
			}
			span = append(span, a)
		}
		c.AddSymbolicError(fmt.Sprintf("err_%d", group), p, span)
	}
	return nil
}

// PauliInjector applies the concrete gates of an ErrorPair to the
// physical elements its descriptors resolve to. Identity emits nothing.
type PauliInjector struct {
	Errors ErrorPair
}

func (in PauliInjector) Inject(c *Circuit, reg *Register) error {
	for _, e := range in.Errors {
		if err := e.Validate(reg); err != nil {
			return err
		}
		if e.Gate == GateIdentity {
			continue
		}
		q, err := reg.Element(e.Group, e.Index)
		if err != nil {
			return err
		}
		switch e.Gate {
		case GateBitFlip:
			c.AddGate("X", q)
		case GatePhaseFlip:
			c.AddGate("Z", q)
		}
	}
	return nil
}
