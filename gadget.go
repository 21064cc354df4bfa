package main

import "fmt"

// Correction gadgets. Each one appends a fixed gate sequence operating on
// a group's primary qubit and its ancillas. The exported gadgets follow
// the copy-on-write convention: they build on a snapshot of the current
// circuit and only replace the builder's circuit when inPlace is set, so
// callers can explore a variant without disturbing the base.

// requireAncillas validates the group selector and the per-group ancilla
// count a gadget needs. Failing here is a configuration error caught
// before any execution.
func (b *BellCircuit) requireAncillas(group, n int) error {
	if group != 1 && group != 2 {
		return fmt.Errorf("%w: there are only 2 qubit groups, got %d", ErrInvalidGroup, group)
	}
	if have := b.reg.AncillaCount(group); have < n {
		return fmt.Errorf("%w: correction needs %d ancillas per qubit, group %d has %d",
			ErrAncillaCount, n, group, have)
	}
	return nil
}

// AddZeroBitFlipCorrection corrects a bit flip on a primary prepared in
// |0>, using one ancilla assumed error-free:
//
//	                          ┌───┐
//	qubit  : ─────■───────────┤ X ├──
//	            ┌─┴─┐         └─┬─┘
//	anc |0>: ───┤ X ├───────────■────
//	            └───┘
func (b *BellCircuit) AddZeroBitFlipCorrection(group int, inPlace bool) (*Circuit, error) {
	if err := b.requireAncillas(group, 1); err != nil {
		return nil, err
	}
	p, _ := b.reg.Primary(group)
	a, _ := b.reg.Ancilla(group, 1)

	c := b.circuit.Clone()
	c.AddControlled("CX", p, a)
	c.AddControlled("CX", a, p)

	if inPlace {
		b.circuit = c
	}
	return c, nil
}

// AddPlusPhaseFlipCorrection corrects a phase flip on a primary prepared
// in |+>: the Hadamard-conjugated version of AddZeroBitFlipCorrection.
func (b *BellCircuit) AddPlusPhaseFlipCorrection(group int, inPlace bool) (*Circuit, error) {
	if err := b.requireAncillas(group, 1); err != nil {
		return nil, err
	}
	p, _ := b.reg.Primary(group)
	a, _ := b.reg.Ancilla(group, 1)

	c := b.circuit.Clone()
	c.AddGate("H", p)
	c.AddControlled("CX", p, a)
	c.AddControlled("CX", a, p)
	c.AddGate("H", p)

	if inPlace {
		b.circuit = c
	}
	return c, nil
}

// AddRepetitionBitFlipCorrection corrects a bit flip that may hit the
// primary or either of its two ancillas, by majority vote:
//
//	                                  ┌───┐
//	qubit  : ──────■───────■──────────┤ X ├──
//	             ┌─┴─┐     │          └─┬─┘
//	anc_1  : ────┤ X ├─────┼────────────■────
//	             └───┘   ┌─┴─┐          │
//	anc_2  : ────────────┤ X ├──────────■────
//	                     └───┘
func (b *BellCircuit) AddRepetitionBitFlipCorrection(group int, inPlace bool) (*Circuit, error) {
	if err := b.requireAncillas(group, 2); err != nil {
		return nil, err
	}
	p, _ := b.reg.Primary(group)
	a1, _ := b.reg.Ancilla(group, 1)
	a2, _ := b.reg.Ancilla(group, 2)

	c := b.circuit.Clone()
	c.AddControlled("CX", p, a1)
	c.AddControlled("CX", p, a2)
	c.AddToffoli(a1, a2, p)

	if inPlace {
		b.circuit = c
	}
	return c, nil
}

// AddRepetitionPhaseFlipCorrection is the Hadamard-conjugated repetition
// code, tolerating one phase flip on the primary or either ancilla.
func (b *BellCircuit) AddRepetitionPhaseFlipCorrection(group int, inPlace bool) (*Circuit, error) {
	if err := b.requireAncillas(group, 2); err != nil {
		return nil, err
	}
	p, _ := b.reg.Primary(group)
	a1, _ := b.reg.Ancilla(group, 1)
	a2, _ := b.reg.Ancilla(group, 2)

	c := b.circuit.Clone()
	c.AddGate("H", p)
	c.AddControlled("CX", p, a1)
	c.AddControlled("CX", p, a2)
	c.AddToffoli(a1, a2, p)
	c.AddGate("H", p)

	if inPlace {
		b.circuit = c
	}
	return c, nil
}

// shorLayout resolves the nine physical qubits of a group's Shor block:
// the primary leads the first bit-flip triplet, ancillas 3 and 6 lead the
// other two, and the remaining ancillas fill the triplets.
type shorLayout struct {
	p                  int // primary, leads triplet 0 and the phase code
	b1, b2             int // block leaders (ancillas 3 and 6)
	i1, i2, i3, i4, i5 int
	i6                 int // inner triplet members (ancillas 1,2,4,5,7,8)
}

func (b *BellCircuit) shorQubits(group int) (shorLayout, error) {
	var l shorLayout
	if err := b.requireAncillas(group, 8); err != nil {
		return l, err
	}
	l.p, _ = b.reg.Primary(group)
	anc := func(k int) int {
		q, _ := b.reg.Ancilla(group, k)
		return q
	}
	l.i1, l.i2, l.b1 = anc(1), anc(2), anc(3)
	l.i3, l.i4, l.b2 = anc(4), anc(5), anc(6)
	l.i5, l.i6 = anc(7), anc(8)
	return l, nil
}

// prepareShorRepetition entangles a group into the nine-qubit Shor code:
// an outer phase-flip repetition over {primary, block1, block2} followed
// by an inner bit-flip repetition within each triplet.
func (b *BellCircuit) prepareShorRepetition(group int) error {
	l, err := b.shorQubits(group)
	if err != nil {
		return err
	}
	c := b.circuit

	// Outer repetition for phase flips.
	c.AddControlled("CX", l.p, l.b1)
	c.AddControlled("CX", l.p, l.b2)
	c.AddGate("H", l.p)
	c.AddGate("H", l.b1)
	c.AddGate("H", l.b2)
	c.AddBarrier()

	// Inner repetition for bit flips, one triplet per block.
	c.AddControlled("CX", l.p, l.i1)
	c.AddControlled("CX", l.p, l.i2)
	c.AddControlled("CX", l.b1, l.i3)
	c.AddControlled("CX", l.b1, l.i4)
	c.AddControlled("CX", l.b2, l.i5)
	c.AddControlled("CX", l.b2, l.i6)
	c.AddBarrier()

	return nil
}

// addShorCorrection reverses the Shor encoding with majority votes: first
// a bit-flip vote inside each triplet, then a phase-flip vote across the
// three blocks.
func (b *BellCircuit) addShorCorrection(group int) error {
	l, err := b.shorQubits(group)
	if err != nil {
		return err
	}
	c := b.circuit

	// Bit-flip syndrome per triplet.
	c.AddControlled("CX", l.p, l.i1)
	c.AddControlled("CX", l.p, l.i2)
	c.AddControlled("CX", l.b1, l.i3)
	c.AddControlled("CX", l.b1, l.i4)
	c.AddControlled("CX", l.b2, l.i5)
	c.AddControlled("CX", l.b2, l.i6)
	c.AddBarrier()

	c.AddToffoli(l.i1, l.i2, l.p)
	c.AddToffoli(l.i3, l.i4, l.b1)
	c.AddToffoli(l.i5, l.i6, l.b2)
	c.AddBarrier()

	// Phase-flip syndrome across blocks.
	c.AddGate("H", l.p)
	c.AddGate("H", l.b1)
	c.AddGate("H", l.b2)
	c.AddControlled("CX", l.p, l.b1)
	c.AddControlled("CX", l.p, l.b2)
	c.AddBarrier()

	// The builder closes the stage with its own barrier.
	c.AddToffoli(l.b1, l.b2, l.p)

	return nil
}
