package main

import (
	"errors"
	"fmt"
)

// Configuration errors raised while laying out or addressing the register.
// They are programming/usage errors and always abort the run.
var (
	ErrInvalidGroup = errors.New("invalid qubit group")
	ErrAncillaCount = errors.New("insufficient ancillas")
	ErrAncillaIndex = errors.New("ancilla index out of range")
)

const (
	// NumPrimaries is the number of qubits taking part in the Bell state.
	NumPrimaries = 2
	// NumClassicalBits receives the final measurement of the primaries.
	NumClassicalBits = 2
)

// Register lays the two qubit groups out on a flat qubit index space:
// the primaries occupy indices 0 and 1, followed by group 1's ancillas
// and then group 2's. Both groups carry the same ancilla count; passing
// zero for either group disables ancillas for both (asymmetric layouts
// are not supported).
type Register struct {
	anc [2]int
}

// NewRegister allocates a register with the requested ancilla counts.
func NewRegister(nAncGroup1, nAncGroup2 int) *Register {
	if nAncGroup1 == 0 || nAncGroup2 == 0 {
		return &Register{}
	}
	return &Register{anc: [2]int{nAncGroup1, nAncGroup2}}
}

// NumQubits returns the total number of physical qubits.
func (r *Register) NumQubits() int {
	return NumPrimaries + r.anc[0] + r.anc[1]
}

// AncillaCount returns the number of ancillas allocated to a group.
// Invalid groups report zero; callers that care validate separately.
func (r *Register) AncillaCount(group int) int {
	if group != 1 && group != 2 {
		return 0
	}
	return r.anc[group-1]
}

// Primary returns the flat index of a group's primary qubit.
func (r *Register) Primary(group int) (int, error) {
	if group != 1 && group != 2 {
		return 0, fmt.Errorf("%w: there are only 2 qubit groups, got %d", ErrInvalidGroup, group)
	}
	return group - 1, nil
}

// Ancilla returns the flat index of the k-th (1-based) ancilla of a group.
func (r *Register) Ancilla(group, k int) (int, error) {
	if group != 1 && group != 2 {
		return 0, fmt.Errorf("%w: there are only 2 qubit groups, got %d", ErrInvalidGroup, group)
	}
	if k < 1 || k > r.anc[group-1] {
		return 0, fmt.Errorf("%w: group %d has %d ancillas, got index %d",
			ErrAncillaIndex, group, r.anc[group-1], k)
	}
	base := NumPrimaries
	if group == 2 {
		base += r.anc[0]
	}
	return base + k - 1, nil
}

// Element resolves the (group, index) addressing used by error
// descriptors: index 0 is the group's primary qubit, index k>0 its k-th
// ancilla.
func (r *Register) Element(group, index int) (int, error) {
	if index == 0 {
		return r.Primary(group)
	}
	return r.Ancilla(group, index)
}

// Label names a flat qubit index for diagrams: "q1", "q2" for the
// primaries, "a1.3" for the third ancilla of group 1.
func (r *Register) Label(q int) string {
	if q < NumPrimaries {
		return fmt.Sprintf("q%d", q+1)
	}
	if q < NumPrimaries+r.anc[0] {
		return fmt.Sprintf("a1.%d", q-NumPrimaries+1)
	}
	return fmt.Sprintf("a2.%d", q-NumPrimaries-r.anc[0]+1)
}
