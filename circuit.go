package main

import (
	"fmt"
	"strings"
)

// Gate represents a single operation placed on the circuit timeline.
type Gate struct {
	Type     string // "H", "X", "Y", "Z", "CX", "CCX", "ERR", "BARRIER", "MEASURE"
	Target   int    // -1 for barriers, which span all qubits
	Control  int    // -1 if not a controlled gate
	Controls []int  // control pair for CCX
	Cbit     int    // classical bit receiving a measurement, -1 otherwise
	Label    string // marker name for symbolic error gates ("err_1", "err_2")
	Span     []int  // extra qubits covered by a symbolic error marker
	Step     int    // position in circuit timeline
}

// references reports whether the gate acts on or spans the given qubit.
func (g Gate) references(qubit int) bool {
	if g.Target == qubit || g.Control == qubit {
		return true
	}
	for _, c := range g.Controls {
		if c == qubit {
			return true
		}
	}
	for _, s := range g.Span {
		if s == qubit {
			return true
		}
	}
	return false
}

// qubitRange returns the lowest and highest qubit the gate touches.
func (g Gate) qubitRange() (lo, hi int) {
	lo, hi = g.Target, g.Target
	grow := func(q int) {
		lo, hi = min(lo, q), max(hi, q)
	}
	if g.Control >= 0 {
		grow(g.Control)
	}
	for _, c := range g.Controls {
		grow(c)
	}
	for _, s := range g.Span {
		grow(s)
	}
	return lo, hi
}

// Circuit is an ordered sequence of gates over a fixed set of qubits plus
// two classical bits. Gates are packed into the earliest timeline step
// where every involved qubit is free, and barriers establish a floor no
// later gate may be scheduled before. Circuits are value snapshots:
// Clone derives an independent copy, so a builder can explore variants
// without mutating a shared base.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int

	frontier []int // next free step per qubit
	floor    int   // step floor established by the last barrier
	measured bool
}

// NewCircuit creates an empty circuit over the given number of qubits.
func NewCircuit(numQubits int) *Circuit {
	return &Circuit{
		NumQubits: numQubits,
		frontier:  make([]int, numQubits),
	}
}

// Clone returns a deep copy sharing no state with the receiver.
func (c *Circuit) Clone() *Circuit {
	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)
	for i := range gates {
		if gates[i].Controls != nil {
			gates[i].Controls = append([]int(nil), gates[i].Controls...)
		}
		if gates[i].Span != nil {
			gates[i].Span = append([]int(nil), gates[i].Span...)
		}
	}
	frontier := make([]int, len(c.frontier))
	copy(frontier, c.frontier)
	return &Circuit{
		NumQubits: c.NumQubits,
		Gates:     gates,
		MaxSteps:  c.MaxSteps,
		frontier:  frontier,
		floor:     c.floor,
		measured:  c.measured,
	}
}

// place reserves the earliest step at or after the barrier floor where
// every listed qubit is free, and advances their frontiers past it.
func (c *Circuit) place(qubits ...int) int {
	step := c.floor
	for _, q := range qubits {
		step = max(step, c.frontier[q])
	}
	for _, q := range qubits {
		c.frontier[q] = step + 1
	}
	if step >= c.MaxSteps {
		c.MaxSteps = step + 1
	}
	return step
}

// AddGate appends a single-qubit gate.
func (c *Circuit) AddGate(gateType string, target int) {
	step := c.place(target)
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: -1, Cbit: -1, Step: step})
}

// AddControlled appends a two-qubit controlled gate.
func (c *Circuit) AddControlled(gateType string, control, target int) {
	step := c.place(control, target)
	c.Gates = append(c.Gates, Gate{Type: gateType, Target: target, Control: control, Cbit: -1, Step: step})
}

// AddToffoli appends a doubly-controlled NOT.
func (c *Circuit) AddToffoli(control1, control2, target int) {
	step := c.place(control1, control2, target)
	c.Gates = append(c.Gates, Gate{
		Type:     "CCX",
		Target:   target,
		Control:  -1,
		Controls: []int{control1, control2},
		Cbit:     -1,
		Step:     step,
	})
}

// AddSymbolicError appends a labelled zero-effect marker on the target
// qubit, spanning the given extra qubits. The simulator ignores it; only
// diagrams show it. The whole vertical range is reserved so overlapping
// markers land in separate columns.
func (c *Circuit) AddSymbolicError(label string, target int, span []int) {
	g := Gate{Type: "ERR", Target: target, Control: -1, Cbit: -1, Label: label, Span: span}
	lo, hi := g.qubitRange()
	qubits := make([]int, 0, hi-lo+1)
	for q := lo; q <= hi; q++ {
		qubits = append(qubits, q)
	}
	g.Step = c.place(qubits...)
	c.Gates = append(c.Gates, g)
}

// AddBarrier appends a synchronization barrier spanning all qubits. No
// later gate is scheduled at or before the barrier's step.
func (c *Circuit) AddBarrier() {
	step := c.MaxSteps
	c.Gates = append(c.Gates, Gate{Type: "BARRIER", Target: -1, Control: -1, Cbit: -1, Step: step})
	c.MaxSteps = step + 1
	c.floor = step + 1
}

// AddMeasurementPair measures the two given qubits into classical bits 0
// and 1, one per step. It may be applied only once, at the end.
func (c *Circuit) AddMeasurementPair(qubit0, qubit1 int) error {
	if c.measured {
		return fmt.Errorf("circuit already carries its measurement pair")
	}
	step := c.place(qubit0)
	c.Gates = append(c.Gates, Gate{Type: "MEASURE", Target: qubit0, Control: -1, Cbit: 0, Step: step})

	// The second measurement lands in its own column so each classical
	// bit gets a distinct landing point on the classical wire.
	step2 := max(c.floor, c.frontier[qubit1], step+1)
	c.frontier[qubit1] = step2 + 1
	if step2 >= c.MaxSteps {
		c.MaxSteps = step2 + 1
	}
	c.Gates = append(c.Gates, Gate{Type: "MEASURE", Target: qubit1, Control: -1, Cbit: 1, Step: step2})

	c.measured = true
	return nil
}

// Measured reports whether the measurement pair has been applied.
func (c *Circuit) Measured() bool {
	return c.measured
}

// MeasuredQubits returns the qubits feeding classical bits 0 and 1.
func (c *Circuit) MeasuredQubits() [NumClassicalBits]int {
	var mq [NumClassicalBits]int
	for _, g := range c.Gates {
		if g.Type == "MEASURE" && g.Cbit >= 0 && g.Cbit < NumClassicalBits {
			mq[g.Cbit] = g.Target
		}
	}
	return mq
}

// GetGateAt returns the non-barrier gate touching the given step and
// qubit, or nil.
func (c *Circuit) GetGateAt(step, qubit int) *Gate {
	for i := range c.Gates {
		g := &c.Gates[i]
		if g.Step == step && g.Type != "BARRIER" && g.references(qubit) {
			return g
		}
	}
	return nil
}

// HasBarrierAt reports whether a barrier occupies the given step.
func (c *Circuit) HasBarrierAt(step int) bool {
	for _, g := range c.Gates {
		if g.Step == step && g.Type == "BARRIER" {
			return true
		}
	}
	return false
}

// MeasureAtStep returns the (qubit, cbit) measured at the given step, or
// (-1, -1) if none.
func (c *Circuit) MeasureAtStep(step int) (qubit, cbit int) {
	for _, g := range c.Gates {
		if g.Step == step && g.Type == "MEASURE" {
			return g.Target, g.Cbit
		}
	}
	return -1, -1
}

// ToQASM exports the circuit as QASM 2.0. Symbolic error markers are not
// standard instructions and are emitted as comments.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", NumClassicalBits)

	for step := range c.MaxSteps {
		for _, g := range c.Gates {
			if g.Step != step {
				continue
			}
			switch g.Type {
			case "BARRIER":
				qubits := make([]string, c.NumQubits)
				for q := range c.NumQubits {
					qubits[q] = fmt.Sprintf("q[%d]", q)
				}
				fmt.Fprintf(&sb, "barrier %s;\n", strings.Join(qubits, ", "))
			case "ERR":
				fmt.Fprintf(&sb, "// %s q[%d]\n", g.Label, g.Target)
			case "MEASURE":
				fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Cbit)
			case "CX":
				fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Control, g.Target)
			case "CCX":
				fmt.Fprintf(&sb, "ccx q[%d], q[%d], q[%d];\n", g.Controls[0], g.Controls[1], g.Target)
			default:
				fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(g.Type), g.Target)
			}
		}
	}

	return sb.String()
}
