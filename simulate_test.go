package main

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func newTestSimulator(scheme Scheme) *Simulator {
	return NewSimulator(scheme, NewStatevectorBackend(42))
}

func pairOf(idx1 int, gate1 GateKind, idx2 int, gate2 GateKind) ErrorPair {
	return ErrorPair{
		{Group: 1, Index: idx1, Gate: gate1},
		{Group: 2, Index: idx2, Gate: gate2},
	}
}

// expectOutcome runs one error configuration and asserts every shot lands
// on the given outcome. The marginal distributions are deterministic, so
// exact counts are safe to assert.
func expectOutcome(t *testing.T, scheme Scheme, pair ErrorPair, want string) {
	t.Helper()
	sim := newTestSimulator(scheme)
	counts, _, err := sim.RunOne(pair)
	if err != nil {
		t.Fatalf("RunOne(%v): %v", pair, err)
	}
	if len(counts) != 1 || counts[want] != sim.Shots {
		t.Errorf("counts = %v, want {%s: %d}", counts, want, sim.Shots)
	}
}

func TestNoErrorYieldsZeroZero(t *testing.T) {
	for _, scheme := range Schemes {
		t.Run(string(scheme), func(t *testing.T) {
			expectOutcome(t, scheme, pairOf(0, GateIdentity, 0, GateIdentity), "00")
		})
	}
}

func TestNoCorrectionOutcomes(t *testing.T) {
	tests := []struct {
		name string
		pair ErrorPair
		want string
	}{
		// Qubit 1 sits in |+> at injection time, so only a phase flip
		// disturbs it; qubit 2 sits in |0>, so only a bit flip does.
		{"phase flip on qubit 1", pairOf(0, GatePhaseFlip, 0, GateIdentity), "01"},
		{"bit flip on qubit 2", pairOf(0, GateIdentity, 0, GateBitFlip), "10"},
		{"both observable errors", pairOf(0, GatePhaseFlip, 0, GateBitFlip), "11"},
		{"bit flip on qubit 1 is invisible", pairOf(0, GateBitFlip, 0, GateIdentity), "00"},
		{"phase flip on qubit 2 is invisible", pairOf(0, GateIdentity, 0, GatePhaseFlip), "00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectOutcome(t, SchemeNone, tt.pair, tt.want)
		})
	}
}

func TestSimpleSchemeCorrects(t *testing.T) {
	tests := []struct {
		name string
		pair ErrorPair
	}{
		{"phase flip on qubit 1", pairOf(0, GatePhaseFlip, 0, GateIdentity)},
		{"bit flip on qubit 2", pairOf(0, GateIdentity, 0, GateBitFlip)},
		{"both at once", pairOf(0, GatePhaseFlip, 0, GateBitFlip)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectOutcome(t, SchemeSimple, tt.pair, "00")
		})
	}
}

func TestRepetitionSchemeCorrects(t *testing.T) {
	tests := []struct {
		name string
		pair ErrorPair
	}{
		{"phase flip on primary 1", pairOf(0, GatePhaseFlip, 0, GateIdentity)},
		{"bit flip on primary 2", pairOf(0, GateIdentity, 0, GateBitFlip)},
		{"bit flip on first ancilla of group 2", pairOf(0, GateIdentity, 1, GateBitFlip)},
		{"bit flip on second ancilla of group 2", pairOf(0, GateIdentity, 2, GateBitFlip)},
		{"bit flip on ancilla of group 1", pairOf(1, GateBitFlip, 0, GateIdentity)},
		{"one error per group", pairOf(0, GatePhaseFlip, 2, GateBitFlip)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectOutcome(t, SchemeRepetition, tt.pair, "00")
		})
	}
}

func TestShorSchemeCorrectsEveryPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("18-qubit statevector runs")
	}
	for idx := 0; idx <= 8; idx++ {
		for _, gate := range []GateKind{GateBitFlip, GatePhaseFlip} {
			expectOutcome(t, SchemeShor, pairOf(idx, gate, 0, GateIdentity), "00")
		}
	}
	// Spot checks on the second group: one position per triplet.
	for _, idx := range []int{0, 3, 6} {
		for _, gate := range []GateKind{GateBitFlip, GatePhaseFlip} {
			expectOutcome(t, SchemeShor, pairOf(0, GateIdentity, idx, gate), "00")
		}
	}
}

func TestRunAllNoCorrection(t *testing.T) {
	sim := newTestSimulator(SchemeNone)
	counts, perError, err := sim.RunAll()
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	if len(perError) != 9 {
		t.Errorf("got %d error configurations, want 9", len(perError))
	}
	if total := counts.Total(); total != 9*sim.Shots {
		t.Errorf("Total() = %d, want %d", total, 9*sim.Shots)
	}

	// With no ancillas the outcome follows directly from the gate pair:
	// c0 flags a phase flip on qubit 1, c1 a bit flip on qubit 2.
	want := Counts{"00": 4000, "01": 2000, "10": 2000, "11": 1000}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestRunAllSimpleCollapsesAncillaIndices(t *testing.T) {
	sim := newTestSimulator(SchemeSimple)
	counts, perError, err := sim.RunAll()
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	// Ancilla indices collapse to 0, leaving the 3x3 gate combinations.
	if len(perError) != 9 {
		t.Errorf("got %d error configurations, want 9", len(perError))
	}
	for key := range perError {
		if key[2] != '0' {
			t.Errorf("canonical key %q does not collapse index to 0", key)
		}
	}
	want := Counts{"00": 9 * sim.Shots}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestRunOneReportsCanonicalKey(t *testing.T) {
	sim := newTestSimulator(SchemeSimple)
	_, key, err := sim.RunOne(pairOf(1, GateBitFlip, 1, GatePhaseFlip))
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if want := "[(0, x), (0, z)]"; key != want {
		t.Errorf("key = %q, want %q", key, want)
	}

	sim = newTestSimulator(SchemeRepetition)
	_, key, err = sim.RunOne(pairOf(2, GateBitFlip, 0, GateIdentity))
	if err != nil {
		t.Fatalf("RunOne: %v", err)
	}
	if want := "[(2, x), (0, i)]"; key != want {
		t.Errorf("key = %q, want %q", key, want)
	}
}

func TestRunOneRejectsOutOfRangeIndex(t *testing.T) {
	sim := newTestSimulator(SchemeRepetition)
	if _, _, err := sim.RunOne(pairOf(3, GateBitFlip, 0, GateIdentity)); !errors.Is(err, ErrAncillaIndex) {
		t.Errorf("RunOne error = %v, want ErrAncillaIndex", err)
	}

	sim = newTestSimulator(SchemeNone)
	if _, _, err := sim.RunOne(pairOf(1, GateBitFlip, 0, GateIdentity)); !errors.Is(err, ErrAncillaIndex) {
		t.Errorf("RunOne error = %v, want ErrAncillaIndex", err)
	}
}

func TestRunRandomIsSeedReproducible(t *testing.T) {
	run := func() (Counts, ErrorCounts) {
		sim := NewSimulator(SchemeRepetition, NewStatevectorBackend(42))
		counts, perError, err := sim.RunRandom(20, []float64{1, 2, 3}, rand.New(rand.NewSource(7)))
		if err != nil {
			t.Fatalf("RunRandom: %v", err)
		}
		return counts, perError
	}

	counts1, perError1 := run()
	counts2, perError2 := run()
	if !reflect.DeepEqual(counts1, counts2) {
		t.Errorf("counts differ across identical seeds: %v vs %v", counts1, counts2)
	}
	if !reflect.DeepEqual(perError1, perError2) {
		t.Errorf("per-error counts differ across identical seeds")
	}
	if total := counts1.Total(); total != 20*DefaultShots {
		t.Errorf("Total() = %d, want %d", total, 20*DefaultShots)
	}
}

func TestCountsString(t *testing.T) {
	c := Counts{"11": 60, "00": 940}
	if got, want := c.String(), "{00: 940, 11: 60}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
