package main

import (
	"strings"
	"testing"
)

func TestPadCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"H", 5, "  H  "},
		{"CX", 5, " CX  "},
		{"err_1", 5, "err_1"},
		{"toolong", 5, "toolo"},
	}
	for _, tt := range tests {
		if got := padCenter(tt.input, tt.width); got != tt.want {
			t.Errorf("padCenter(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestGateDisplayName(t *testing.T) {
	tests := []struct {
		gate Gate
		want string
	}{
		{Gate{Type: "H"}, "H"},
		{Gate{Type: "MEASURE"}, "M"},
		{Gate{Type: "ERR", Label: "err_2"}, "err_2"},
	}
	for _, tt := range tests {
		if got := gateDisplayName(&tt.gate); got != tt.want {
			t.Errorf("gateDisplayName(%s) = %q, want %q", tt.gate.Type, got, tt.want)
		}
	}
}

func TestDrawCircuit(t *testing.T) {
	sim := &Simulator{Scheme: SchemeSimple}
	c, reg, err := sim.SymbolicCircuit()
	if err != nil {
		t.Fatalf("SymbolicCircuit: %v", err)
	}

	out := DrawCircuit(c, reg)
	for _, want := range []string{"q1", "q2", "a1.1", "a2.1", "err_1", "err_2", "●", "⊕", "╩0", "╩1"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagram missing %q:\n%s", want, out)
		}
	}

	// One header line plus three lines per qubit plus two classical lines.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if want := 1 + 3*c.NumQubits + 2; len(lines) != want {
		t.Errorf("diagram has %d lines, want %d", len(lines), want)
	}
}

func TestDrawBarChart(t *testing.T) {
	out := DrawBarChart(Counts{"00": 940, "11": 60}, 40)

	for _, want := range []string{"00", "11", "940", "60", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
	// Sorted keys: the 00 line comes first.
	if strings.Index(out, "00") > strings.Index(out, "11") {
		t.Error("chart lines not sorted by outcome")
	}

	if out := DrawBarChart(Counts{}, 40); !strings.Contains(out, "no counts") {
		t.Errorf("empty chart = %q", out)
	}
}
