package main

import (
	"errors"
	"testing"
)

func TestRegisterLayout(t *testing.T) {
	reg := NewRegister(2, 2)

	if got := reg.NumQubits(); got != 6 {
		t.Errorf("NumQubits() = %d, want 6", got)
	}

	tests := []struct {
		name  string
		group int
		index int
		want  int
	}{
		{"primary group 1", 1, 0, 0},
		{"primary group 2", 2, 0, 1},
		{"first ancilla group 1", 1, 1, 2},
		{"second ancilla group 1", 1, 2, 3},
		{"first ancilla group 2", 2, 1, 4},
		{"second ancilla group 2", 2, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Element(tt.group, tt.index)
			if err != nil {
				t.Fatalf("Element(%d, %d) error: %v", tt.group, tt.index, err)
			}
			if got != tt.want {
				t.Errorf("Element(%d, %d) = %d, want %d", tt.group, tt.index, got, tt.want)
			}
		})
	}
}

func TestRegisterZeroAncillas(t *testing.T) {
	reg := NewRegister(0, 0)
	if got := reg.NumQubits(); got != 2 {
		t.Errorf("NumQubits() = %d, want 2", got)
	}
	if _, err := reg.Ancilla(1, 1); !errors.Is(err, ErrAncillaIndex) {
		t.Errorf("Ancilla(1, 1) error = %v, want ErrAncillaIndex", err)
	}
}

func TestRegisterBadAddresses(t *testing.T) {
	reg := NewRegister(2, 2)

	if _, err := reg.Primary(3); !errors.Is(err, ErrInvalidGroup) {
		t.Errorf("Primary(3) error = %v, want ErrInvalidGroup", err)
	}
	if _, err := reg.Ancilla(0, 1); !errors.Is(err, ErrInvalidGroup) {
		t.Errorf("Ancilla(0, 1) error = %v, want ErrInvalidGroup", err)
	}
	if _, err := reg.Ancilla(1, 3); !errors.Is(err, ErrAncillaIndex) {
		t.Errorf("Ancilla(1, 3) error = %v, want ErrAncillaIndex", err)
	}
	if _, err := reg.Ancilla(2, 0); !errors.Is(err, ErrAncillaIndex) {
		t.Errorf("Ancilla(2, 0) error = %v, want ErrAncillaIndex", err)
	}
}

func TestRegisterLabels(t *testing.T) {
	reg := NewRegister(2, 2)

	tests := []struct {
		qubit int
		want  string
	}{
		{0, "q1"},
		{1, "q2"},
		{2, "a1.1"},
		{3, "a1.2"},
		{4, "a2.1"},
		{5, "a2.2"},
	}
	for _, tt := range tests {
		if got := reg.Label(tt.qubit); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.qubit, got, tt.want)
		}
	}
}
