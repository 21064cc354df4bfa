package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseWeights parses the per-gate probability weights passed on the
// command line as three space-separated numbers in i, x, z order.
// Returns nil (equal weights) for empty input.
func ParseWeights(s string) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) != len(GateKinds) {
		return nil, fmt.Errorf("want %d weights as \"<p_i> <p_x> <p_z>\", got %d", len(GateKinds), len(fields))
	}

	weights := make([]float64, len(fields))
	total := 0.0
	for i, f := range fields {
		w, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", f, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("weight %q is negative", f)
		}
		weights[i] = w
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("weights sum to zero")
	}
	return weights, nil
}

// ParseErrorSpec parses the explicit-error argument
// "<index_1> <gate_1> <index_2> <gate_2>" into an error pair.
func ParseErrorSpec(s string) (ErrorPair, error) {
	var pair ErrorPair
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return pair, fmt.Errorf("want error as \"<index_1> <gate_1> <index_2> <gate_2>\", got %d fields", len(fields))
	}
	for group := 0; group < 2; group++ {
		index, err := strconv.Atoi(fields[group*2])
		if err != nil {
			return pair, fmt.Errorf("invalid error index %q: %w", fields[group*2], err)
		}
		gate, err := ParseGateKind(fields[group*2+1])
		if err != nil {
			return pair, err
		}
		pair[group] = ErrorDescriptor{Group: group + 1, Index: index, Gate: gate}
	}
	return pair, nil
}
