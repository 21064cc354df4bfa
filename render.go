package main

import (
	"fmt"
	"sort"
	"strings"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// gateDisplayName returns a short display name for a gate type.
func gateDisplayName(g *Gate) string {
	switch g.Type {
	case "MEASURE":
		return "M"
	case "ERR":
		return g.Label
	default:
		return g.Type
	}
}

// cellInfo describes what occupies a single cell of the diagram grid.
type cellInfo struct {
	gate         *Gate
	isControl    bool
	isTarget     bool
	isSpan       bool
	vertAbove    bool
	vertBelow    bool
	passThrough  bool
	measureBelow bool
	isBarrier    bool
}

// cellInfoAt returns rendering information for the cell at (step, qubit).
func cellInfoAt(c *Circuit, step, qubit int) cellInfo {
	var info cellInfo
	info.isBarrier = c.HasBarrierAt(step)

	if g := c.GetGateAt(step, qubit); g != nil {
		info.gate = g
		switch {
		case g.Control == qubit:
			info.isControl = true
		case g.Target != qubit:
			for _, ctrl := range g.Controls {
				if ctrl == qubit {
					info.isControl = true
				}
			}
			if !info.isControl && g.Type == "ERR" {
				info.isSpan = true
			}
		case g.Control >= 0 || len(g.Controls) > 0:
			info.isTarget = true
		}
	}

	// Vertical connections of multi-qubit gates crossing this cell.
	for _, g := range c.Gates {
		if g.Step != step || g.Type == "BARRIER" || g.Type == "MEASURE" {
			continue
		}
		lo, hi := g.qubitRange()
		if lo == hi || qubit < lo || qubit > hi {
			continue
		}
		if qubit > lo {
			info.vertAbove = true
		}
		if qubit < hi {
			info.vertBelow = true
		}
		if info.gate == nil && qubit > lo && qubit < hi {
			info.passThrough = true
		}
	}

	// Measurement connections dropping to the classical wire below.
	for _, g := range c.Gates {
		if g.Step == step && g.Type == "MEASURE" && qubit > g.Target {
			info.measureBelow = true
		}
	}

	return info
}

// renderCell returns 3 lines (top, mid, bot) for a single cell, each
// exactly cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dblVertRow := strings.Repeat(" ", halfW) + cbitConnectorStyle.Render("║") + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	symbolCell := func(sym string, style func(...string) string) {
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", dashL) + style(sym) + strings.Repeat("─", dashR)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
		if info.measureBelow {
			bot = dblVertRow
		}
	}

	boxCell := func(name string, style func(...string) string) {
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		padded := padCenter(name, gateNameW)
		top = strings.Repeat(" ", margin) + style("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + style("┤"+padded+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + style("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
		if info.measureBelow {
			bot = dblVertRow
		}
	}

	switch {
	case info.isBarrier:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "│" + strings.Repeat("─", dashR)
		bot = vertRow

	case info.gate != nil && info.isControl:
		symbolCell("●", gateStyle.Render)

	case info.gate != nil && info.isTarget:
		symbolCell("⊕", gateStyle.Render)

	case info.gate != nil && info.isSpan:
		symbolCell("┆", errMarkerStyle.Render)

	case info.gate != nil && info.gate.Type == "ERR":
		boxCell(gateDisplayName(info.gate), errMarkerStyle.Render)

	case info.gate != nil:
		boxCell(gateDisplayName(info.gate), gateStyle.Render)

	case info.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow
		if info.measureBelow {
			bot = dblVertRow
		}

	case info.measureBelow:
		top = dblVertRow
		mid = strings.Repeat("─", dashL) + cbitConnectorStyle.Render("╫") + strings.Repeat("─", dashR)
		bot = dblVertRow

	default:
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
	}

	return top, mid, bot
}

// ──────────────────────────── Circuit diagram ────────────────────────────

// DrawCircuit renders the circuit as a unicode wire diagram with one
// column per timeline step and the classical wire at the bottom.
func DrawCircuit(c *Circuit, reg *Register) string {
	var sb strings.Builder

	// Step number header.
	header := strings.Repeat(" ", labelW)
	for step := range c.MaxSteps {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	for qubit := range c.NumQubits {
		topLine := strings.Repeat(" ", labelW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", reg.Label(qubit))) + "──"
		botLine := strings.Repeat(" ", labelW)

		for step := range c.MaxSteps {
			top, mid, bot := renderCell(cellInfoAt(c, step, qubit))
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	if c.Measured() {
		halfW := cellW / 2

		sepLine := strings.Repeat(" ", labelW)
		for step := range c.MaxSteps {
			if q, _ := c.MeasureAtStep(step); q >= 0 {
				sepLine += strings.Repeat(" ", halfW) + cbitConnectorStyle.Render("║") + strings.Repeat(" ", cellW-halfW-1)
			} else {
				sepLine += strings.Repeat(" ", cellW)
			}
		}
		sb.WriteString(sepLine + "\n")

		label := fmt.Sprintf("c%d", NumClassicalBits)
		cbitLine := cbitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + cbitWireStyle.Render("══")
		for step := range c.MaxSteps {
			if _, cbit := c.MeasureAtStep(step); cbit >= 0 {
				bitLabel := fmt.Sprintf("%d", cbit)
				dashL := (cellW - 1) / 2
				dashR := max(cellW-dashL-1-len(bitLabel), 0)
				cbitLine += cbitWireStyle.Render(strings.Repeat("═", dashL)) +
					cbitConnectorStyle.Render("╩"+bitLabel) +
					cbitWireStyle.Render(strings.Repeat("═", dashR))
			} else {
				cbitLine += cbitWireStyle.Render(strings.Repeat("═", cellW))
			}
		}
		sb.WriteString(cbitLine + "\n")
	}

	return sb.String()
}

// ──────────────────────────── Bar chart ────────────────────────────

// DrawBarChart renders outcome counts as a horizontal bar chart, one line
// per measured state, bars scaled to the given width.
func DrawBarChart(counts Counts, width int) string {
	if len(counts) == 0 {
		return dimStyle.Render("(no counts)")
	}

	keys := make([]string, 0, len(counts))
	maxCount := 0
	for key, n := range counts {
		keys = append(keys, key)
		maxCount = max(maxCount, n)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Measured state counts"))
	sb.WriteString("\n")
	for _, key := range keys {
		n := counts[key]
		barLen := 0
		if maxCount > 0 {
			barLen = n * width / maxCount
		}
		if n > 0 && barLen == 0 {
			barLen = 1
		}
		sb.WriteString(qubitLabelStyle.Render(key))
		sb.WriteString(" │")
		sb.WriteString(barStyle.Render(strings.Repeat("█", barLen)))
		fmt.Fprintf(&sb, " %d\n", n)
	}
	return sb.String()
}
