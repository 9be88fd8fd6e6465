package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const labelWidth = 10

// ScoreBar renders an estimate as a bar relative to the largest score.
func ScoreBar(points, maxPoints, width int) string {
	if maxPoints <= 0 {
		maxPoints = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(points) / float64(maxPoints) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d pts", bar, points, maxPoints)
}

// Row aligns a muted label in front of value.
func Row(label, value string) string {
	pad := labelWidth - ansi.StringWidth(label)
	if pad < 1 {
		pad = 1
	}
	return current.Muted.Render(label) + strings.Repeat(" ", pad) + value
}

// PanelString frames inner with the current theme's border.
func PanelString(inner string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines in a framed box.
func Panel(lines []string) {
	fmt.Println(PanelString(strings.Join(lines, "\n")))
}
