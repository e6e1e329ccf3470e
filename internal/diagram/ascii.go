package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProfileASCII renders a smooth 1D coefficient profile in the terminal.
// xs and cs come from an interpolation grid; the caption names the axes.
func ProfileASCII(xs, cs []float64, caption string) string {
	if len(cs) == 0 {
		return ""
	}
	plot := asciigraph.Plot(cs,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption(caption),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(plot)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  key range: %.4g … %.4g  (%d grid points)\n",
		xs[0], xs[len(xs)-1], len(xs)))
	return sb.String()
}

// SummaryBox frames a titled list of result lines for terminal output.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
