package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/modaber/modaber/internal/tui/themes"
)

// money formats an amount for display. Cleared draft fields render as zero.
func money(v float64) string {
	if math.IsNaN(v) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// progressBar renders a fraction as a fixed-width bar.
func progressBar(theme themes.Theme, frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	full := int(math.Round(frac * float64(width)))
	return theme.ProgressFull.Render(strings.Repeat("█", full)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", width-full))
}
