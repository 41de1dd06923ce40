package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient.
func Gradient(text string, from, to lipgloss.Color) string {
	return gradient(text, false, from, to)
}

// BoldGradient renders bold text with a horizontal color gradient.
func BoldGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, true, from, to)
}

func gradient(text string, bold bool, from, to lipgloss.Color) string {
	// Split into grapheme clusters so multi-rune glyphs keep one color.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	c1 := parseHex(from)
	c2 := parseHex(to)

	var b strings.Builder
	for i, cluster := range clusters {
		t := 0.0
		if len(clusters) > 1 {
			t = float64(i) / float64(len(clusters)-1)
		}
		// Blend in HCL space for perceptually even steps.
		col := c1.BlendHcl(c2, t).Clamped()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// parseHex converts a lipgloss hex color, falling back to a neutral gray
// for ANSI palette values.
func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}
