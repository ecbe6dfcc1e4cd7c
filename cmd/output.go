package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/cognitive"
	"github.com/abhisek/skillforge/internal/skillgraph"
	"github.com/abhisek/skillforge/internal/ui/theme"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var heading = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)

// printGraph prints one line per concept with a text bar.
func printGraph(w io.Writer, g skillgraph.Graph) {
	lipgloss.Fprintln(w, heading.Render("Skill graph"))
	for _, e := range g {
		bar := strings.Repeat("█", e.Level/5) + strings.Repeat("░", 20-e.Level/5)
		line := fmt.Sprintf("  %-20s %s %3d  %s", e.Concept, bar, e.Level, skillgraph.Label(e.Level))
		if e.WeaknessType != "" {
			line += "  (" + string(e.WeaknessType) + ")"
		}
		lipgloss.Fprintln(w, theme.LevelStyle(e.Level).Render(line))
	}
}

func printProfile(w io.Writer, p cognitive.Profile) {
	lipgloss.Fprintln(w, heading.Render("Cognitive profile"))
	lipgloss.Fprintf(w, "  %-18s %.1fs\n", "Average speed", p.AverageSpeed)
	lipgloss.Fprintf(w, "  %-18s %.0f%%\n", "Average accuracy", p.AverageAccuracy*100)
	lipgloss.Fprintf(w, "  %-18s %.1f\n", "Impulsivity", p.ImpulsivityIndex)
	lipgloss.Fprintf(w, "  %-18s %.1f\n", "Hesitation", p.HesitationScore)
	lipgloss.Fprintf(w, "  %-18s %.1f\n", "Guessing", p.GuessPattern)
}

func printInsights(w io.Writer, insights []cognitive.Insight) {
	lipgloss.Fprintln(w, heading.Render("Insights"))
	if len(insights) == 0 {
		lipgloss.Fprintln(w, "  No patterns detected.")
		return
	}
	for _, in := range insights {
		badge := theme.SeverityStyle(in.Severity).Render(fmt.Sprintf("[%s/%s]", in.Severity, in.Type))
		lipgloss.Fprintf(w, "  %s %s\n      %s\n", badge, in.Message, in.Recommendation)
	}
}
