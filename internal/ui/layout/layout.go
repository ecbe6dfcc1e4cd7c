package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillforge/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	hintGap = "   "
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	h := totalHeight - HeaderHeight - FooterHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// RenderHeader renders the application header bar. learner is the signed
// in learner's name, empty when nobody is signed in; mastery is their
// average skill level.
func RenderHeader(title, learner string, mastery float64, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  SkillForge")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("not signed in")
	if learner != "" {
		right = lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(learner) +
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   ") +
			lipgloss.NewStyle().
				Foreground(theme.Accent).
				Render(fmt.Sprintf("mastery %.0f%%", mastery))
	}

	// Calculate spacing
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // account for border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}

	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	box := lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)

	return box
}

func renderHint(h KeyHint) string {
	return lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
		" " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
}

// FitHints keeps hints in order while they fit in avail columns. The first
// hint is always kept.
func FitHints(hints []KeyHint, avail int) []KeyHint {
	used := 0
	for i, h := range hints {
		w := lipgloss.Width(renderHint(h))
		if i > 0 {
			w += len(hintGap)
		}
		if i > 0 && used+w > avail {
			return hints[:i]
		}
		used += w
	}
	return hints
}

// RenderFooter renders the key hints on the left and status, the active
// screen's phase or progress, on the right. Hints that would collide with
// the status are dropped from the end.
func RenderFooter(hints []KeyHint, status string, width int) string {
	inner := max(width-4, 0) // border + padding

	right := ""
	if status != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(status) + "  "
	}
	avail := inner - 2 - lipgloss.Width(right)
	if right != "" {
		avail -= len(hintGap)
	}

	parts := make([]string, 0, len(hints))
	for _, h := range FitHints(hints, avail) {
		parts = append(parts, renderHint(h))
	}
	left := "  " + strings.Join(parts, hintGap)

	content := left
	if right != "" {
		gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
		content += strings.Repeat(" ", gap) + right
	}

	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
