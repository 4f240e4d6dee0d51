package cmd

import (
	"fmt"
	"strings"

	"github.com/Yates-Labs/wingman/internal/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Shared palette
var (
	headerColor  = lipgloss.Color("#F780FF") // Bright pink
	promptColor  = lipgloss.Color("#6272A4") // Muted purple
	answerColor  = lipgloss.Color("#E9E9F4") // Light purple/white
	toneColor    = lipgloss.Color("#BD93F9") // Purple
	numberColor  = lipgloss.Color("#FF79C6") // Pink
	summaryColor = lipgloss.Color("#8BE9FD") // Cyan
)

// addPolicyFlags registers the flags that shape the weight table before use.
func addPolicyFlags(c *cobra.Command, weights, report *string) {
	c.Flags().StringVar(weights, "weights", "", "Set tone weights, e.g. comedic=2,flirty=1,straightforward=1")
	c.Flags().StringVar(report, "report", "", "Apply a success report (JSON object of label to rate) before use")
	c.MarkFlagsMutuallyExclusive("weights", "report")
}

// applyPolicyFlags sets explicit weights or applies a success report.
func applyPolicyFlags(p *style.Policy, weights, report string) error {
	if weights != "" {
		w, err := style.ParseWeights(weights)
		if err != nil {
			return err
		}
		if err := p.SetWeights(w); err != nil {
			return err
		}
	}
	if report != "" {
		r, err := style.LoadSuccessReport(report)
		if err != nil {
			return err
		}
		p.UpdateWeights(r)
	}
	return nil
}

// renderWeights formats the table as tone, weight and selection probability.
func renderWeights(w style.WeightTable) string {
	const (
		toneWidth   = 18
		weightWidth = 10
		probWidth   = 14
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true).
		Padding(0, 1)
	borderStyle := lipgloss.NewStyle().Foreground(promptColor)
	toneStyle := lipgloss.NewStyle().
		Foreground(toneColor).
		Padding(0, 1).
		Width(toneWidth)
	numStyle := lipgloss.NewStyle().
		Foreground(numberColor).
		Padding(0, 1).
		Align(lipgloss.Right)

	sep := borderStyle.Render("│")
	out := headerStyle.Width(toneWidth).Render("TONE") + sep +
		headerStyle.Width(weightWidth).Render("WEIGHT") + sep +
		headerStyle.Width(probWidth).Render("PROBABILITY") + "\n"

	line := strings.Join([]string{
		strings.Repeat("─", toneWidth),
		strings.Repeat("─", weightWidth),
		strings.Repeat("─", probWidth),
	}, "┼")
	out += borderStyle.Render(line) + "\n"

	for _, t := range style.Tones {
		out += toneStyle.Render(string(t)) + sep +
			numStyle.Width(weightWidth).Render(fmt.Sprintf("%.2f", w[t])) + sep +
			numStyle.Width(probWidth).Render(fmt.Sprintf("%.1f%%", w.Probability(t)*100)) + "\n"
	}
	return out
}
