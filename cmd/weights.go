package cmd

import (
	"fmt"

	"github.com/Yates-Labs/wingman/internal/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	weightsTable  string
	weightsReport string
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the tone weight table",
	Long: `Show the tone weights and the resulting selection probabilities.

Starts from uniform weights. With --report, the success report is applied
first: the best-scoring label's tone is boosted to 1.5 and the others stay
at 1.0. Labels are matched against the template texts ("hilarious",
"flirty", "coffee"); a winning label that names no tone leaves the table
uniform.

Examples:
  wingman weights
  wingman weights --report rates.json
  wingman weights --weights comedic=2,flirty=1`,
	Args: cobra.NoArgs,
	RunE: runWeights,
}

func init() {
	rootCmd.AddCommand(weightsCmd)
	addPolicyFlags(weightsCmd, &weightsTable, &weightsReport)
}

func runWeights(cmd *cobra.Command, args []string) error {
	policy := style.NewPolicy(nil)
	if err := applyPolicyFlags(policy, weightsTable, weightsReport); err != nil {
		return err
	}

	w := policy.Weights()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderWeights(w))

	summaryStyle := lipgloss.NewStyle().
		Foreground(summaryColor).
		Italic(true)
	fmt.Fprintln(out)
	fmt.Fprintln(out, summaryStyle.Render(fmt.Sprintf("Total weight: %.2f", w.Total())))
	return nil
}
