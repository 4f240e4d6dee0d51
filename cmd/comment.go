package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Yates-Labs/wingman/internal/comment"
	"github.com/Yates-Labs/wingman/internal/config"
	"github.com/Yates-Labs/wingman/internal/orchestrator"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	profileFile   string
	commentTable  string
	commentReport string
	temperature   float64
	maxTokens     int
	seed          uint64
	count         int
	showPrompt    bool
	dryRun        bool
	exportFile    string
)

var commentCmd = &cobra.Command{
	Use:   "comment [profile text]",
	Short: "Write an opening comment for a dating profile",
	Long: `Write a short opening comment for a dating-profile text using a local Ollama model.

This command:
1. Cleans the profile and extracts keywords and sentiment
2. Picks a tone (comedic, flirty, straightforward) from the weight table
3. Builds the persona prompt around one keyword
4. Asks the model for the comment

Without keywords a generic greeting is requested instead.

Environment variables:
  OLLAMA_MODEL         - Model tag (default: deepseek-r1:1.5b)
  OLLAMA_BASE_URL      - Ollama server (default: http://localhost:11434)
  WINGMAN_TEMPERATURE  - Sampling temperature (default: 0.7)
  WINGMAN_MAX_TOKENS   - Response length limit (default: 150)

Examples:
  wingman comment "I love hiking and coffee"
  wingman comment --file profile.txt --report rates.json
  echo "Jazz, tacos and bad puns" | wingman comment --file - --count 3
  wingman comment "Weekend baker" --dry-run --weights comedic=3
  wingman comment "Salsa and sushi" --count 5 --export comments.json`,
	RunE: runComment,
}

func init() {
	rootCmd.AddCommand(commentCmd)
	commentCmd.Flags().StringVar(&profileFile, "file", "", "Read the profile from a file (- for stdin)")
	commentCmd.Flags().Float64Var(&temperature, "temperature", 0, "Sampling temperature (overrides WINGMAN_TEMPERATURE)")
	commentCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Maximum response tokens (overrides WINGMAN_MAX_TOKENS)")
	commentCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed tone and keyword draws for reproducible output (0 = random)")
	commentCmd.Flags().IntVar(&count, "count", 1, "Number of comments to generate")
	commentCmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "Print the prompt sent to the model")
	commentCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the prompt without calling the model")
	commentCmd.Flags().StringVar(&exportFile, "export", "", "Export generated comments to JSON file: --export <filename>")
	addPolicyFlags(commentCmd, &commentTable, &commentReport)
}

func runComment(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	profile, err := readProfile(cmd, args)
	if err != nil {
		return err
	}
	if count < 1 {
		return errors.New("--count must be at least 1")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = temperature
	}
	if cmd.Flags().Changed("max-tokens") {
		cfg.MaxTokens = maxTokens
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	pipelineConfig := orchestrator.DefaultPipelineConfig()
	pipelineConfig.LLMConfig = cfg.LLMConfig()
	pipelineConfig.Seed = seed

	pipeline, err := orchestrator.NewPipeline(pipelineConfig)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	if err := applyPolicyFlags(pipeline.Policy(), commentTable, commentReport); err != nil {
		return err
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true)
	promptStyle := lipgloss.NewStyle().
		Foreground(promptColor).
		Italic(true)
	answerStyle := lipgloss.NewStyle().
		Foreground(answerColor)
	toneStyle := lipgloss.NewStyle().
		Foreground(toneColor)

	out := cmd.OutOrStdout()
	var generated []*comment.Comment
	for i := 0; i < count; i++ {
		if dryRun {
			prompt, choice := pipeline.BuildPrompt(profile)
			fmt.Fprintln(out, headerStyle.Render("Tone:"), toneStyle.Render(toneLabel(string(choice.Tone))))
			fmt.Fprintln(out, headerStyle.Render("Prompt:"))
			fmt.Fprintln(out, promptStyle.Render(strings.TrimSpace(prompt)))
			fmt.Fprintln(out)
			continue
		}

		c, err := pipeline.GenerateComment(ctx, profile)
		if err != nil {
			return fmt.Errorf("failed to generate comment: %w", err)
		}

		fmt.Fprintln(out, headerStyle.Render("Tone:"), toneStyle.Render(toneLabel(string(c.Tone))))
		if showPrompt {
			fmt.Fprintln(out, headerStyle.Render("Prompt:"))
			fmt.Fprintln(out, promptStyle.Render(strings.TrimSpace(c.Prompt)))
		}
		fmt.Fprintln(out, headerStyle.Render("Comment:"))
		fmt.Fprintln(out, answerStyle.Render(c.Text))
		fmt.Fprintln(out)
		generated = append(generated, c)
	}

	if exportFile != "" && len(generated) > 0 {
		return handleExport(out, generated, exportFile)
	}
	return nil
}

func handleExport(out io.Writer, comments []*comment.Comment, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := comment.ExportComments(comments, "json", showPrompt, file); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(out, "✓ Exported %d comments to %s\n", len(comments), filename)
	return nil
}

// readProfile takes the profile from --file or the positional arguments.
func readProfile(cmd *cobra.Command, args []string) (string, error) {
	if profileFile == "" {
		profile := strings.TrimSpace(strings.Join(args, " "))
		if profile == "" {
			return "", errors.New("profile text is required (pass it as arguments or use --file)")
		}
		return profile, nil
	}
	if len(args) > 0 {
		return "", errors.New("use either profile arguments or --file, not both")
	}

	var (
		data []byte
		err  error
	)
	if profileFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(profileFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read profile: %w", err)
	}
	return string(data), nil
}

func toneLabel(tone string) string {
	if tone == "" {
		return "generic greeting"
	}
	return tone
}
