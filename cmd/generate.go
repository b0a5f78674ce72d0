package cmd

import (
	"errors"
	"fmt"

	"github.com/Rupesh023/Question-gen/internal/document"
	"github.com/Rupesh023/Question-gen/internal/llm"
	"github.com/Rupesh023/Question-gen/internal/question"
	"github.com/Rupesh023/Question-gen/internal/questiongen"
	"github.com/Rupesh023/Question-gen/internal/report"
	"github.com/Rupesh023/Question-gen/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate question variations and render a worksheet",
	Long: "Reads a YAML set of base questions, asks the configured LLM for a fresh\n" +
		"variation of each one, and renders the results as a PDF or plain-text\n" +
		"worksheet. By default the run aborts on the first failed question; pass\n" +
		"--skip-failed to drop failures and keep going.",
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "Path to YAML question set (required)")
	generateCmd.Flags().StringP("output", "o", "worksheet.pdf", "Output path for the rendered worksheet")
	generateCmd.Flags().String("student-out", "", "Also render a student copy (no answers) to this path")
	generateCmd.Flags().String("mode", "teacher", "Worksheet mode: teacher or student")
	generateCmd.Flags().String("format", "pdf", "Output format: pdf or text")
	generateCmd.Flags().String("provider", "", "LLM provider: gemini, openai, anthropic, openrouter")
	generateCmd.Flags().String("model", "", "Model override for the selected provider")
	generateCmd.Flags().Bool("skip-failed", false, "Skip questions that fail instead of aborting the run")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	studentOut, _ := cmd.Flags().GetString("student-out")
	modeStr, _ := cmd.Flags().GetString("mode")
	format, _ := cmd.Flags().GetString("format")
	skipFailed, _ := cmd.Flags().GetBool("skip-failed")

	mode, err := document.ParseMode(modeStr)
	if err != nil {
		return err
	}
	if format != "pdf" && format != "text" {
		return fmt.Errorf("unknown format %q (want pdf or text)", format)
	}

	set, err := question.LoadSet(input)
	if err != nil {
		return fmt.Errorf("load question set: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx := llm.WithRunID(cmd.Context(), uuid.NewString())

	cfg, err := providerConfig(cmd)
	if err != nil {
		return err
	}
	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return err
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	composer := document.NewComposer(set.Title)
	rep := report.New(cmd.OutOrStdout(), len(set.Questions))
	rep.Start(set.Title, provider.ModelID())

	for i, base := range set.Questions {
		rep.Generating(i+1, base.Topic)
		q, err := gen.Generate(ctx, base)
		if err != nil {
			rep.Failure(failureStage(err), err)
			if !skipFailed {
				return fmt.Errorf("question %d failed: %w", i+1, err)
			}
			continue
		}
		rep.Success()
		composer.AddQuestion(*q)
	}

	if composer.Len() == 0 {
		return errors.New("no questions were generated, nothing to render")
	}

	outputs, err := renderOutputs(composer, format, output, studentOut, mode)
	if err != nil {
		rep.Failure(report.StageRender, err)
		return err
	}
	rep.Summary(outputs)
	return nil
}

// providerConfig builds LLM config from env, applying --provider and --model
// flag overrides. When no explicit provider is configured, it falls back to
// discovering one from the standard API key variables.
func providerConfig(cmd *cobra.Command) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	}

	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return cfg, err
		}
		cfg = discovered
	}

	if m, _ := cmd.Flags().GetString("model"); m != "" {
		switch cfg.Provider {
		case "gemini":
			cfg.Gemini.Model = m
		case "openai":
			cfg.OpenAI.Model = m
		case "anthropic":
			cfg.Anthropic.Model = m
		case "openrouter":
			cfg.OpenRouter.Model = m
		}
	}
	return cfg, nil
}

// failureStage maps an error from the generation pipeline to the stage
// reported to the user.
func failureStage(err error) report.Stage {
	var qv *question.ValidationError
	var gv *questiongen.ValidationError
	var pe *question.ParseError
	var ir *llm.ErrInvalidResponse
	switch {
	case errors.As(err, &qv), errors.As(err, &gv):
		return report.StageValidate
	case errors.As(err, &pe), errors.As(err, &ir):
		return report.StageParse
	default:
		return report.StageGenerate
	}
}

func renderOutputs(c *document.Composer, format, output, studentOut string, mode document.Mode) ([]string, error) {
	render := c.RenderPDF
	if format == "text" {
		render = c.RenderText
	}

	if err := render(output, mode); err != nil {
		return nil, err
	}
	outputs := []string{output}

	if studentOut != "" {
		if err := render(studentOut, document.ModeStudent); err != nil {
			return outputs, err
		}
		outputs = append(outputs, studentOut)
	}
	return outputs, nil
}
