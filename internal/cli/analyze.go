package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON        string
	analyzeTimeout time.Duration
	llmProvider    string
	llmModel       string
	noSearch       bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <url-or-file>",
	Short: "Analyze one article and validate its claims",
	Long: `Analyze decomposes an article into thesis, claims, and implicit
assumptions, routes each checkable claim to a statistics provider, and
reports which claims the data supports, partially supports, or
contradicts.

The argument is either an article URL or a path to a plain-text file.

Example:
  clearview analyze https://example.com/news/inflation-piece
  clearview analyze article.txt --json report.json
  clearview analyze article.txt --llm-provider ollama --llm-model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "write the full report JSON to this path")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 5*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider (anthropic, openai, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model for claim extraction")
	analyzeCmd.Flags().BoolVar(&noSearch, "no-search", false, "disable the web-search fallback for unresolved claims")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := loadConfig()
	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic", "claude":
			cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		default:
			cfg.LLM.APIKey = ""
		}
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	if noSearch {
		cfg.Search.Enabled = false
	}

	p := pipeline.NewPipeline(cfg)
	if !p.LLMReady() {
		return fmt.Errorf("no LLM provider configured: set ANTHROPIC_API_KEY or use --llm-provider ollama")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", input)
		fmt.Fprintf(os.Stderr, "Provider:  %s\n", cfg.LLM.Provider)
		fmt.Fprintln(os.Stderr)
	}

	report, err := p.AnalyzeInput(ctx, input)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printReportSummary(report)

	if report.FromCache && verbose {
		fmt.Fprintln(os.Stderr, "(served from cache)")
	}

	if outJSON != "" {
		if err := pipeline.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Report written to %s\n", outJSON)
	}

	return nil
}

// printReportSummary writes a human-readable digest of a report to stdout
func printReportSummary(report *model.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("  ClearView Report")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("Thesis: %s\n", report.Thesis)
	fmt.Println()
	fmt.Printf("Claims: %d total, %d checkable, %d implicit assumptions, %d logical flags\n",
		report.Summary.TotalClaims,
		report.Summary.CheckableClaims,
		report.Summary.ImplicitAssumptions,
		report.Summary.LogicalFlagsCount)
	fmt.Printf("Verdicts: %d supported, %d partial, %d contradicted, %d insufficient data\n",
		report.Summary.ValidatedCount,
		report.Summary.PartialCount,
		report.Summary.ContradictedCount,
		report.Summary.InsufficientCount)
	fmt.Println()

	for _, result := range report.ValidationResults {
		fmt.Printf("%s %s [%s]\n", statusMark(result.Status), result.ClaimID, result.Status)
		fmt.Printf("    %s\n", result.Summary)
		if result.SourceName != "" {
			fmt.Printf("    Source: %s\n", result.SourceName)
		}
	}
	if len(report.ValidationResults) > 0 {
		fmt.Println()
	}
}

func statusMark(status model.Status) string {
	switch status {
	case model.StatusSupported:
		return "✓"
	case model.StatusPartiallySupported:
		return "~"
	case model.StatusContradicted:
		return "✗"
	default:
		return "?"
	}
}
