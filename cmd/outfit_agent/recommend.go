package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/outfit-agent/internal/assembly"
	"github.com/jonathan/outfit-agent/internal/catalog"
	"github.com/jonathan/outfit-agent/internal/config"
	"github.com/jonathan/outfit-agent/internal/extraction"
	"github.com/jonathan/outfit-agent/internal/observability"
	"github.com/jonathan/outfit-agent/internal/rendering"
	"github.com/jonathan/outfit-agent/internal/scoring"
	"github.com/jonathan/outfit-agent/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the full outfit recommendation pipeline from a free-text prompt",
	Long:  "Extracts requirements and preferences from the prompt, loads the catalog, assembles candidate outfits, ranks them, and emits a recommendation run artifact as JSON or rendered text.",
	RunE:  runRecommend,
}

var (
	recommendText       string
	recommendCatalog    string
	recommendConfigPath string
	recommendMaxOutfits int
	recommendOutput     string
	recommendVerbose    bool
	recommendRendered   bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendText, "text", "t", "", "Free-text outfit prompt (required)")
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to catalog CSV file")
	recommendCmd.Flags().StringVar(&recommendConfigPath, "config", "", "Path to JSON config file")
	recommendCmd.Flags().IntVarP(&recommendMaxOutfits, "max-outfits", "m", 0, "Maximum number of outfits to assemble")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output recommendation JSON file (default: stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print pipeline details for each stage")
	recommendCmd.Flags().BoolVar(&recommendRendered, "rendered", false, "Emit rendered outfit descriptions instead of JSON")

	if err := recommendCmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveRecommendConfig()
	if err != nil {
		return err
	}
	if cfg.Catalog == "" {
		return fmt.Errorf("no catalog path: set --catalog, the config file, or OUTFIT_AGENT_CATALOG")
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())

	requirements := extraction.ExtractRequirements(recommendText)
	preferences := extraction.ExtractPreferences(recommendText)
	if cfg.Verbose {
		printer.PrintRequirements(&requirements)
		printer.PrintPreferences(&preferences)
	}

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if cfg.Verbose {
		printer.PrintCatalogSummary(cat)
	}

	outfits := assembly.AssembleOutfits(cat.GetAllItems(), requirements, cfg.MaxOutfits)
	ranked := scoring.RankOutfits(outfits, requirements, preferences)
	if cfg.Verbose {
		printer.PrintRankedOutfits(ranked)
	}

	run := types.RecommendationRun{
		RunID:        uuid.New().String(),
		Prompt:       recommendText,
		Requirements: requirements,
		Preferences:  preferences,
		Outfits:      ranked,
	}

	if cfg.Rendered {
		return writeArtifact(cmd, cfg.Out, []byte(renderRun(run)))
	}

	jsonOutput, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation to JSON: %w", err)
	}
	if err := writeArtifact(cmd, cfg.Out, jsonOutput); err != nil {
		return fmt.Errorf("failed to write recommendation: %w", err)
	}

	return nil
}

// resolveRecommendConfig merges the config file (when given), environment
// variables, and flags. Flags win over the file, the file wins over env.
func resolveRecommendConfig() (*config.Config, error) {
	cfg := &config.Config{MaxOutfits: config.DefaultMaxOutfits}
	if recommendConfigPath != "" {
		loaded, err := config.LoadConfig(recommendConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg.MaxOutfits == 0 {
			cfg.MaxOutfits = config.DefaultMaxOutfits
		}
	}

	if recommendCatalog != "" {
		cfg.Catalog = recommendCatalog
	}
	if recommendMaxOutfits > 0 {
		cfg.MaxOutfits = recommendMaxOutfits
	}
	if recommendOutput != "" {
		cfg.Out = recommendOutput
	}
	if recommendVerbose {
		cfg.Verbose = true
	}
	if recommendRendered {
		cfg.Rendered = true
	}

	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// renderRun formats the ranked outfits of a run as human-readable text.
func renderRun(run types.RecommendationRun) string {
	if len(run.Outfits) == 0 {
		return "No outfits could be assembled for this request.\n"
	}

	sections := make([]string, len(run.Outfits))
	for i, outfit := range run.Outfits {
		sections[i] = rendering.RenderOutfitDescription(outfit, run.Requirements)
	}
	return strings.Join(sections, "\n\n"+strings.Repeat("=", 60)+"\n\n") + "\n"
}
