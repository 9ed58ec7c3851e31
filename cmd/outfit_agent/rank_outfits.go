package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/outfit-agent/internal/scoring"
	"github.com/jonathan/outfit-agent/internal/types"
	"github.com/spf13/cobra"
)

var rankOutfitsCmd = &cobra.Command{
	Use:   "rank-outfits",
	Short: "Score and rank assembled outfits against requirements and preferences",
	Long:  "Scores each outfit on occasion, style, color, seasonality, warmth and formality fit, blends in a completeness bonus, and emits the outfits sorted by descending score.",
	RunE:  runRankOutfits,
}

var (
	rankOutfitsPath      string
	rankRequirementsPath string
	rankPreferencesPath  string
	rankOutput           string
)

func init() {
	rankOutfitsCmd.Flags().StringVarP(&rankOutfitsPath, "outfits", "f", "", "Path to input Outfits JSON file (required)")
	rankOutfitsCmd.Flags().StringVarP(&rankRequirementsPath, "requirements", "r", "", "Path to input Requirements JSON file (required)")
	rankOutfitsCmd.Flags().StringVarP(&rankPreferencesPath, "preferences", "p", "", "Path to input Preferences JSON file (optional)")
	rankOutfitsCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked Outfits JSON file (default: stdout)")

	if err := rankOutfitsCmd.MarkFlagRequired("outfits"); err != nil {
		panic(fmt.Sprintf("failed to mark outfits flag as required: %v", err))
	}
	if err := rankOutfitsCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(rankOutfitsCmd)
}

func runRankOutfits(cmd *cobra.Command, _ []string) error {
	outfits, err := loadOutfits(rankOutfitsPath)
	if err != nil {
		return err
	}

	requirements, err := loadRequirements(rankRequirementsPath)
	if err != nil {
		return err
	}

	var preferences types.Preferences
	if rankPreferencesPath != "" {
		preferences, err = loadPreferences(rankPreferencesPath)
		if err != nil {
			return err
		}
	}

	ranked := scoring.RankOutfits(outfits, requirements, preferences)

	jsonOutput, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked outfits to JSON: %w", err)
	}

	if err := writeArtifact(cmd, rankOutput, jsonOutput); err != nil {
		return fmt.Errorf("failed to write ranked outfits: %w", err)
	}

	return nil
}

// loadOutfits reads an Outfits JSON artifact.
func loadOutfits(path string) ([]types.Outfit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read outfits file %s: %w", path, err)
	}
	var outfits []types.Outfit
	if err := json.Unmarshal(content, &outfits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outfits JSON: %w", err)
	}
	return outfits, nil
}

// loadPreferences reads a Preferences JSON artifact.
func loadPreferences(path string) (types.Preferences, error) {
	var preferences types.Preferences
	content, err := os.ReadFile(path)
	if err != nil {
		return preferences, fmt.Errorf("failed to read preferences file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, &preferences); err != nil {
		return preferences, fmt.Errorf("failed to unmarshal preferences JSON: %w", err)
	}
	return preferences, nil
}
