package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/outfit-agent/internal/extraction"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured requirements and preferences from free text",
	Long:  "Deterministically extracts outfit requirements (occasion, season, warmth, formality, colors, budget) and style preferences from a free-text prompt, producing JSON artifacts for the assemble and rank-outfits stages.",
	RunE:  runExtract,
}

var (
	extractText            string
	extractRequirementsOut string
	extractPreferencesOut  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractText, "text", "t", "", "Free-text outfit prompt (required)")
	extractCmd.Flags().StringVarP(&extractRequirementsOut, "requirements-out", "r", "", "Path to output Requirements JSON file (default: stdout)")
	extractCmd.Flags().StringVarP(&extractPreferencesOut, "preferences-out", "p", "", "Path to output Preferences JSON file (default: stdout)")

	if err := extractCmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	requirements := extraction.ExtractRequirements(extractText)
	preferences := extraction.ExtractPreferences(extractText)

	reqJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal requirements to JSON: %w", err)
	}
	prefJSON, err := json.MarshalIndent(preferences, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences to JSON: %w", err)
	}

	if err := writeArtifact(cmd, extractRequirementsOut, reqJSON); err != nil {
		return fmt.Errorf("failed to write requirements: %w", err)
	}
	if err := writeArtifact(cmd, extractPreferencesOut, prefJSON); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}

// writeArtifact writes JSON to the given path, or to the command's stdout
// when the path is empty.
func writeArtifact(cmd *cobra.Command, path string, content []byte) error {
	if path == "" {
		cmd.Println(string(content))
		return nil
	}
	if err := ensureOutputDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
