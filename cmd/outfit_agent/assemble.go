package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/outfit-agent/internal/assembly"
	"github.com/jonathan/outfit-agent/internal/catalog"
	"github.com/jonathan/outfit-agent/internal/config"
	"github.com/jonathan/outfit-agent/internal/types"
	"github.com/spf13/cobra"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble candidate outfits from a catalog under extracted requirements",
	Long:  "Filters and partitions catalog items by the given requirements, then builds up to --max-outfits candidate outfits, producing an Outfits JSON artifact for the rank-outfits stage.",
	RunE:  runAssemble,
}

var (
	assembleCatalogPath      string
	assembleRequirementsPath string
	assembleMaxOutfits       int
	assembleOutput           string
)

func init() {
	assembleCmd.Flags().StringVarP(&assembleCatalogPath, "catalog", "c", "", "Path to catalog CSV file (required)")
	assembleCmd.Flags().StringVarP(&assembleRequirementsPath, "requirements", "r", "", "Path to input Requirements JSON file (required)")
	assembleCmd.Flags().IntVarP(&assembleMaxOutfits, "max-outfits", "m", config.DefaultMaxOutfits, "Maximum number of outfits to assemble")
	assembleCmd.Flags().StringVarP(&assembleOutput, "out", "o", "", "Path to output Outfits JSON file (default: stdout)")

	if err := assembleCmd.MarkFlagRequired("catalog"); err != nil {
		panic(fmt.Sprintf("failed to mark catalog flag as required: %v", err))
	}
	if err := assembleCmd.MarkFlagRequired("requirements"); err != nil {
		panic(fmt.Sprintf("failed to mark requirements flag as required: %v", err))
	}

	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, _ []string) error {
	cat, err := catalog.Load(assembleCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	requirements, err := loadRequirements(assembleRequirementsPath)
	if err != nil {
		return err
	}

	outfits := assembly.AssembleOutfits(cat.GetAllItems(), requirements, assembleMaxOutfits)

	jsonOutput, err := json.MarshalIndent(outfits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outfits to JSON: %w", err)
	}

	if err := writeArtifact(cmd, assembleOutput, jsonOutput); err != nil {
		return fmt.Errorf("failed to write outfits: %w", err)
	}

	return nil
}

// loadRequirements reads a Requirements JSON artifact.
func loadRequirements(path string) (types.Requirements, error) {
	var requirements types.Requirements
	content, err := os.ReadFile(path)
	if err != nil {
		return requirements, fmt.Errorf("failed to read requirements file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, &requirements); err != nil {
		return requirements, fmt.Errorf("failed to unmarshal requirements JSON: %w", err)
	}
	return requirements, nil
}

// ensureOutputDir creates the parent directory of an output path when needed.
func ensureOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}
