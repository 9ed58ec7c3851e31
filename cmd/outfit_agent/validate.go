package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/outfit-agent/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a pipeline artifact against its JSON Schema",
	Long:  "Validates a requirements, preferences, or outfits JSON artifact against the corresponding schema under schemas/. Pass either an explicit schema path or an artifact kind.",
	RunE:  runValidate,
}

var (
	validateSchemaPath string
	validateKind       string
	validateJSONPath   string
)

// schemaByKind maps artifact kinds to their schema documents.
var schemaByKind = map[string]string{
	"requirements": schemas.RequirementsSchema,
	"preferences":  schemas.PreferencesSchema,
	"outfits":      schemas.OutfitsSchema,
}

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Path to JSON Schema file")
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Artifact kind: requirements, preferences, or outfits")
	validateCmd.Flags().StringVarP(&validateJSONPath, "json", "j", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath := validateSchemaPath
	if schemaPath == "" {
		if validateKind == "" {
			return fmt.Errorf("either --schema or --kind is required")
		}
		relative, ok := schemaByKind[validateKind]
		if !ok {
			return fmt.Errorf("unknown artifact kind %q (expected requirements, preferences, or outfits)", validateKind)
		}
		schemaPath = schemas.ResolveSchemaPath(relative)
		if schemaPath == "" {
			return fmt.Errorf("could not locate schema file %s", relative)
		}
	}

	if err := schemas.ValidateJSON(schemaPath, validateJSONPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			cmd.Printf("Validation failed with %d error(s):\n", len(validationErr.Errors))
			for _, fieldErr := range validationErr.Errors {
				cmd.Printf("  - %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
			return fmt.Errorf("validation failed")
		}
		return err
	}

	cmd.Println("Validation passed")
	return nil
}
