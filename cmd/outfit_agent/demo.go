package main

import (
	"github.com/spf13/cobra"
)

var demoPromptsCmd = &cobra.Command{
	Use:   "demo-prompts",
	Short: "Print example prompts that exercise the extraction rules",
	Long:  "Prints a set of free-text prompts covering occasions, budgets, colors, seasons, and exclusions. Useful as input to extract or recommend.",
	RunE:  runDemoPrompts,
}

// demoPrompts covers the main extraction paths: occasion keywords, budget
// phrases, color and palette cues, seasons, and formal exclusions.
var demoPrompts = []string{
	"Create a casual outfit for a weekend brunch",
	"I need a formal outfit for a business meeting",
	"Show me a party outfit in black and white",
	"Assemble a work-appropriate outfit under $200",
	"Create a summer casual outfit with blue colors",
	"I'm going to a formal wedding and need to wear a tie",
}

func init() {
	rootCmd.AddCommand(demoPromptsCmd)
}

func runDemoPrompts(cmd *cobra.Command, _ []string) error {
	for i, prompt := range demoPrompts {
		cmd.Printf("%d. %s\n", i+1, prompt)
	}
	return nil
}
