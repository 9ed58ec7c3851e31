// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/outfit-agent/internal/catalog"
	"github.com/jonathan/outfit-agent/internal/rendering"
	"github.com/jonathan/outfit-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the extracted requirements.
func (p *Printer) PrintRequirements(req *types.Requirements) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Occasion:    %s\n", orDash(req.Occasion)))
	sb.WriteString(fmt.Sprintf("Seasonality: %s\n", orDash(req.Seasonality)))

	if req.MinWarmth != nil {
		sb.WriteString(fmt.Sprintf("Min warmth:  %d/5\n", *req.MinWarmth))
	}
	if req.FormalityTarget != nil {
		sb.WriteString(fmt.Sprintf("Formality:   %d/5\n", *req.FormalityTarget))
	}
	if len(req.Colors) > 0 {
		sb.WriteString(fmt.Sprintf("Colors:      %s\n", strings.Join(req.Colors, ", ")))
	}
	if len(req.Exclusions) > 0 {
		sb.WriteString(fmt.Sprintf("Exclusions:  %s\n", strings.Join(req.Exclusions, ", ")))
	}
	if req.Budget != nil {
		sb.WriteString(fmt.Sprintf("Budget:      %s\n", formatBudget(req.Budget)))
	}

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPreferences outputs a human-readable summary of the extracted preferences.
func (p *Printer) PrintPreferences(prefs *types.Preferences) {
	if prefs == nil {
		return
	}

	var sb strings.Builder
	if len(prefs.StyleCues) > 0 {
		sb.WriteString(fmt.Sprintf("Style cues:       %s\n", strings.Join(prefs.StyleCues, ", ")))
	}
	if prefs.Palette != "" {
		sb.WriteString(fmt.Sprintf("Palette:          %s\n", prefs.Palette))
	}
	if len(prefs.PreferredColors) > 0 {
		sb.WriteString(fmt.Sprintf("Preferred colors: %s\n", strings.Join(prefs.PreferredColors, ", ")))
	}
	if len(prefs.AvoidColors) > 0 {
		sb.WriteString(fmt.Sprintf("Avoid colors:     %s\n", strings.Join(prefs.AvoidColors, ", ")))
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "(no preferences extracted)"
	}
	p.printBox("EXTRACTED PREFERENCES", content)
}

// PrintCatalogSummary outputs item counts for the loaded catalog.
func (p *Printer) PrintCatalogSummary(cat *catalog.Catalog) {
	if cat == nil {
		return
	}

	items := cat.GetAllItems()
	counts := map[string]int{}
	var order []string
	for _, item := range items {
		c := strings.ToLower(item.Category)
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total items: %d\n", len(items)))
	if cat.SkippedRows > 0 {
		sb.WriteString(fmt.Sprintf("Skipped rows: %d\n", cat.SkippedRows))
	}
	for _, c := range order {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", c, counts[c]))
	}

	p.printBox("CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedOutfits outputs the top N ranked outfits with scores and summaries.
func (p *Printer) PrintRankedOutfits(outfits []types.Outfit) {
	if len(outfits) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total outfits ranked: %d\n\n", len(outfits)))

	count := min(len(outfits), maxItemsToShow)
	for i := 0; i < count; i++ {
		outfit := outfits[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, outfit.ID))
		if outfit.Score != nil {
			sb.WriteString(fmt.Sprintf("    Score: %.2f\n", *outfit.Score))
		}
		sb.WriteString(fmt.Sprintf("    %s\n", rendering.RenderOutfitSummary(outfit)))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(outfits) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more outfits", len(outfits)-maxItemsToShow))
	}

	p.printBox("RANKED OUTFITS", sb.String())
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func formatBudget(b *types.Budget) string {
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("$%.0f-$%.0f", *b.Min, *b.Max)
	case b.Max != nil:
		return fmt.Sprintf("under $%.0f", *b.Max)
	case b.Min != nil:
		return fmt.Sprintf("over $%.0f", *b.Min)
	default:
		return "—"
	}
}
