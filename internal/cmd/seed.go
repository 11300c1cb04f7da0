package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// seedQuote is the shape of one synthetic record. Real corpora can use any
// shape; the generator never looks inside.
type seedQuote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	From     string `json:"from"`
	Category string `json:"category"`
}

// NewSeedCmd creates and returns the seed subcommand for the edgeshard CLI.
// It generates a synthetic quote corpus for testing the generator.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		quoteCount int
		catCount   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic quote corpus for testing",
		Long: `Generate a source directory of per-category JSON array files filled with
synthetic quotes.

Each quote gets a UUID identity and is assigned to a category by hashing
that identity, so reruns with fresh UUIDs still spread quotes across all
categories. Category files are named with single letters, matching the
one-character category keys the category rule extracts from the query
string.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, quoteCount, catCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the source directory to create (required)")
	cmd.Flags().IntVarP(&quoteCount, "count", "n", 1000, "Number of quotes to generate")
	cmd.Flags().IntVar(&catCount, "categories", 6, "Number of categories to spread quotes across (max 26)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, quoteCount, catCount int, verbose bool) {
	if catCount < 1 || catCount > 26 {
		log.Fatalf("Category count must be between 1 and 26, got %d", catCount)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	keys := make([]string, catCount)
	for i := range keys {
		keys[i] = string(rune('a' + i))
	}

	if verbose {
		fmt.Printf("Generating %d quotes across %d categories in %s\n", quoteCount, catCount, outputPath)
	}

	byCategory := make(map[string][]seedQuote, catCount)
	for i := 0; i < quoteCount; i++ {
		id := uuid.New().String()
		key := keys[colorhash.HashString(id)%catCount]
		byCategory[key] = append(byCategory[key], seedQuote{
			ID:       id,
			Text:     fmt.Sprintf("Synthetic quote %d: %s", i, id),
			From:     "edgeshard seed",
			Category: key,
		})
	}

	for _, key := range keys {
		quotes := byCategory[key]
		if len(quotes) == 0 {
			continue
		}
		data, err := json.MarshalIndent(quotes, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode category %s: %v", key, err)
		}
		path := filepath.Join(outputPath, key+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		if verbose {
			fmt.Printf("  %s: %d quotes\n", path, len(quotes))
		}
	}

	if verbose {
		fmt.Printf("Successfully created %d quotes\n", quoteCount)
	}
}
