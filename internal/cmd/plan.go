package cmd

import (
	"fmt"
	"log"

	"github.com/blueke/edgeshard/shard"
	"github.com/spf13/cobra"
)

// NewPlanCmd creates and returns the plan subcommand for the edgeshard CLI.
// It reports address-space sizing without writing any output.
func NewPlanCmd() *cobra.Command {
	var (
		sourceDir   string
		count       int
		minWidth    int
		catMinWidth int
		depthPolicy string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Report address-space sizing for a corpus",
		Long: `Report the address width, shard depth, and capacity that generate would
choose, without touching the filesystem.

With --count the report covers a single hypothetical corpus of that size.
With --source the actual corpus is loaded and both the full-set and the
shared category space are reported.`,
		Run: func(cmd *cobra.Command, args []string) {
			runPlan(sourceDir, count, minWidth, catMinWidth, depthPolicy)
		},
	}

	cmd.Flags().StringVarP(&sourceDir, "source", "s", "", "Directory of per-category JSON array files")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Plan for an explicit item count instead of a source directory")
	cmd.Flags().IntVar(&minWidth, "min-width", 4, "Address-width floor for the full set")
	cmd.Flags().IntVar(&catMinWidth, "category-min-width", 3, "Address-width floor for the category spaces")
	cmd.Flags().StringVar(&depthPolicy, "depth-policy", "flat", "Directory sharding policy: flat or nested")

	return cmd
}

func runPlan(sourceDir string, count, minWidth, catMinWidth int, depthPolicy string) {
	policy, err := shard.ParseDepthPolicy(depthPolicy)
	if err != nil {
		log.Fatalf("Invalid depth policy: %v", err)
	}

	if count > 0 {
		printPlan("Plan", count, shard.NewPlan(count, minWidth, policy))
		return
	}
	if sourceDir == "" {
		log.Fatalf("Either --source or --count is required")
	}

	corpus, err := shard.LoadCorpus(sourceDir)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	if len(corpus.All) == 0 {
		fmt.Printf("%v under %s\n", shard.ErrEmptyCorpus, sourceDir)
		return
	}

	printPlan("Full set", len(corpus.All), shard.NewPlan(len(corpus.All), minWidth, policy))
	printPlan("Categories (shared)", corpus.MaxCategoryLen(), shard.NewPlan(corpus.MaxCategoryLen(), catMinWidth, policy))
	fmt.Printf("Category keys: %v\n", corpus.CategoryKeys())
}

func printPlan(label string, count int, plan shard.Plan) {
	fmt.Printf("%s: %d items\n", label, count)
	fmt.Printf("  Width: %d hex digits\n", plan.Width)
	fmt.Printf("  Shard depth: %d\n", plan.Depth)
	fmt.Printf("  Capacity: %d slots (%.1fx headroom)\n", plan.Capacity, float64(plan.Capacity)/float64(count))
}
