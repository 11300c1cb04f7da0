package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/blueke/edgeshard/shard"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates and returns the generate subcommand for the
// edgeshard CLI. It runs the full generation pipeline: corpus load, capacity
// planning, bucket filling, rule rendering, and run metadata.
func NewGenerateCmd() *cobra.Command {
	var (
		configPath string
		flagCfg    = shard.DefaultConfig()
		verbose    bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the sharded output trees and edge rules",
		Long: `Generate the full static address space from a source corpus.

Reads every category file under the source directory, sizes one address
space for the full set and one shared space for the categories, replaces
both output trees destructively, fills every address by cycling the item
list, and writes the edge transform-rule artifact.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := flagCfg
			if configPath != "" {
				loaded, err := shard.LoadConfig(configPath)
				if err != nil {
					log.Fatalf("Failed to load config: %v", err)
				}
				cfg = loaded
				applyFlagOverrides(cmd, &cfg, flagCfg)
			}
			runGenerate(cfg, verbose, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file (flags override file values)")
	cmd.Flags().StringVarP(&flagCfg.SourceDir, "source", "s", flagCfg.SourceDir, "Directory of per-category JSON array files")
	cmd.Flags().StringVar(&flagCfg.DataDir, "data", flagCfg.DataDir, "Output directory for the full-set tree")
	cmd.Flags().StringVar(&flagCfg.CategoriesDir, "categories", flagCfg.CategoriesDir, "Output directory for the per-category trees")
	cmd.Flags().StringVar(&flagCfg.RulesFile, "rules", flagCfg.RulesFile, "Path of the rendered rule artifact")
	cmd.Flags().StringVar(&flagCfg.TargetDomain, "domain", flagCfg.TargetDomain, "Target domain for the rule conditions")
	cmd.Flags().IntVar(&flagCfg.MinWidth, "min-width", flagCfg.MinWidth, "Address-width floor for the full set")
	cmd.Flags().IntVar(&flagCfg.CategoryMinWidth, "category-min-width", flagCfg.CategoryMinWidth, "Address-width floor for the category spaces")
	cmd.Flags().StringVar(&flagCfg.DepthPolicy, "depth-policy", flagCfg.DepthPolicy, "Directory sharding policy: flat or nested")
	cmd.Flags().BoolVar(&flagCfg.PackAsList, "pack-as-list", flagCfg.PackAsList, "Wrap each record in a one-element JSON array")
	cmd.Flags().IntVarP(&flagCfg.Workers, "workers", "w", flagCfg.Workers, "Concurrent slot writers (<=1 writes sequentially)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the plan without writing anything")

	return cmd
}

// applyFlagOverrides copies explicitly set flag values over a file-loaded
// config, so the precedence is flags > file > defaults.
func applyFlagOverrides(cmd *cobra.Command, dst *shard.Config, flagCfg shard.Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		dst.SourceDir = flagCfg.SourceDir
	}
	if flags.Changed("data") {
		dst.DataDir = flagCfg.DataDir
	}
	if flags.Changed("categories") {
		dst.CategoriesDir = flagCfg.CategoriesDir
	}
	if flags.Changed("rules") {
		dst.RulesFile = flagCfg.RulesFile
	}
	if flags.Changed("domain") {
		dst.TargetDomain = flagCfg.TargetDomain
	}
	if flags.Changed("min-width") {
		dst.MinWidth = flagCfg.MinWidth
	}
	if flags.Changed("category-min-width") {
		dst.CategoryMinWidth = flagCfg.CategoryMinWidth
	}
	if flags.Changed("depth-policy") {
		dst.DepthPolicy = flagCfg.DepthPolicy
	}
	if flags.Changed("pack-as-list") {
		dst.PackAsList = flagCfg.PackAsList
	}
	if flags.Changed("workers") {
		dst.Workers = flagCfg.Workers
	}
}

func runGenerate(cfg shard.Config, verbose, dryRun bool) {
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	policy, _ := cfg.Policy()

	if _, err := os.Stat(cfg.SourceDir); os.IsNotExist(err) {
		log.Fatalf("Source directory does not exist: %s", cfg.SourceDir)
	}

	if verbose {
		fmt.Printf("Loading corpus from %s\n", cfg.SourceDir)
	}
	corpus, err := shard.LoadCorpus(cfg.SourceDir)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	if len(corpus.All) == 0 {
		log.Printf("%v (source %s); exiting without output", shard.ErrEmptyCorpus, cfg.SourceDir)
		return
	}

	globalPlan := shard.NewPlan(len(corpus.All), cfg.MinWidth, policy)
	categoryPlan := shard.NewPlan(corpus.MaxCategoryLen(), cfg.CategoryMinWidth, policy)

	fmt.Printf("[Full Set] Items: %d\n", len(corpus.All))
	fmt.Printf("  -> Width: %d (capacity %d), shard depth: %d\n", globalPlan.Width, globalPlan.Capacity, globalPlan.Depth)
	fmt.Printf("[Categories] %d categories, largest: %d items\n", len(corpus.Categories), corpus.MaxCategoryLen())
	fmt.Printf("  -> Width: %d (capacity %d), shard depth: %d\n", categoryPlan.Width, categoryPlan.Capacity, categoryPlan.Depth)

	if dryRun {
		fmt.Println("DRY RUN - no changes will be made")
		fmt.Printf("Would write %d files to %s\n", globalPlan.Capacity, cfg.DataDir)
		for _, key := range corpus.CategoryKeys() {
			fmt.Printf("Would write %d files to %s\n", categoryPlan.Capacity, filepath.Join(cfg.CategoriesDir, key))
		}
		return
	}

	// Destructive replace: each run fully recomputes both output trees.
	for _, dir := range []string{cfg.DataDir, cfg.CategoriesDir} {
		if err := os.RemoveAll(dir); err != nil {
			log.Fatalf("Failed to clear output directory %s: %v", dir, err)
		}
	}

	opts := shard.WriteOptions{PackAsList: cfg.PackAsList, Workers: cfg.Workers}
	if verbose {
		opts.Progress = func(done, total int) {
			fmt.Printf("  progress: %d/%d\n", done, total)
		}
	}

	if verbose {
		fmt.Printf("Writing full set to %s\n", cfg.DataDir)
	}
	if _, err := shard.WriteTree(cfg.DataDir, corpus.All, globalPlan, opts); err != nil {
		log.Fatalf("Failed to write full set: %v", err)
	}

	for _, key := range corpus.CategoryKeys() {
		if verbose {
			fmt.Printf("Writing category %s (%d items)\n", key, len(corpus.Categories[key]))
		}
		dir := filepath.Join(cfg.CategoriesDir, key)
		if _, err := shard.WriteTree(dir, corpus.Categories[key], categoryPlan, opts); err != nil {
			log.Fatalf("Failed to write category %s: %v", key, err)
		}
	}

	rules := shard.RuleSet{
		TargetDomain:   cfg.TargetDomain,
		DataPath:       urlPrefix(cfg.DataDir),
		CategoriesPath: urlPrefix(cfg.CategoriesDir),
		Global:         globalPlan,
		Category:       categoryPlan,
		Categories:     corpus.CategoryKeys(),
	}
	if rules.Routable() {
		if err := os.WriteFile(cfg.RulesFile, []byte(rules.Render()), 0644); err != nil {
			log.Fatalf("Failed to write rules file: %v", err)
		}
	} else {
		log.Printf("Warning: skipping %s: the edge rule can only route flat trees (shard depth %d/%d)",
			cfg.RulesFile, globalPlan.Depth, categoryPlan.Depth)
	}

	meta := shard.NewMetadata(corpus, cfg, globalPlan, categoryPlan)
	if err := meta.Save(filepath.Join(cfg.DataDir, shard.MetadataFileName)); err != nil {
		log.Printf("Warning: Failed to write metadata: %v", err)
	}

	fmt.Printf("Generation complete!\n")
	fmt.Printf("  Records: %d across %d categories\n", len(corpus.All), len(corpus.Categories))
	fmt.Printf("  Full set: %d files under %s\n", globalPlan.Capacity, cfg.DataDir)
	fmt.Printf("  Category trees: %d under %s (%d files each)\n", len(corpus.Categories), cfg.CategoriesDir, categoryPlan.Capacity)
	if rules.Routable() {
		fmt.Printf("  Rules: %s\n", cfg.RulesFile)
	}
}

// urlPrefix derives the URL path prefix the edge rule rewrites to from an
// output directory, e.g. "out/data" -> "/data/".
func urlPrefix(dir string) string {
	return "/" + filepath.Base(filepath.Clean(dir)) + "/"
}
