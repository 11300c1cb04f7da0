package cmd

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/blueke/edgeshard/shard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSampleCmd creates and returns the sample subcommand for the edgeshard
// CLI. It simulates the edge router's random pick against a generated tree.
func NewSampleCmd() *cobra.Command {
	var (
		dataDir       string
		categoriesDir string
		category      string
		count         int
		show          bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Simulate random edge picks against a generated tree",
		Long: `Simulate what the edge rule does at request time: generate a UUIDv4,
take its leading hex digits as an address, and resolve the slot file.

Every pick must hit an existing file; a miss means the tree is incomplete.
The tree's geometry is read from its generation metadata. With --category
the pick is resolved against that category's tree using the shared
category geometry; the category root comes from the metadata's recorded
categories_dir unless --categories overrides it.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSample(dataDir, categoriesDir, category, count, show)
		},
	}

	cmd.Flags().StringVarP(&dataDir, "data", "d", "", "Path to the full-set output tree (required)")
	cmd.Flags().StringVar(&categoriesDir, "categories", "", "Root of the per-category trees (default: from generation metadata)")
	cmd.Flags().StringVar(&category, "category", "", "Sample from this category's tree instead of the full set")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of picks to simulate")
	cmd.Flags().BoolVar(&show, "show", false, "Print each resolved record")

	cmd.MarkFlagRequired("data")

	return cmd
}

// addressFromUUID derives a slot address the way the edge rule does: the
// first width characters of the UUID's 32-digit hex form.
func addressFromUUID(u uuid.UUID, width int) string {
	return hex.EncodeToString(u[:])[:width]
}

func runSample(dataDir, categoriesDir, category string, count int, show bool) {
	meta, err := shard.LoadMetadata(filepath.Join(dataDir, shard.MetadataFileName))
	if err != nil {
		log.Fatalf("Failed to read tree metadata: %v", err)
	}

	plan := meta.Global
	baseDir := dataDir
	if category != "" {
		plan = meta.Category
		catRoot := categoriesDir
		if catRoot == "" {
			catRoot = meta.CategoriesDir
		}
		if catRoot == "" {
			log.Fatalf("Category tree location unknown; pass --categories")
		}
		baseDir = filepath.Join(catRoot, category)
		if _, err := os.Stat(baseDir); os.IsNotExist(err) {
			log.Fatalf("Category tree does not exist: %s", baseDir)
		}
	}
	if plan.Width > 32 {
		log.Fatalf("Address width %d exceeds a UUID's 32 hex digits", plan.Width)
	}

	misses := 0
	for i := 0; i < count; i++ {
		addr := addressFromUUID(uuid.New(), plan.Width)
		path := shard.FilePath(baseDir, addr, plan.Depth)
		data, err := os.ReadFile(path)
		if err != nil {
			misses++
			fmt.Printf("MISS %s -> %s (%v)\n", addr, path, err)
			continue
		}
		if show {
			fmt.Printf("%s -> %s\n", addr, data)
		} else {
			fmt.Printf("%s -> %s (%d bytes)\n", addr, path, len(data))
		}
	}

	if misses > 0 {
		log.Fatalf("%d/%d picks missed; the tree does not cover its address space", misses, count)
	}
	fmt.Printf("All %d picks resolved.\n", count)
}
