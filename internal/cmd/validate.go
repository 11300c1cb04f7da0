package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blueke/edgeshard/shard"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates and returns the validate subcommand for the
// edgeshard CLI. It checks a generated tree for address-space completeness
// and record parseability.
func NewValidateCmd() *cobra.Command {
	var (
		treePath string
		width    int
		depth    int
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a generated tree for completeness and consistency",
		Long: `Validate that a generated output tree covers its whole address space.

Checks that every address from 0 to 16^width-1 is present exactly once at
the path its shard depth dictates, and that every slot file holds valid
JSON. The geometry is read from the tree's generation metadata; pass
--width (and --depth) explicitly to validate a category tree, which
carries no metadata of its own.`,
		Run: func(cmd *cobra.Command, args []string) {
			runValidate(treePath, width, depth, verbose)
		},
	}

	cmd.Flags().StringVarP(&treePath, "path", "p", "", "Path to the output tree to validate (required)")
	cmd.Flags().IntVar(&width, "width", 0, "Address width (default: from generation metadata)")
	cmd.Flags().IntVar(&depth, "depth", 0, "Shard depth (used with --width)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runValidate(treePath string, width, depth int, verbose bool) {
	if _, err := os.Stat(treePath); os.IsNotExist(err) {
		log.Fatalf("Tree does not exist: %s", treePath)
	}

	plan := shard.Plan{Width: width, Depth: depth, Capacity: shard.Capacity(width)}
	if width == 0 {
		meta, err := shard.LoadMetadata(filepath.Join(treePath, shard.MetadataFileName))
		if err != nil {
			log.Fatalf("No --width given and metadata unreadable: %v", err)
		}
		plan = meta.Global
	}

	if verbose {
		fmt.Printf("Validating %s (width %d, depth %d, %d slots)\n", treePath, plan.Width, plan.Depth, plan.Capacity)
	}

	seen := make([]bool, plan.Capacity)
	var problems, found int

	err := filepath.WalkDir(treePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != shard.FileExt {
			return nil
		}
		if filepath.Base(path) == shard.MetadataFileName {
			return nil
		}

		rel, err := filepath.Rel(treePath, path)
		if err != nil {
			return err
		}
		addrStr := shard.AddressFromPath(rel)
		addr, convErr := strconv.ParseUint(addrStr, 16, 64)
		if convErr != nil || len(addrStr) != plan.Width || addrStr != strings.ToLower(addrStr) {
			problems++
			fmt.Printf("  - unexpected file name: %s\n", rel)
			return nil
		}
		if int(addr) >= plan.Capacity {
			problems++
			fmt.Printf("  - address out of range: %s\n", addrStr)
			return nil
		}
		if seen[addr] {
			problems++
			fmt.Printf("  - duplicate address: %s\n", addrStr)
			return nil
		}
		seen[addr] = true
		found++

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !json.Valid(data) {
			problems++
			fmt.Printf("  - invalid JSON at address %s\n", addrStr)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error walking tree: %v", err)
	}

	missing := 0
	for addr, ok := range seen {
		if ok {
			continue
		}
		missing++
		if missing <= 10 {
			fmt.Printf("  - missing address: %s\n", shard.FormatAddress(addr, plan.Width))
		}
	}
	if missing > 10 {
		fmt.Printf("  ... and %d more missing addresses\n", missing-10)
	}

	fmt.Printf("Checked %d/%d slots: %d problems, %d missing\n", found, plan.Capacity, problems, missing)
	if problems > 0 || missing > 0 {
		os.Exit(1)
	}
	fmt.Println("Tree is complete and consistent.")
}
