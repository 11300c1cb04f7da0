package cmd

import (
	"github.com/blueke/edgeshard/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the edgeshard
// CLI. It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "edgeshard",
		Short: "edgeshard - shard a quote corpus into a CDN-routable static address space",
		Long: `edgeshard partitions a corpus of quote records across a fixed hexadecimal
address space of static JSON files, so an edge transform rule can route a
random request onto a pseudo-random file with no origin server involved.

Every address in the space resolves to a record: the generator cycles the
item list until the space is full, so no pick the edge router can make
returns "not found".

Use subcommands to perform different operations:
  - generate: size the address spaces and write the output trees and rules
  - plan: report the sizing for a corpus without writing anything
  - sample: simulate random edge picks against a generated tree
  - seed: create a synthetic quote corpus for testing
  - validate: check a generated tree for completeness`,
		Version: version.GetFullVersion(),
	}

	groupGeneration := "generation"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupGeneration,
		Title: "Generation Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	generateCmd := NewGenerateCmd()
	planCmd := NewPlanCmd()
	sampleCmd := NewSampleCmd()
	seedCmd := NewSeedCmd()
	validateCmd := NewValidateCmd()

	generateCmd.GroupID = groupGeneration
	planCmd.GroupID = groupGeneration
	sampleCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	validateCmd.GroupID = groupUtilities

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(validateCmd)

	return rootCmd
}
