// Package cmd provides the command-line interface implementation for edgeshard.
//
// It uses the Cobra library for command structure and Fang for styling. Each
// command lives in its own file with a constructor returning a
// *cobra.Command:
//   - root: main command coordinator
//   - generate: full generation run (plan, fill, rules, metadata)
//   - plan: address-space sizing report without writing
//   - sample: simulate edge picks against a generated tree
//   - seed: synthetic quote corpus generation for testing
//   - validate: completeness and consistency checking of output trees
//
// Core generation logic lives in the shard package; this package only wires
// flags, config files, and reporting around it.
package cmd
