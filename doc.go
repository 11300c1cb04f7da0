// Package main provides the edgeshard command-line interface.
//
// edgeshard turns a directory of quote corpora into a static, CDN-routable
// address space: every slot in a fixed hexadecimal namespace is assigned a
// record, written as its own compact JSON file, so an edge transform rule can
// map a random request onto a pseudo-random static file with no origin logic.
//
// The binary supports multiple subcommands:
//   - generate: size the address spaces and write the full output trees
//   - plan: report address-space sizing without writing anything
//   - sample: simulate edge picks against a generated tree
//   - seed: create a synthetic quote corpus for testing
//   - validate: check a generated tree for completeness and parseability
package main
