// Package shard implements the core of the edgeshard generator: sizing a
// hexadecimal address space for a quote corpus and filling every slot in it
// with a record.
//
// The generator works in two phases. The capacity planner picks the smallest
// hex address width whose capacity (16^width) covers the item count, floored
// at a configured minimum, and derives a directory shard depth from a policy.
// The bucket filler then assigns every address in the space to an item by
// cycling the input list (Fill-Full: no address the edge router can generate
// ever resolves to a missing file) and persists one compact JSON file per
// address.
//
// Key Components:
//
// Capacity Planning:
//   - PlanWidth and NewPlan size the address space by integer comparison
//   - DepthPolicy selects flat or nested directory layouts
//
// Bucket Filling:
//   - Fill builds the total address -> item mapping
//   - WriteTree persists the mapping, sequentially or with a worker pool
//
// Corpus Loading:
//   - LoadCorpus reads a directory of per-category JSON arrays and builds
//     the full dataset plus one subset per category
//
// Rule Rendering:
//   - RuleSet renders the edge transform-rule artifact that routes random
//     requests into the generated trees
//
// All configuration is passed in as values; the package holds no process-wide
// state, so the full-set and per-category profiles can run back to back with
// different parameters.
package shard
