package shard

import "fmt"

// DepthPolicy selects how many leading hex digits of an address are promoted
// to nested directory levels.
type DepthPolicy int

const (
	// DepthFlat keeps every file directly under the base directory.
	// Required when the routing target can only invoke its random
	// primitive once per request, so the entire address must land in the
	// file name.
	DepthFlat DepthPolicy = iota

	// DepthNested promotes width-3 leading digits to directories, capping
	// per-directory fan-out at 16^3 = 4096 files.
	DepthNested
)

// ParseDepthPolicy maps a configuration string onto a DepthPolicy.
// The empty string defaults to DepthFlat.
func ParseDepthPolicy(s string) (DepthPolicy, error) {
	switch s {
	case "", "flat":
		return DepthFlat, nil
	case "nested":
		return DepthNested, nil
	}
	return DepthFlat, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

func (p DepthPolicy) String() string {
	if p == DepthNested {
		return "nested"
	}
	return "flat"
}

// ShardDepth returns the number of directory levels the policy derives from
// the chosen address width.
func (p DepthPolicy) ShardDepth(width int) int {
	if p == DepthNested && width > 3 {
		return width - 3
	}
	return 0
}

// PlanWidth returns the number of hex digits needed to address itemCount
// items, never below minWidth. The result is the smallest w with
// 16^w >= itemCount; an item count exactly at a power-of-16 boundary keeps
// the lower width. Sizing is decided by integer multiplication because
// floating-point logarithms misround near exact powers of 16.
func PlanWidth(itemCount, minWidth int) int {
	if itemCount <= 0 {
		return minWidth
	}
	width := 0
	for capacity := 1; capacity < itemCount; capacity *= 16 {
		width++
	}
	if width < minWidth {
		return minWidth
	}
	return width
}

// A Plan fixes the geometry of one output tree: how many hex digits name a
// slot, how many of them become directories, and the resulting slot count.
type Plan struct {
	Width    int `json:"width"`
	Depth    int `json:"shard_depth"`
	Capacity int `json:"capacity"`
}

// NewPlan sizes an address space for itemCount items with the given width
// floor and depth policy.
func NewPlan(itemCount, minWidth int, policy DepthPolicy) Plan {
	width := PlanWidth(itemCount, minWidth)
	return Plan{
		Width:    width,
		Depth:    policy.ShardDepth(width),
		Capacity: Capacity(width),
	}
}
