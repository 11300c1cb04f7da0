package shard

import (
	"errors"
	"testing"
)

func TestPlanWidth(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		minWidth int
		want     int
	}{
		{
			name:     "zero items returns floor",
			count:    0,
			minWidth: 4,
			want:     4,
		},
		{
			name:     "single item returns floor",
			count:    1,
			minWidth: 4,
			want:     4,
		},
		{
			name:     "single item with zero floor",
			count:    1,
			minWidth: 0,
			want:     0,
		},
		{
			name:     "15 items fit one digit",
			count:    15,
			minWidth: 0,
			want:     1,
		},
		{
			name:     "16 items still fit one digit",
			count:    16,
			minWidth: 0,
			want:     1,
		},
		{
			name:     "17 items need two digits",
			count:    17,
			minWidth: 0,
			want:     2,
		},
		{
			name:     "60000 items fit the default floor",
			count:    60000,
			minWidth: 4,
			want:     4,
		},
		{
			name:     "65536 items exactly fill width 4",
			count:    65536,
			minWidth: 4,
			want:     4,
		},
		{
			name:     "65537 items overflow to width 5",
			count:    65537,
			minWidth: 4,
			want:     5,
		},
		{
			name:     "70000 items need width 5",
			count:    70000,
			minWidth: 4,
			want:     5,
		},
		{
			name:     "small corpus keeps the category floor",
			count:    120,
			minWidth: 3,
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanWidth(tt.count, tt.minWidth)
			if got != tt.want {
				t.Errorf("PlanWidth(%d, %d) = %d, want %d", tt.count, tt.minWidth, got, tt.want)
			}
		})
	}
}

func TestPlanWidthInvariants(t *testing.T) {
	for count := 1; count <= 70000; count += 97 {
		for minWidth := 0; minWidth <= 5; minWidth++ {
			width := PlanWidth(count, minWidth)
			if width < minWidth {
				t.Fatalf("PlanWidth(%d, %d) = %d, below floor", count, minWidth, width)
			}
			if Capacity(width) < count {
				t.Fatalf("PlanWidth(%d, %d) = %d, capacity %d too small", count, minWidth, width, Capacity(width))
			}
			// Minimality: the width is never one larger than needed
			// unless the floor forces it.
			if width > minWidth && Capacity(width-1) >= count {
				t.Fatalf("PlanWidth(%d, %d) = %d, but width %d already suffices", count, minWidth, width, width-1)
			}
		}
	}
}

func TestShardDepth(t *testing.T) {
	tests := []struct {
		name   string
		policy DepthPolicy
		width  int
		want   int
	}{
		{name: "flat always zero", policy: DepthFlat, width: 5, want: 0},
		{name: "flat at small width", policy: DepthFlat, width: 1, want: 0},
		{name: "nested caps fan-out", policy: DepthNested, width: 5, want: 2},
		{name: "nested at boundary width", policy: DepthNested, width: 3, want: 0},
		{name: "nested below boundary", policy: DepthNested, width: 2, want: 0},
		{name: "nested at width 4", policy: DepthNested, width: 4, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.policy.ShardDepth(tt.width)
			if got != tt.want {
				t.Errorf("%v.ShardDepth(%d) = %d, want %d", tt.policy, tt.width, got, tt.want)
			}
		})
	}
}

func TestParseDepthPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    DepthPolicy
		wantErr bool
	}{
		{input: "flat", want: DepthFlat},
		{input: "", want: DepthFlat},
		{input: "nested", want: DepthNested},
		{input: "deep", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseDepthPolicy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPolicy) {
					t.Errorf("ParseDepthPolicy(%q) error = %v, want ErrUnknownPolicy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDepthPolicy(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDepthPolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewPlan(t *testing.T) {
	plan := NewPlan(70000, 4, DepthNested)
	if plan.Width != 5 {
		t.Errorf("Width = %d, want 5", plan.Width)
	}
	if plan.Depth != 2 {
		t.Errorf("Depth = %d, want 2", plan.Depth)
	}
	if plan.Capacity != 1048576 {
		t.Errorf("Capacity = %d, want 1048576", plan.Capacity)
	}
}
