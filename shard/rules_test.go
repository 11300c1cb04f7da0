package shard

import (
	"strings"
	"testing"
)

func testRuleSet() RuleSet {
	return RuleSet{
		TargetDomain:   "quotes.example.com",
		DataPath:       "/data/",
		CategoriesPath: "/categories/",
		Global:         Plan{Width: 4, Depth: 0, Capacity: 65536},
		Category:       Plan{Width: 3, Depth: 0, Capacity: 4096},
		Categories:     []string{"a", "b", "d"},
	}
}

func TestExpression(t *testing.T) {
	rules := testRuleSet()

	global := rules.Expression(false)
	want := `concat("/data/", substring(uuidv4(cf.random_seed), 0, 4), ".json")`
	if global != want {
		t.Errorf("Expression(false) = %s, want %s", global, want)
	}

	category := rules.Expression(true)
	want = `concat("/categories/", substring(http.request.uri.query, 2, 1), "/", substring(uuidv4(cf.random_seed), 0, 3), ".json")`
	if category != want {
		t.Errorf("Expression(true) = %s, want %s", category, want)
	}
}

func TestRender(t *testing.T) {
	text := testRuleSet().Render()

	for _, want := range []string{
		`Target Domain: quotes.example.com`,
		`(http.host eq "quotes.example.com")`,
		`[Rule 1: Random] (WIDTH=4, SHARD=0)`,
		`[Rule 2: Category] (WIDTH=3, SHARD=0)`,
		`not http.request.uri.query contains "c="`,
		`Categories: a, b, d`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Render() missing %q\nrendered:\n%s", want, text)
		}
	}

	// Category c contributed nothing and must not be advertised.
	if strings.Contains(text, "Categories: a, b, c") {
		t.Error("Render() lists an excluded category")
	}
}

func TestRoutable(t *testing.T) {
	tests := []struct {
		name          string
		globalDepth   int
		categoryDepth int
		want          bool
	}{
		{name: "both flat", globalDepth: 0, categoryDepth: 0, want: true},
		{name: "nested full set", globalDepth: 2, categoryDepth: 0, want: false},
		{name: "nested categories", globalDepth: 0, categoryDepth: 1, want: false},
		{name: "both nested", globalDepth: 2, categoryDepth: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := testRuleSet()
			rules.Global.Depth = tt.globalDepth
			rules.Category.Depth = tt.categoryDepth
			if got := rules.Routable(); got != tt.want {
				t.Errorf("Routable() with depths %d/%d = %v, want %v", tt.globalDepth, tt.categoryDepth, got, tt.want)
			}
		})
	}
}

func TestRenderPlaceholderDomain(t *testing.T) {
	rules := testRuleSet()
	rules.TargetDomain = ""
	text := rules.Render()

	if !strings.Contains(text, placeholderDomain) {
		t.Errorf("Render() without domain should fall back to %q", placeholderDomain)
	}
	if !strings.Contains(text, "IMPORTANT") {
		t.Error("Render() without domain should warn about the placeholder")
	}
}
