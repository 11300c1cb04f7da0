package shard

import (
	"fmt"
	"strings"
)

// placeholderDomain is rendered when no target domain is configured.
const placeholderDomain = "api.yourdomain.com"

// RuleSet carries everything the edge transform-rule artifact needs: the
// chosen geometry of both address spaces, the URL path prefixes of the two
// output trees, and the category keys that actually produced output.
type RuleSet struct {
	TargetDomain   string
	DataPath       string
	CategoriesPath string
	Global         Plan
	Category       Plan
	Categories     []string
}

// Routable reports whether the rule expressions can actually address the
// generated trees. The random primitive is invoked only once per request, so
// the whole address must land in the file name: only flat trees (shard depth
// 0) are routable.
func (r RuleSet) Routable() bool {
	return r.Global.Depth == 0 && r.Category.Depth == 0
}

// Expression renders one edge rewrite expression. The random primitive is
// invoked exactly once per request, which is why the whole address has to fit
// in the file name (flat layout).
//
// For the full set the rewritten path is
//
//	<data path><width hex chars of uuidv4>.json
//
// and for a category request ?c=<key> it is
//
//	<categories path><key>/<width hex chars of uuidv4>.json
func (r RuleSet) Expression(category bool) string {
	parts := make([]string, 0, 4)
	if category {
		parts = append(parts,
			fmt.Sprintf("%q", r.CategoriesPath),
			"substring(http.request.uri.query, 2, 1)",
			`"/"`,
			fmt.Sprintf("substring(uuidv4(cf.random_seed), 0, %d)", r.Category.Width),
		)
	} else {
		parts = append(parts,
			fmt.Sprintf("%q", r.DataPath),
			fmt.Sprintf("substring(uuidv4(cf.random_seed), 0, %d)", r.Global.Width),
		)
	}
	parts = append(parts, `".json"`)
	return fmt.Sprintf("concat(%s)", strings.Join(parts, ", "))
}

// Render produces the full rule artifact text: a header, the match
// conditions, and the rewrite expression for the random and category rules,
// plus the list of category keys the category rule can serve.
func (r RuleSet) Render() string {
	domain := r.TargetDomain
	var b strings.Builder

	b.WriteString("=== Edge Transform Rules (Auto Generated) ===\n")
	if domain == "" {
		domain = placeholderDomain
		fmt.Fprintf(&b, "!!! IMPORTANT: Replace '%s' with your actual subdomain !!!\n\n", placeholderDomain)
	} else {
		fmt.Fprintf(&b, "Target Domain: %s\n\n", domain)
	}

	domainCheck := fmt.Sprintf("(http.host eq %q)", domain)

	fmt.Fprintf(&b, "[Rule 1: Random] (WIDTH=%d, SHARD=%d)\n", r.Global.Width, r.Global.Depth)
	fmt.Fprintf(&b, "Condition: %s and (http.request.uri.path eq \"/\") and (not http.request.uri.query contains \"c=\")\n", domainCheck)
	b.WriteString("Expression:\n")
	b.WriteString(r.Expression(false) + "\n\n")

	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	fmt.Fprintf(&b, "[Rule 2: Category] (WIDTH=%d, SHARD=%d)\n", r.Category.Width, r.Category.Depth)
	fmt.Fprintf(&b, "Condition: %s and (http.request.uri.path eq \"/\") and (http.request.uri.query contains \"c=\")\n", domainCheck)
	b.WriteString("Expression:\n")
	b.WriteString(r.Expression(true) + "\n\n")

	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(r.Categories, ", "))
	return b.String()
}
