package shard

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Item is one opaque quote record. The generator moves items between files
// and never inspects or mutates their contents.
type Item = json.RawMessage

// Corpus is the loaded source data: the full ordered item list plus the
// per-category subsets. Categories that contributed no items are absent.
type Corpus struct {
	All        []Item
	Categories map[string][]Item
}

// CategoryKeys returns the non-empty category names in sorted order, so that
// downstream output (trees, rule text) is reproducible run to run.
func (c *Corpus) CategoryKeys() []string {
	keys := make([]string, 0, len(c.Categories))
	for key := range c.Categories {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MaxCategoryLen returns the item count of the largest category. The category
// address space is sized from this single count and shared by every category,
// keeping routing parameters uniform regardless of which category a request
// names.
func (c *Corpus) MaxCategoryLen() int {
	max := 0
	for _, items := range c.Categories {
		if len(items) > max {
			max = len(items)
		}
	}
	return max
}

// LoadCorpus reads every *.json file in dir. Each file must hold an array of
// records; the file's base name is the category key. Files that cannot be
// read or parsed are logged and skipped, and the rest of the run continues.
// Files are visited in name order, so the full-set item order is
// deterministic.
func LoadCorpus(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading source directory %s: %w", dir, err)
	}

	corpus := &Corpus{Categories: make(map[string][]Item)}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != FileExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		var items []Item
		if err := json.Unmarshal(data, &items); err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}
		if len(items) == 0 {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), FileExt)
		corpus.Categories[key] = append(corpus.Categories[key], items...)
		corpus.All = append(corpus.All, items...)
	}
	return corpus, nil
}
