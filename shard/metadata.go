package shard

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/blueke/edgeshard/version"
)

// MetadataFileName is the run-metadata file written at the root of the
// full-set output tree. Its name cannot collide with a slot file because
// addresses are pure hex.
const MetadataFileName = "generation_metadata.json"

// Metadata records what one generation run produced. The validate and sample
// commands read it back to learn the tree's geometry.
type Metadata struct {
	GeneratorVersion string    `json:"generator_version"`
	GeneratedAt      time.Time `json:"generated_at"`
	ItemCount        int       `json:"item_count"`
	CategoryCount    int       `json:"category_count"`
	Categories       []string  `json:"categories"`
	DataDir          string    `json:"data_dir"`
	CategoriesDir    string    `json:"categories_dir"`
	Global           Plan      `json:"global"`
	Category         Plan      `json:"category"`
}

// NewMetadata assembles the run record for a loaded corpus, the run's
// configuration, and its two plans. The configured output directories are
// recorded so readers of the tree can locate the category trees without
// assuming a layout.
func NewMetadata(corpus *Corpus, cfg Config, global, category Plan) Metadata {
	return Metadata{
		GeneratorVersion: version.GetVersion(),
		GeneratedAt:      time.Now().UTC(),
		ItemCount:        len(corpus.All),
		CategoryCount:    len(corpus.Categories),
		Categories:       corpus.CategoryKeys(),
		DataDir:          cfg.DataDir,
		CategoriesDir:    cfg.CategoriesDir,
		Global:           global,
		Category:         category,
	}
}

func (m Metadata) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// LoadMetadata reads a run-metadata file back.
func LoadMetadata(path string) (Metadata, error) {
	var m Metadata
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading metadata %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing metadata %s: %w", path, err)
	}
	return m, nil
}
