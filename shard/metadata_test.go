package shard

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestMetadataSaveLoad(t *testing.T) {
	corpus := &Corpus{
		All: testItems("a", "b", "c"),
		Categories: map[string][]Item{
			"a": testItems("a"),
			"b": testItems("b", "c"),
		},
	}
	global := NewPlan(3, 4, DepthFlat)
	category := NewPlan(2, 3, DepthFlat)

	cfg := DefaultConfig()
	cfg.DataDir = "out/data"
	cfg.CategoriesDir = "out/categories"

	meta := NewMetadata(corpus, cfg, global, category)
	if meta.ItemCount != 3 || meta.CategoryCount != 2 {
		t.Fatalf("NewMetadata() counts = %d/%d, want 3/2", meta.ItemCount, meta.CategoryCount)
	}
	if !reflect.DeepEqual(meta.Categories, []string{"a", "b"}) {
		t.Fatalf("Categories = %v, want [a b]", meta.Categories)
	}
	if meta.DataDir != "out/data" || meta.CategoriesDir != "out/categories" {
		t.Fatalf("output dirs = %q/%q, want out/data and out/categories", meta.DataDir, meta.CategoriesDir)
	}

	path := filepath.Join(t.TempDir(), MetadataFileName)
	if err := meta.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata() error = %v", err)
	}
	if loaded.Global != global {
		t.Errorf("Global = %+v, want %+v", loaded.Global, global)
	}
	if loaded.Category != category {
		t.Errorf("Category = %+v, want %+v", loaded.Category, category)
	}
	// A reader of the tree can locate the category trees from the
	// metadata alone.
	if loaded.CategoriesDir != "out/categories" {
		t.Errorf("CategoriesDir = %q, want out/categories", loaded.CategoriesDir)
	}
}

func TestLoadMetadataMissing(t *testing.T) {
	if _, err := LoadMetadata(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadMetadata() expected error for missing file")
	}
}
