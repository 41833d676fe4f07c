package site

import (
	"fmt"
	"os"
	"path/filepath"

	"mobius-kb/internal/kb"
	"mobius-kb/internal/render"
)

// GenerateReport summarizes one generator run.
type GenerateReport struct {
	Discovered int
	Existing   int
	Missing    int
	Generated  int
}

// Generate writes an article page for every record that has no HTML file
// yet. Existing files are never touched. The output directory is created
// if absent.
func Generate(db *kb.Database, dir string) (*GenerateReport, error) {
	report := &GenerateReport{}

	stems, err := existingStems(dir)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(stems))
	for _, s := range stems {
		existing[s] = true
	}
	report.Existing = len(stems)

	var missing []kb.Article
	for _, cat := range db.CategoryNames() {
		for _, a := range db.Categories[cat] {
			report.Discovered++
			if !existing[a.ID] {
				missing = append(missing, a)
			}
		}
	}
	for _, cat := range db.FAQCategoryNames() {
		for _, f := range db.FAQs[cat] {
			report.Discovered++
			if !existing[f.ID] {
				missing = append(missing, f)
			}
		}
	}
	report.Missing = len(missing)

	if len(missing) == 0 {
		return report, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	for _, a := range missing {
		doc, err := render.ArticlePage(a)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", a.ID, err)
		}
		path := filepath.Join(dir, a.ID+".html")
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("✅ generated: %s\n", path)
		report.Generated++
	}
	return report, nil
}
