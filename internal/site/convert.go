// Package site holds the batch page maintenance operations: rebuilding
// existing article pages from the data file and generating pages that
// are missing.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mobius-kb/internal/kb"
	"mobius-kb/internal/render"
)

// ConvertReport summarizes one converter run.
type ConvertReport struct {
	Converted int
	Unmatched []string
}

// Convert overwrites every HTML file in dir that has a matching article
// record with the outline template rendered from that record. Only
// categories are searched: FAQ pages are skipped and reported like any
// other unmatched file, never rewritten. Previous page bodies of matched
// articles are discarded wholesale; the template is rebuilt from
// metadata only.
func Convert(db *kb.Database, dir string) (*ConvertReport, error) {
	report := &ConvertReport{}
	stems, err := existingStems(dir)
	if err != nil {
		return nil, err
	}
	for _, stem := range stems {
		a, ok := db.FindInCategories(stem)
		if !ok {
			fmt.Printf("⚠️  no record for page: %s.html\n", stem)
			report.Unmatched = append(report.Unmatched, stem)
			continue
		}
		doc, err := render.OutlinePage(a)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", stem, err)
		}
		path := filepath.Join(dir, stem+".html")
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("✅ converted: %s.html\n", stem)
		report.Converted++
	}
	return report, nil
}

// existingStems lists the filename stems of all .html files in dir, in
// sorted order. A missing directory means no pages exist yet.
func existingStems(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var stems []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		stems = append(stems, strings.TrimSuffix(e.Name(), ".html"))
	}
	return stems, nil
}
