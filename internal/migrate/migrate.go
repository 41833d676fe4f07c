// Package migrate implements the id standardization routine: rewriting
// ids in the data file, renaming the matching HTML pages, and checking
// referential integrity afterwards.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mobius-kb/internal/config"
	kberrors "mobius-kb/internal/errors"
	"mobius-kb/internal/kb"
)

// Mapping is the hand-authored old-id to new-id table.
type Mapping map[string]string

// ValidateMapping rejects tables that would break the one-id-one-file
// invariant: self-maps, chained entries (a new id that is itself an old
// id), and two old ids colliding on the same new id.
func ValidateMapping(m Mapping) error {
	seen := make(map[string]string, len(m))
	for _, oldID := range sortedOldIDs(m) {
		newID := m[oldID]
		if newID == oldID {
			return kberrors.NewMappingError(oldID, "maps to itself")
		}
		if _, chained := m[newID]; chained {
			return kberrors.NewMappingError(oldID, fmt.Sprintf("new id %q is also an old id", newID))
		}
		if prev, dup := seen[newID]; dup {
			return kberrors.NewMappingError(oldID, fmt.Sprintf("new id %q already taken by %s", newID, prev))
		}
		seen[newID] = oldID
	}
	return nil
}

// RewriteIDs applies the mapping to every record in categories and faqs
// and to the metadata hotContent list, in place. Internal knowledge urls
// get their filename component rewritten to the new id; service-page
// urls are not id-addressed and stay untouched. Unmapped ids pass
// through unchanged. Category membership and article order are
// preserved: records are only ever mutated by index, never moved.
// Returns the number of records whose id changed.
func RewriteIDs(db *kb.Database, mapping Mapping) int {
	changed := 0
	changed += rewriteGroup(db.Categories, mapping)
	changed += rewriteGroup(db.FAQs, mapping)
	if db.Metadata != nil {
		for i := range db.Metadata.HotContent {
			if newID, ok := mapping[db.Metadata.HotContent[i].ID]; ok {
				db.Metadata.HotContent[i].ID = newID
			}
		}
	}
	return changed
}

func rewriteGroup(group map[string][]kb.Article, mapping Mapping) int {
	changed := 0
	for _, articles := range group {
		for i := range articles {
			newID, ok := mapping[articles[i].ID]
			if !ok {
				continue
			}
			articles[i].ID = newID
			switch {
			case strings.HasPrefix(articles[i].URL, config.KnowledgePrefix):
				articles[i].URL = config.KnowledgePrefix + newID + ".html"
			case strings.HasPrefix(articles[i].URL, config.ServicesPrefix):
				// Service-page urls are not id-addressed; leave them.
			}
			changed++
		}
	}
	return changed
}

// EntryStatus records what happened to one mapping entry during the
// file-rename pass.
type EntryStatus struct {
	OldID   string
	NewID   string
	Renamed bool
}

// RenameReport summarizes one file-rename pass.
type RenameReport struct {
	Entries []EntryStatus
	Renamed int
	Skipped int
	// StaleRefs lists files that still mention their old id somewhere
	// outside the data-id attribute after the rewrite. Those references
	// are not migrated, only reported.
	StaleRefs []string
}

// RenameFiles moves each mapped page to its new filename, rewriting the
// embedded data-id attribute on the way. A missing old file is a
// non-fatal skip: the record may have been added without a page, or a
// previous run already moved it. Entries are processed in sorted old-id
// order so output and partial progress are deterministic.
func RenameFiles(dir string, mapping Mapping) (*RenameReport, error) {
	report := &RenameReport{}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// Nothing to move; verification will report the missing pages.
		fmt.Printf("❌ directory does not exist: %s\n", dir)
		return report, nil
	}
	for _, oldID := range sortedOldIDs(mapping) {
		newID := mapping[oldID]
		oldPath := filepath.Join(dir, oldID+".html")
		newPath := filepath.Join(dir, newID+".html")

		b, err := os.ReadFile(oldPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Printf("⚠️  file not found: %s\n", oldPath)
				report.Entries = append(report.Entries, EntryStatus{OldID: oldID, NewID: newID})
				report.Skipped++
				continue
			}
			return nil, fmt.Errorf("read %s: %w", oldPath, err)
		}

		content := strings.ReplaceAll(string(b),
			fmt.Sprintf("data-id=%q", oldID),
			fmt.Sprintf("data-id=%q", newID))
		if strings.Contains(content, oldID) {
			fmt.Printf("⚠️  %s still references old id %s\n", newPath, oldID)
			report.StaleRefs = append(report.StaleRefs, newPath)
		}

		if err := os.WriteFile(newPath, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", newPath, err)
		}
		if err := os.Remove(oldPath); err != nil {
			return nil, fmt.Errorf("remove %s: %w", oldPath, err)
		}
		fmt.Printf("✅ renamed: %s.html -> %s.html\n", oldID, newID)
		report.Entries = append(report.Entries, EntryStatus{OldID: oldID, NewID: newID, Renamed: true})
		report.Renamed++
	}
	return report, nil
}

func sortedOldIDs(m Mapping) []string {
	ids := make([]string, 0, len(m))
	for oldID := range m {
		ids = append(ids, oldID)
	}
	sort.Strings(ids)
	return ids
}
