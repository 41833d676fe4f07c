package migrate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"mobius-kb/internal/config"
	"mobius-kb/internal/kb"
)

// Issue is a single integrity violation. Verification collects every
// issue it finds instead of stopping at the first.
type Issue struct {
	Kind   string
	ID     string
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Kind, i.Detail)
}

// Verify re-scans the data file contents against the page directory and
// reports every violation of the id/url/file invariants. It mutates
// nothing; success is an empty issue list, not the absence of errors.
func Verify(db *kb.Database, dir string) ([]Issue, error) {
	var issues []Issue

	issues = append(issues, verifyGroup(db.Categories, db.CategoryNames(), dir)...)
	issues = append(issues, verifyGroup(db.FAQs, db.FAQCategoryNames(), dir)...)

	// Every hotContent reference must resolve to a record in categories.
	if db.Metadata != nil {
		for _, hot := range db.Metadata.HotContent {
			if _, ok := db.FindInCategories(hot.ID); !ok {
				issues = append(issues, Issue{
					Kind:   "dangling-hot-ref",
					ID:     hot.ID,
					Detail: fmt.Sprintf("hotContent references missing article: %s", hot.ID),
				})
			}
		}
	}

	pageIssues, err := verifyPageIDs(dir)
	if err != nil {
		return nil, err
	}
	return append(issues, pageIssues...), nil
}

func verifyGroup(group map[string][]kb.Article, names []string, dir string) []Issue {
	var issues []Issue
	for _, cat := range names {
		for _, a := range group[cat] {
			if !strings.HasPrefix(a.URL, config.KnowledgePrefix) {
				continue
			}
			filename := path.Base(a.URL)
			if filename != a.ID+".html" {
				issues = append(issues, Issue{
					Kind:   "url-mismatch",
					ID:     a.ID,
					Detail: fmt.Sprintf("id %s has url %s", a.ID, a.URL),
				})
			}
			if _, err := os.Stat(filepath.Join(dir, filename)); err != nil {
				issues = append(issues, Issue{
					Kind:   "missing-file",
					ID:     a.ID,
					Detail: fmt.Sprintf("page does not exist: %s", a.URL),
				})
			}
		}
	}
	return issues
}

// verifyPageIDs checks that the data-id attribute carried by each page,
// when present, matches the page's own filename stem. A mismatch means a
// rename moved the file but a stale copy or hand edit reintroduced the
// old id.
func verifyPageIDs(dir string) ([]Issue, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var issues []Issue
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ".html")
		p := filepath.Join(dir, e.Name())
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		doc, err := goquery.NewDocumentFromReader(f)
		f.Close()
		if err != nil {
			// Not parsable as HTML; nothing to check.
			continue
		}
		sel := doc.Find("[data-id]").First()
		if sel.Length() == 0 {
			continue
		}
		if got := sel.AttrOr("data-id", ""); got != stem {
			issues = append(issues, Issue{
				Kind:   "data-id-drift",
				ID:     stem,
				Detail: fmt.Sprintf("%s carries data-id=%q", e.Name(), got),
			})
		}
	}
	return issues, nil
}
