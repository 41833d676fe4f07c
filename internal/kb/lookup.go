package kb

import "sort"

// CategoryNames returns the category keys in sorted order. JSON object
// key order carries no meaning in the data file; sorting just keeps tool
// output deterministic.
func (db *Database) CategoryNames() []string {
	return sortedKeys(db.Categories)
}

// FAQCategoryNames returns the FAQ grouping keys in sorted order.
func (db *Database) FAQCategoryNames() []string {
	return sortedKeys(db.FAQs)
}

func sortedKeys(m map[string][]Article) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AllIDs returns every article and FAQ id, categories first, preserving
// intra-category order.
func (db *Database) AllIDs() []string {
	var ids []string
	for _, cat := range db.CategoryNames() {
		for _, a := range db.Categories[cat] {
			ids = append(ids, a.ID)
		}
	}
	for _, cat := range db.FAQCategoryNames() {
		for _, f := range db.FAQs[cat] {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// Find looks an id up across categories and faqs.
func (db *Database) Find(id string) (Article, bool) {
	if a, ok := findIn(db.Categories, id); ok {
		return a, true
	}
	return findIn(db.FAQs, id)
}

// FindInCategories looks an id up in categories only. hotContent
// references resolve against categories, not faqs.
func (db *Database) FindInCategories(id string) (Article, bool) {
	return findIn(db.Categories, id)
}

func findIn(m map[string][]Article, id string) (Article, bool) {
	for _, articles := range m {
		for _, a := range articles {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Article{}, false
}
