package kb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kberrors "mobius-kb/internal/errors"
)

const sampleJSON = `{
  "categories": {
    "visa": [
      {"id": "visa-b", "title": "签证B", "excerpt": "eb", "date": "2024-02-01", "readingTime": "5分钟", "category": "visa", "type": "article", "tags": ["t1", "t2"], "url": "knowledge/visa-b.html"},
      {"id": "visa-a", "title": "签证A", "excerpt": "ea", "date": "2024-01-01", "readingTime": "8分钟", "category": "visa", "type": "article", "tags": [], "url": "knowledge/visa-a.html"}
    ]
  },
  "faqs": {
    "visa": [
      {"id": "visa-faq-001", "title": "FAQ", "excerpt": "ef", "date": "2024-03-01", "readingTime": "3分钟", "category": "visa", "type": "faq", "tags": [], "url": "../services/visa.html"}
    ]
  },
  "metadata": {
    "hotContent": [{"id": "visa-b", "badge": "hot"}],
    "lastUpdated": "2024-06-01"
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))
	return path
}

func TestLoadPreservesArticleOrder(t *testing.T) {
	db, err := Load(writeSample(t))
	require.NoError(t, err)

	articles := db.Categories["visa"]
	require.Len(t, articles, 2)
	// visa-b comes before visa-a in the file; display order must survive.
	assert.Equal(t, "visa-b", articles[0].ID)
	assert.Equal(t, "visa-a", articles[1].ID)
	assert.Equal(t, []string{"visa-b", "visa-a", "visa-faq-001"}, db.AllIDs())
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	var dataErr *kberrors.DataError
	assert.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "read", dataErr.Operation)
}

func TestLoadMalformedJSONIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	var dataErr *kberrors.DataError
	assert.True(t, errors.As(err, &dataErr))
	assert.Equal(t, "parse", dataErr.Operation)
}

func TestSaveRoundTripKeepsUnknownKeys(t *testing.T) {
	path := writeSample(t)
	db, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, Save(path, db))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	// Keys the tools do not interpret must survive a rewrite.
	assert.Contains(t, string(b), `"lastUpdated"`)
	assert.Contains(t, string(b), `"badge"`)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, db.AllIDs(), again.AllIDs())
	require.NotNil(t, again.Metadata)
	require.Len(t, again.Metadata.HotContent, 1)
	assert.Equal(t, "visa-b", again.Metadata.HotContent[0].ID)
}

func TestSaveDoesNotEscapeMarkupInContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	db := &Database{
		Categories: map[string][]Article{
			"tax": {{ID: "tax-a", Title: "T", Content: "<h2>小节</h2>"}},
		},
	}
	require.NoError(t, Save(path, db))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<h2>小节</h2>")
}

func TestFindSearchesCategoriesAndFAQs(t *testing.T) {
	db, err := Load(writeSample(t))
	require.NoError(t, err)

	_, ok := db.Find("visa-faq-001")
	assert.True(t, ok)
	_, ok = db.FindInCategories("visa-faq-001")
	assert.False(t, ok)
	_, ok = db.Find("missing")
	assert.False(t, ok)
}
