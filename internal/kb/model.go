package kb

import "encoding/json"

// Article is a single knowledge-base record. FAQ entries share the same
// shape and are stored under the separate top-level faqs grouping.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Date        string   `json:"date"`
	ReadingTime string   `json:"readingTime"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Database is the in-memory form of data/articles.json. Article order
// within each category encodes display order and must never be changed
// by any of the maintenance tools.
type Database struct {
	Categories map[string][]Article `json:"categories"`
	FAQs       map[string][]Article `json:"faqs,omitempty"`
	Metadata   *Metadata            `json:"metadata,omitempty"`
}

// HotRef is one entry of metadata.hotContent. Entries may carry fields
// beyond the id (title, badge text, ...) that these tools do not
// interpret; those are kept as raw JSON so a rewrite never drops them.
type HotRef struct {
	ID    string
	extra map[string]json.RawMessage
}

func (h *HotRef) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if idRaw, ok := raw["id"]; ok {
		if err := json.Unmarshal(idRaw, &h.ID); err != nil {
			return err
		}
		delete(raw, "id")
	}
	h.extra = raw
	return nil
}

func (h HotRef) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(h.extra)+1)
	for k, v := range h.extra {
		out[k] = v
	}
	idRaw, err := json.Marshal(h.ID)
	if err != nil {
		return nil, err
	}
	out["id"] = idRaw
	return json.Marshal(out)
}

// Metadata holds the hotContent list plus whatever other metadata keys
// the site keeps in the data file, passed through untouched.
type Metadata struct {
	HotContent []HotRef
	extra      map[string]json.RawMessage
}

func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if hc, ok := raw["hotContent"]; ok {
		if err := json.Unmarshal(hc, &m.HotContent); err != nil {
			return err
		}
		delete(raw, "hotContent")
	}
	m.extra = raw
	return nil
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.extra)+1)
	for k, v := range m.extra {
		out[k] = v
	}
	if m.HotContent != nil {
		hc, err := json.Marshal(m.HotContent)
		if err != nil {
			return nil, err
		}
		out["hotContent"] = hc
	}
	return json.Marshal(out)
}
