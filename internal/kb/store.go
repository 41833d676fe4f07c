package kb

import (
	"bytes"
	"encoding/json"
	"os"

	kberrors "mobius-kb/internal/errors"
)

// Load reads and parses the data file. Both failure modes are fatal to
// the caller: without a parsable data file there is nothing to do.
func Load(path string) (*Database, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, kberrors.NewDataError(path, "read", err)
	}
	var db Database
	if err := json.Unmarshal(b, &db); err != nil {
		return nil, kberrors.NewDataError(path, "parse", err)
	}
	return &db, nil
}

// Save overwrites the data file with the whole structure, two-space
// indented like the original file. HTML escaping is off so markup in
// content fields survives a round-trip byte for byte.
func Save(path string, db *Database) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		return kberrors.NewDataError(path, "encode", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return kberrors.NewDataError(path, "write", err)
	}
	return nil
}
