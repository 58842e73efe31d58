// Package catalogio loads a JSON catalog file into catalog.Expressions,
// and optionally watches it for changes so a long-running process can
// pick up edits without a restart.
package catalogio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lightninglabs/ironthrone/catalog"
)

// entry is the on-disk JSON shape of one catalog row. Value is held as
// json.RawMessage so that an absent value can be told apart from a
// present one; Load then decodes a present value with the default
// interface{} rules, so the loader needs no knowledge of any entity's
// shape.
type entry struct {
	Text   string          `json:"text"`
	Entity string          `json:"entity"`
	Value  json.RawMessage `json:"value"`
}

// Load reads a JSON array of catalog entries from r and returns the
// corresponding Expressions. Each entry's Value is decoded into a Go
// string/number/bool/map via the standard library's default
// interface{} unmarshalling rules.
func Load(r io.Reader) ([]*catalog.Expression, error) {
	var entries []entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("catalogio: decode catalog: %w", err)
	}

	expressions := make([]*catalog.Expression, 0, len(entries))
	for _, e := range entries {
		var value any
		if len(e.Value) > 0 {
			if err := json.Unmarshal(e.Value, &value); err != nil {
				return nil, fmt.Errorf("catalogio: decode value for %q: %w", e.Text, err)
			}
		}

		expressions = append(expressions, catalog.New(e.Text, e.Entity, value))
	}

	return expressions, nil
}

// LoadFile opens path and loads its catalog contents via Load.
func LoadFile(path string) ([]*catalog.Expression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogio: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
