package tradebook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted document is a single JSON object so the whole journal can be
// read, diffed and backed up as one file.

// EncodeStore writes the store as compact JSON, the slot format.
func EncodeStore(w io.Writer, s *Store) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	return nil
}

// EncodeStoreIndent writes the store pretty-printed, the backup format.
func EncodeStoreIndent(w io.Writer, s *Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	return nil
}

// DecodeStore reads a document and runs it through the normalize step.
// The result is structurally shaped but not yet migrated nor validated.
func DecodeStore(r io.Reader) (*Store, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	return Normalize(raw)
}
