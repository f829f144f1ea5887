package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// File reads the dataset from a local JSON file. Used by the auditor and
// for offline runs; the loading semantics upstream are identical to the
// HTTP client's.
type File struct {
	path string
}

func NewFile(path string) *File { return &File{path: path} }

func (f *File) Fetch(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("malformed dataset file %s: %w", f.path, err)
	}
	return out, nil
}
