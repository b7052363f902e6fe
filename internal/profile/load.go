// ABOUTME: Loader for the portfolio profile document
// ABOUTME: Reads a single required JSON path; a missing file is a startup error, not a fallback
package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the profile document from path. There is no
// candidate-path search; the caller resolves the path once via config.
func Load(path string) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("profile path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing profile document: %w", err)
	}

	return &doc, nil
}
