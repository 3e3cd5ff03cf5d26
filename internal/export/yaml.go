// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// WriteRawYAML dumps the raw fetched records to path as YAML. Used with
// the --dump-raw flag to inspect what the classifier actually saw.
func WriteRawYAML(papers []types.Paper, path string) error {
	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling raw records: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
