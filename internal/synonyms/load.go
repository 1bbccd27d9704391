// internal/synonyms/load.go
package synonyms

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML overlay of raw→canonical synonym entries, layered over
// the built-in table by the caller. The file is a flat mapping:
//
//	hg38: GRCh38
//	GRCh38.p14: GRCh38
func Load(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	overlay := map[string]string{}
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	for k, v := range overlay {
		if k == "" || v == "" {
			return nil, fmt.Errorf("%s: empty synonym entry %q: %q", path, k, v)
		}
	}
	return overlay, nil
}
