// Package seed holds the bundled trail catalog used to populate an empty
// database.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jengzang/trails-backend-go/internal/models"
)

//go:embed trails.yaml
var catalog []byte

// Trails returns the bundled catalog
func Trails() ([]models.Trail, error) {
	return Parse(catalog)
}

// Parse decodes a YAML trail list and validates every record.
// Route types are normalized and ids must be unique.
func Parse(data []byte) ([]models.Trail, error) {
	var trails []models.Trail
	if err := yaml.Unmarshal(data, &trails); err != nil {
		return nil, fmt.Errorf("failed to parse trail catalog: %w", err)
	}

	seen := make(map[int64]bool, len(trails))
	for i := range trails {
		t := &trails[i]
		if rt, ok := models.ParseRouteType(string(t.RouteType)); ok {
			t.RouteType = rt
		}
		if d, ok := models.ParseDifficulty(string(t.Difficulty)); ok {
			t.Difficulty = d
		}
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate trail id %d", t.ID)
		}
		seen[t.ID] = true
	}
	return trails, nil
}
