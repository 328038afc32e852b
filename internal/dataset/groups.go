// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/stock-adjust/pkg/types"
)

// LoadGroups reads the functional-group taxonomy and the species and
// survey name mappings from groups.yaml. Every mapping target must be a
// group named in the taxonomy.
func LoadGroups(path string) (types.GroupTable, error) {
	var table types.GroupTable

	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("reading group table: %w", err)
	}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("parsing group table %s: %w", path, err)
	}
	if len(table.Groups) == 0 {
		return table, fmt.Errorf("group table %s: no groups defined", path)
	}

	known := make(map[string]bool, len(table.Groups))
	for _, g := range table.Groups {
		known[g] = true
	}

	var unknown []string
	for _, m := range []map[string]string{table.Species, table.Surveys} {
		for name, group := range m {
			if !known[group] {
				unknown = append(unknown, fmt.Sprintf("%s -> %s", name, group))
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return table, fmt.Errorf("group table %s: mappings to undefined groups: %s",
			path, strings.Join(unknown, "; "))
	}

	return table, nil
}
