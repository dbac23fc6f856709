package classification

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed table.yaml
var tableYAML []byte

// CategoryEntry describes one row of the classification table.
type CategoryEntry struct {
	Name       string   `yaml:"name"`
	Department string   `yaml:"department"`
	SLAHours   float64  `yaml:"sla_hours"`
	Keywords   []string `yaml:"keywords"`
}

type categoryTable struct {
	Categories []CategoryEntry `yaml:"categories"`
}

var (
	entries []CategoryEntry
	byName  map[string]CategoryEntry
)

func init() {
	var table categoryTable
	if err := yaml.Unmarshal(tableYAML, &table); err != nil {
		panic(fmt.Sprintf("classification: failed to parse embedded table: %v", err))
	}
	if len(table.Categories) == 0 {
		panic("classification: embedded table is empty")
	}

	entries = table.Categories
	byName = make(map[string]CategoryEntry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}
	if _, ok := byName[fallbackCategory]; !ok {
		panic("classification: embedded table is missing the fallback category")
	}
}

// fallbackCategory absorbs complaints whose category is unknown.
const fallbackCategory = "Other"

// Entries returns all classification table rows in display order.
func Entries() []CategoryEntry {
	out := make([]CategoryEntry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the table entry for a category, falling back to Other.
func Lookup(category string) CategoryEntry {
	if e, ok := byName[category]; ok {
		return e
	}
	return byName[fallbackCategory]
}
