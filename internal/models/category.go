package models

import (
	"sort"
	"strings"
)

// ColorMap maps category names (regions) to hex colors for item bars.
// It always contains a FallbackCategory entry.
type ColorMap map[string]string

// NormalizeCategory collapses internal whitespace and trims the name so
// lookups are stable regardless of how the category was typed.
func NormalizeCategory(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ColorFor returns the color for a category, falling back to the Other
// entry and finally to the hardcoded fallback color.
func (m ColorMap) ColorFor(category string) string {
	if c, ok := m[NormalizeCategory(category)]; ok {
		return c
	}
	if c, ok := m[FallbackCategory]; ok {
		return c
	}
	return FallbackColor
}

// Names returns the category names in sorted order for pickers.
func (m ColorMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
