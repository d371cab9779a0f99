// Package easyconfig defines the parameter metadata the documentation
// generator consumes: categories, parameter specs, and the framework-wide
// default table.
package easyconfig

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenLabel names the reserved category whose parameters are excluded from
// every generated document.
const HiddenLabel = "HIDDEN"

// Category is the sort-key/label pair used to group parameters into titled
// sections. Key fixes the section order; Label is the human-readable group
// name.
type Category struct {
	Key   int    `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Hidden reports whether the category is the reserved hidden marker.
func (c Category) Hidden() bool {
	return strings.EqualFold(c.Label, HiddenLabel)
}

// Spec describes a single easyconfig parameter: its default value, a help
// string, and the category that decides which documentation section it lands
// in.
type Spec struct {
	Default     any
	Description string
	Category    Category
}

// Table maps parameter names to their specs. It is the framework-wide default
// parameter table, or a per-easyblock extra-options table.
type Table map[string]Spec

// Clone returns an independent copy of the table so callers can merge
// easyblock extras without touching the shared defaults. Default values are
// treated as immutable and shared.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for name, spec := range t {
		out[name] = spec
	}
	return out
}

// Merge overlays extra onto the table, overwriting same-named entries.
func (t Table) Merge(extra Table) {
	for name, spec := range extra {
		t[name] = spec
	}
}

// Categories returns the distinct categories present in the table in
// canonical order (ascending key, then label).
func (t Table) Categories() []Category {
	seen := make(map[Category]struct{}, len(t))
	out := make([]Category, 0, len(t))
	for _, spec := range t {
		if _, ok := seen[spec.Category]; ok {
			continue
		}
		seen[spec.Category] = struct{}{}
		out = append(out, spec.Category)
	}
	SortCategories(out)
	return out
}

// SortCategories orders categories in place by sort key, breaking ties on the
// label so the canonical order is stable.
func SortCategories(categories []Category) {
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Key != categories[j].Key {
			return categories[i].Key < categories[j].Key
		}
		return categories[i].Label < categories[j].Label
	})
}

// Quote renders a default value for documentation output. String defaults are
// wrapped in single quotes so they read as literals; every other type keeps
// its plain textual form.
func Quote(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v", v)
}
