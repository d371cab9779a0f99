package model

import "sort"

// Entry is one parameter row inside a rendered group. Extra marks entries
// that came from an easyblock's extra options rather than the framework
// defaults; aggregators suffix those names with '*' before rendering.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     any    `json:"default,omitempty"`
	Extra       bool   `json:"extra,omitempty"`
}

// Group is one titled documentation section. Entries are kept in insertion
// order; renderers sort them by name at render time.
type Group struct {
	Label   string  `json:"label"`
	Entries []Entry `json:"entries"`
}

// SortedEntries returns a copy of the group's entries ordered
// lexicographically by parameter name.
func (g Group) SortedEntries() []Entry {
	out := make([]Entry, len(g.Entries))
	copy(out, g.Entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// ParamsDoc is the top-level representation renderers consume: a document
// title plus parameter groups in canonical category order. Groups are never
// empty; aggregators drop categories left without visible parameters.
type ParamsDoc struct {
	Title  string  `json:"title"`
	Groups []Group `json:"groups"`
}
