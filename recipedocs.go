// Package recipedocs re-exports the primary documentation types so callers
// can depend on a single import path. The implementation lives under pkg/.
package recipedocs

import (
	"github.com/goliatone/go-recipedocs/pkg/docs"
	"github.com/goliatone/go-recipedocs/pkg/easyblock"
	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
	"github.com/goliatone/go-recipedocs/pkg/render"
)

// Generator composes parameter overviews and easyblock documentation.
type Generator = docs.Generator

// Option configures a Generator.
type Option = docs.Option

// Spec describes a single easyconfig parameter.
type Spec = easyconfig.Spec

// Table maps parameter names to their specs.
type Table = easyconfig.Table

// Category groups parameters for presentation.
type Category = easyconfig.Category

// Descriptor documents a registered easyblock.
type Descriptor = easyblock.Descriptor

// Registry holds easyblock descriptors keyed by name.
type Registry = easyblock.Registry

// Renderer turns a parameter document into formatted output.
type Renderer = render.Renderer

// Built-in output formats.
const (
	FormatRST = docs.FormatRST
	FormatTXT = docs.FormatTXT
)

// ErrUnknownFormat reports a format with no registered renderer.
var ErrUnknownFormat = render.ErrUnknownFormat

// New constructs a Generator. See [docs.New].
func New(options ...Option) *Generator {
	return docs.New(options...)
}

// NewBlockRegistry constructs an empty easyblock registry.
func NewBlockRegistry() *Registry {
	return easyblock.NewRegistry()
}

// WithDefaults supplies the framework-wide default parameter table.
func WithDefaults(defaults Table) Option {
	return docs.WithDefaults(defaults)
}

// WithBlocks injects the easyblock descriptor registry.
func WithBlocks(blocks *Registry) Option {
	return docs.WithBlocks(blocks)
}

// WithCategories fixes the canonical category presentation order.
func WithCategories(categories []Category) Option {
	return docs.WithCategories(categories)
}
