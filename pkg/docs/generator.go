package docs

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-recipedocs/pkg/easyblock"
	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
	"github.com/goliatone/go-recipedocs/pkg/model"
	"github.com/goliatone/go-recipedocs/pkg/render"
	"github.com/goliatone/go-recipedocs/pkg/renderers/rst"
	"github.com/goliatone/go-recipedocs/pkg/renderers/text"
)

// Supported built-in output formats for parameter overviews.
const (
	FormatRST = "rst"
	FormatTXT = "txt"
)

const availParamsTitle = "Available easyconfig parameters"

//go:embed doc_examples
var embeddedExamples embed.FS

// Option customises the generator configuration.
type Option func(*Generator)

// WithDefaults supplies the framework-wide default parameter table.
func WithDefaults(defaults easyconfig.Table) Option {
	return func(g *Generator) {
		g.defaults = defaults
	}
}

// WithCategories fixes the canonical category order. When omitted, the order
// is derived from the working parameter table.
func WithCategories(categories []easyconfig.Category) Option {
	return func(g *Generator) {
		g.categories = categories
	}
}

// WithBlocks injects the easyblock descriptor registry.
func WithBlocks(blocks *easyblock.Registry) Option {
	return func(g *Generator) {
		g.blocks = blocks
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithCommonParams configures the commonly-used-parameters lookup: easyblock
// name to the inherited parameter names worth calling out in its block.
func WithCommonParams(common map[string][]string) Option {
	return func(g *Generator) {
		g.common = common
	}
}

// WithExamplesFS supplies an fs.FS holding example recipes named
// <EasyblockName>.eb. Pass nil to disable example blocks entirely.
func WithExamplesFS(fsys fs.FS) Option {
	return func(g *Generator) {
		g.examples = fsys
		g.examplesSpecified = true
	}
}

// Generator composes documentation for easyconfig parameters and easyblocks.
// It applies sensible defaults (built-in rst and txt renderers, embedded
// example recipes) while remaining open to dependency injection.
type Generator struct {
	defaults          easyconfig.Table
	categories        []easyconfig.Category
	blocks            *easyblock.Registry
	registry          *render.Registry
	common            map[string][]string
	examples          fs.FS
	examplesSpecified bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.defaults == nil {
		g.defaults = easyconfig.Table{}
	}
	if g.blocks == nil {
		g.blocks = easyblock.NewRegistry()
	}
	if g.registry == nil {
		registry := render.NewRegistry()
		registry.MustRegister(rst.New())
		registry.MustRegister(text.New())
		g.registry = registry
	}
	if !g.examplesSpecified {
		sub, err := fs.Sub(embeddedExamples, "doc_examples")
		if err != nil {
			panic(fmt.Errorf("docs: embedded examples: %w", err))
		}
		g.examples = sub
	}
}

// AvailParams composes the overview of available easyconfig parameters in
// the requested format. When blockName resolves to a registered easyblock,
// its extra options are merged over the defaults and marked with a '*'
// suffix; a name that does not resolve is tolerated and means "no extra
// parameters". An unknown format is a hard error.
func (g *Generator) AvailParams(ctx context.Context, blockName, format string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	renderer, err := g.registry.Get(format)
	if err != nil {
		return nil, err
	}

	params := g.defaults.Clone()

	var extra easyconfig.Table
	resolvedName := ""
	if blockName != "" {
		if d, ok := g.blocks.Resolve(blockName); ok {
			extra = d.ExtraOptions()
			resolvedName = d.Name
		}
	}
	params.Merge(extra)

	title := availParamsTitle
	if len(extra) > 0 {
		title += fmt.Sprintf(" (* indicates specific to the %s easyblock)", resolvedName)
	}

	categories := g.categories
	if categories == nil {
		categories = params.Categories()
	}

	doc := model.ParamsDoc{Title: title}
	for _, category := range categories {
		if category.Hidden() {
			continue
		}
		group := model.Group{Label: category.Label}
		for name, spec := range params {
			if spec.Category != category {
				continue
			}
			entry := model.Entry{
				Name:        name,
				Description: sanitizeDescription(spec.Description),
				Default:     spec.Default,
			}
			if _, fromExtra := extra[name]; fromExtra {
				entry.Name += "*"
				entry.Extra = true
			}
			group.Entries = append(group.Entries, entry)
		}
		if len(group.Entries) == 0 {
			continue
		}
		doc.Groups = append(doc.Groups, group)
	}

	return renderer.Render(ctx, doc)
}
