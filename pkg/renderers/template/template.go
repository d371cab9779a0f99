// Package template renders parameter overviews through a caller-supplied
// pongo2 template, for consumers whose documentation toolchain wants a
// layout the built-in rst/txt renderers do not produce.
package template

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-recipedocs/pkg/model"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	baseDir   string
	templates fs.FS
	file      string
	source    string
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithTemplateFile selects the template executed per document. Requires a
// base dir or fs.FS to resolve against.
func WithTemplateFile(name string) Option {
	return func(cfg *config) {
		cfg.file = strings.TrimSpace(name)
	}
}

// WithTemplateString supplies inline template content, bypassing loaders.
func WithTemplateString(content string) Option {
	return func(cfg *config) {
		cfg.source = content
	}
}

// Renderer implements render.Renderer on top of a pongo2 template set.
type Renderer struct {
	set    *pongo2.TemplateSet
	file   string
	source string
}

// New constructs a template renderer. Either an inline template string or a
// template file (plus a loader source) must be provided.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.source == "" && cfg.file == "" {
		return nil, errors.New("template: need an inline template or a template file")
	}
	if cfg.file != "" && cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("template: template file requires a base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("template: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}
	if len(loaders) == 0 {
		// pongo2.NewSet panics without a loader; inline templates never
		// resolve files, so fall back to pongo2's default loader.
		loaders = append(loaders, pongo2.DefaultLoader)
	}

	return &Renderer{
		set:    pongo2.NewSet("recipedocs", loaders...),
		file:   cfg.file,
		source: cfg.source,
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "template"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render executes the configured template against the document. The template
// context exposes the document under "doc" with JSON field names, so
// templates address {{ doc.title }} and iterate {{ doc.groups }}.
func (r *Renderer) Render(ctx context.Context, doc model.ParamsDoc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		tmpl *pongo2.Template
		err  error
	)
	if r.source != "" {
		tmpl, err = r.set.FromString(r.source)
	} else {
		tmpl, err = r.set.FromFile(r.file)
	}
	if err != nil {
		return nil, fmt.Errorf("template: parse template: %w", err)
	}

	viewContext, err := docContext(doc)
	if err != nil {
		return nil, fmt.Errorf("template: convert document: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(viewContext, &buf); err != nil {
		return nil, fmt.Errorf("template: execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// docContext round-trips the document through JSON so templates see the
// stable lowercase field names instead of Go identifiers.
func docContext(doc model.ParamsDoc) (pongo2.Context, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return pongo2.Context{"doc": payload}, nil
}
