// Package config loads the framework metadata the documentation generator
// consumes from a YAML document: category order, the default parameter
// table, easyblock descriptors, and the commonly-used-parameters lookup.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-recipedocs/pkg/docs"
	"github.com/goliatone/go-recipedocs/pkg/easyblock"
	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
)

// Parameter is the YAML shape of one parameter declaration. Category refers
// to a declared category by label.
type Parameter struct {
	Default     any    `yaml:"default"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// Easyblock is the YAML shape of one easyblock descriptor.
type Easyblock struct {
	Name        string               `yaml:"name"`
	Namespace   string               `yaml:"namespace"`
	Bases       []string             `yaml:"bases"`
	Description string               `yaml:"description"`
	Extra       map[string]Parameter `yaml:"extra"`
}

// Document is the raw YAML document.
type Document struct {
	Categories   []easyconfig.Category `yaml:"categories"`
	Parameters   map[string]Parameter  `yaml:"parameters"`
	Easyblocks   []Easyblock           `yaml:"easyblocks"`
	CommonParams map[string][]string   `yaml:"common_params"`
}

// Metadata is the resolved, validated form of a Document, ready to wire into
// a docs.Generator.
type Metadata struct {
	Categories   []easyconfig.Category
	Defaults     easyconfig.Table
	Blocks       *easyblock.Registry
	CommonParams map[string][]string
}

// GeneratorOptions maps the metadata onto generator options.
func (m *Metadata) GeneratorOptions() []docs.Option {
	return []docs.Option{
		docs.WithDefaults(m.Defaults),
		docs.WithCategories(m.Categories),
		docs.WithBlocks(m.Blocks),
		docs.WithCommonParams(m.CommonParams),
	}
}

// LoadFile reads and resolves a metadata document from disk.
func LoadFile(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return m, nil
}

// Load decodes and resolves a metadata document.
func Load(r io.Reader) (*Metadata, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return resolve(doc)
}

func resolve(doc Document) (*Metadata, error) {
	categories := make(map[string]easyconfig.Category, len(doc.Categories))
	for _, category := range doc.Categories {
		if category.Label == "" {
			return nil, fmt.Errorf("category with key %d has no label", category.Key)
		}
		if _, exists := categories[category.Label]; exists {
			return nil, fmt.Errorf("duplicate category %q", category.Label)
		}
		categories[category.Label] = category
	}

	order := make([]easyconfig.Category, len(doc.Categories))
	copy(order, doc.Categories)
	easyconfig.SortCategories(order)

	defaults := make(easyconfig.Table, len(doc.Parameters))
	for name, p := range doc.Parameters {
		spec, err := resolveParameter(name, p, categories)
		if err != nil {
			return nil, err
		}
		defaults[name] = spec
	}

	blocks := easyblock.NewRegistry()
	for _, b := range doc.Easyblocks {
		extra := make(easyconfig.Table, len(b.Extra))
		for name, p := range b.Extra {
			spec, err := resolveParameter(name, p, categories)
			if err != nil {
				return nil, fmt.Errorf("easyblock %q: %w", b.Name, err)
			}
			extra[name] = spec
		}
		if len(extra) == 0 {
			extra = nil
		}
		err := blocks.Register(easyblock.Descriptor{
			Name:        b.Name,
			Namespace:   b.Namespace,
			Bases:       b.Bases,
			Description: b.Description,
			Extra:       extra,
		})
		if err != nil {
			return nil, err
		}
	}

	for name, params := range doc.CommonParams {
		if _, ok := blocks.Resolve(name); !ok {
			return nil, fmt.Errorf("common_params references unknown easyblock %q", name)
		}
		for _, param := range params {
			if _, ok := defaults[param]; !ok {
				return nil, fmt.Errorf("common_params for %q references unknown parameter %q", name, param)
			}
		}
	}

	return &Metadata{
		Categories:   order,
		Defaults:     defaults,
		Blocks:       blocks,
		CommonParams: doc.CommonParams,
	}, nil
}

func resolveParameter(name string, p Parameter, categories map[string]easyconfig.Category) (easyconfig.Spec, error) {
	if name == "" {
		return easyconfig.Spec{}, fmt.Errorf("parameter with empty name")
	}
	if p.Description == "" {
		return easyconfig.Spec{}, fmt.Errorf("parameter %q has no description", name)
	}
	category, ok := categories[p.Category]
	if !ok {
		return easyconfig.Spec{}, fmt.Errorf("parameter %q references unknown category %q", name, p.Category)
	}
	return easyconfig.Spec{
		Default:     p.Default,
		Description: p.Description,
		Category:    category,
	}, nil
}
