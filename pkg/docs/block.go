package docs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-recipedocs/pkg/easyblock"
	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
	"github.com/goliatone/go-recipedocs/pkg/render"
)

const (
	extraNameTitle    = "easyconfig parameter"
	extraDescrTitle   = "description"
	extraDefaultTitle = "default value"

	literalPad = 4

	colGap = "   "
)

// GenericBlocks composes one documentation block per easyblock declared in
// the generic namespace. Order is implementation-defined; every distinct
// easyblock appears exactly once.
func (g *Generator) GenericBlocks(ctx context.Context) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var blocks []string
	for _, d := range g.blocks.Generic() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		block, err := g.DocBlock(d)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// DocBlock composes the RST documentation block for one easyblock: title,
// inheritance line, description, the extra-options table when the easyblock
// declares any, the commonly-used-parameters list when one is configured,
// and a literal example when <Name>.eb exists in the examples FS.
func (g *Generator) DocBlock(d easyblock.Descriptor) (string, error) {
	descr := sanitizeDescription(d.Description)
	if descr == "" {
		return "", fmt.Errorf("docs: easyblock %q has no description", d.Name)
	}

	lines := []string{
		"``" + d.Name + "``",
		strings.Repeat("=", render.ColumnWidth(d.Name)+literalPad),
		"",
	}

	bases := make([]string, len(d.Bases))
	for i, base := range d.Bases {
		bases[i] = "``" + base + "``"
	}
	lines = append(lines, "(derives from "+strings.Join(bases, ", ")+")", "")

	lines = append(lines, descr, "")

	if len(d.Extra) > 0 {
		lines = append(lines, g.extraOptionsTable(d)...)
	}

	if common, ok := g.common[d.Name]; ok {
		lines = append(lines, g.commonParamsList(d.Name, common)...)
	}

	example, err := g.exampleBlock(d.Name)
	if err != nil {
		return "", err
	}
	lines = append(lines, example...)

	return strings.Join(lines, "\n"), nil
}

func (g *Generator) extraOptionsTable(d easyblock.Descriptor) []string {
	heading := "Extra easyconfig parameters specific to ``" + d.Name + "`` easyblock"
	lines := []string{heading, strings.Repeat("-", render.ColumnWidth(heading)), ""}

	type row struct {
		name, descr, dflt string
	}
	rows := make([]row, 0, len(d.Extra))
	for name, spec := range d.Extra {
		rows = append(rows, row{
			name:  name,
			descr: sanitizeDescription(spec.Description),
			dflt:  easyconfig.Quote(spec.Default),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	names := make([]string, len(rows))
	descrs := make([]string, len(rows))
	defaults := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.name
		descrs[i] = r.descr
		defaults[i] = r.dflt
	}

	// Name and default columns both carry the ``...`` decoration.
	nw := render.ColumnWidth(extraNameTitle, names...) + literalPad
	dw := render.ColumnWidth(extraDescrTitle, descrs...)
	dfw := render.ColumnWidth(extraDefaultTitle, defaults...) + literalPad

	rule := tableRule("=", nw, dw, dfw)
	lines = append(lines, rule, tableRow(extraNameTitle, extraDescrTitle, extraDefaultTitle, nw, dw, dfw), rule)

	for _, r := range rows {
		lines = append(lines, tableRow("``"+r.name+"``", r.descr, "``"+r.dflt+"``", nw, dw, dfw))
	}

	return append(lines, rule, "")
}

func (g *Generator) commonParamsList(name string, common []string) []string {
	heading := "Commonly used easyconfig parameters with ``" + name + "`` easyblock"
	lines := []string{heading, strings.Repeat("-", render.ColumnWidth(heading))}

	for _, opt := range common {
		spec, ok := g.defaults[opt]
		if !ok {
			continue
		}
		lines = append(lines, "* ``"+opt+"`` - "+sanitizeDescription(spec.Description))
	}
	return lines
}

// exampleBlock inlines <name>.eb from the examples FS as a literal block.
// A missing file is silently skipped; any other read failure surfaces.
func (g *Generator) exampleBlock(name string) ([]string, error) {
	if g.examples == nil {
		return nil, nil
	}

	data, err := fs.ReadFile(g.examples, name+".eb")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("docs: read example for %q: %w", name, err)
	}

	lines := []string{"", "Example", strings.Repeat("-", 8), "", "::", ""}
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			line = "    " + line
		}
		lines = append(lines, line)
	}
	return append(lines, ""), nil
}

func tableRow(name, descr, dflt string, nw, dw, dfw int) string {
	return render.Pad(name, nw) + colGap + render.Pad(descr, dw) + colGap + render.Pad(dflt, dfw)
}

func tableRule(fill string, widths ...int) string {
	cols := make([]string, len(widths))
	for i, w := range widths {
		cols[i] = strings.Repeat(fill, w)
	}
	return strings.Join(cols, colGap)
}
