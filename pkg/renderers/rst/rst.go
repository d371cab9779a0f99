// Package rst renders parameter overviews as reStructuredText simple tables,
// suitable for feeding a documentation toolchain.
package rst

import (
	"context"
	"strings"

	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
	"github.com/goliatone/go-recipedocs/pkg/model"
	"github.com/goliatone/go-recipedocs/pkg/render"
)

const (
	nameTitle    = "**Parameter name**"
	descrTitle   = "**Description**"
	defaultTitle = "**Default value**"

	// literalPad is the width the ``...`` decoration adds around a cell.
	literalPad = 4

	colGap = "   "
)

// Renderer implements render.Renderer for RST output.
type Renderer struct{}

// New constructs the RST renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "rst"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/x-rst"
}

// Render composes the overview: document title underlined with '=', one
// '-'-underlined section per group, and a three-column simple table per
// section with rows sorted by parameter name.
func (r *Renderer) Render(ctx context.Context, doc model.ParamsDoc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := []string{
		doc.Title,
		strings.Repeat("=", render.ColumnWidth(doc.Title)),
		"",
	}

	for _, group := range doc.Groups {
		heading := group.Label + " parameters"
		lines = append(lines, heading, strings.Repeat("-", render.ColumnWidth(heading)), "")

		entries := group.SortedEntries()

		names := make([]string, len(entries))
		descrs := make([]string, len(entries))
		defaults := make([]string, len(entries))
		for i, entry := range entries {
			names[i] = entry.Name
			descrs[i] = entry.Description
			defaults[i] = easyconfig.Quote(entry.Default)
		}

		// Name column reserves room for the ``...`` decoration.
		nw := render.ColumnWidth(nameTitle, names...) + literalPad
		dw := render.ColumnWidth(descrTitle, descrs...)
		dfw := render.ColumnWidth(defaultTitle, defaults...)

		lines = append(lines,
			tableRule("=", nw, dw, dfw),
			tableRow(nameTitle, descrTitle, defaultTitle, nw, dw, dfw),
			tableRule("-", nw, dw, dfw),
		)
		for i := range entries {
			lines = append(lines, tableRow("``"+names[i]+"``", descrs[i], defaults[i], nw, dw, dfw))
		}
		lines = append(lines, tableRule("=", nw, dw, dfw), "")
	}

	return []byte(strings.Join(lines, "\n")), nil
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
