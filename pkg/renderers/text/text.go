// Package text renders parameter overviews as plain console-friendly text:
// upper-cased group headers and two aligned columns, no decorative borders.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
	"github.com/goliatone/go-recipedocs/pkg/model"
	"github.com/goliatone/go-recipedocs/pkg/render"
)

// Renderer implements render.Renderer for plain text output.
type Renderer struct{}

// New constructs the plain text renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "txt"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render composes the overview. Each group gets an upper-cased header
// underlined with '-', then one line per parameter with the name column
// padded to the longest name in the group.
func (r *Renderer) Render(ctx context.Context, doc model.ParamsDoc) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := []string{doc.Title + ":", ""}

	for _, group := range doc.Groups {
		header := strings.ToUpper(group.Label)
		lines = append(lines, header, strings.Repeat("-", render.ColumnWidth(header)))

		entries := group.SortedEntries()

		names := make([]string, len(entries))
		for i, entry := range entries {
			names[i] = entry.Name
		}
		nw := render.ColumnWidth("", names...)

		for _, entry := range entries {
			lines = append(lines, fmt.Sprintf("%s   %s [default: %s]",
				render.Pad(entry.Name, nw), entry.Description, easyconfig.Quote(entry.Default)))
		}
		lines = append(lines, "")
	}

	return []byte(strings.Join(lines, "\n")), nil
}
