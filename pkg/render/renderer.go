package render

import (
	"context"

	"github.com/goliatone/go-recipedocs/pkg/model"
)

// Renderer converts a ParamsDoc into a byte representation (RST markup,
// plain console text, or a caller-supplied template).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc model.ParamsDoc) ([]byte, error)
}
