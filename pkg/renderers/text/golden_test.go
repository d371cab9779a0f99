package text_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-recipedocs/pkg/model"
	"github.com/goliatone/go-recipedocs/pkg/renderers/text"
	"github.com/goliatone/go-recipedocs/pkg/testsupport"
)

func TestRenderGolden(t *testing.T) {
	doc := model.ParamsDoc{
		Title: "Available easyconfig parameters",
		Groups: []model.Group{
			{
				Label: "MANDATORY",
				Entries: []model.Entry{
					{Name: "name", Description: "Name of the software", Default: ""},
					{Name: "version", Description: "Version of the software", Default: ""},
				},
			},
		},
	}

	out, err := text.New().Render(context.Background(), doc)
	require.NoError(t, err)

	golden := filepath.Join("testdata", "overview.txt.golden")
	testsupport.WriteGolden(t, golden, out)

	want := testsupport.MustReadGolden(t, golden)
	if diff := testsupport.CompareGolden(string(want), string(out)); diff != "" {
		t.Fatalf("rendered overview mismatch (-want +got):\n%s", diff)
	}
}
