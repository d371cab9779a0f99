package template_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-recipedocs/pkg/model"
	"github.com/goliatone/go-recipedocs/pkg/renderers/template"
)

func sampleDoc() model.ParamsDoc {
	return model.ParamsDoc{
		Title: "Available easyconfig parameters",
		Groups: []model.Group{
			{
				Label: "BUILD",
				Entries: []model.Entry{
					{Name: "name", Description: "Name of the software", Default: "ConfigureMake"},
				},
			},
		},
	}
}

func TestRenderInlineTemplate(t *testing.T) {
	r, err := template.New(template.WithTemplateString(
		"{{ doc.title }}|{% for group in doc.groups %}{{ group.label }}:{{ group.entries|length }}{% endfor %}",
	))
	require.NoError(t, err)

	out, err := r.Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, "Available easyconfig parameters|BUILD:1", string(out))
}

func TestRenderTemplateFile(t *testing.T) {
	fsys := fstest.MapFS{
		"overview.tpl": &fstest.MapFile{
			Data: []byte("# {{ doc.title }}\n"),
		},
	}

	r, err := template.New(template.WithFS(fsys), template.WithTemplateFile("overview.tpl"))
	require.NoError(t, err)

	out, err := r.Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, "# Available easyconfig parameters\n", string(out))
}

func TestNewValidation(t *testing.T) {
	_, err := template.New()
	require.Error(t, err)

	_, err = template.New(template.WithTemplateFile("overview.tpl"))
	require.Error(t, err)
}

func TestRendererIdentity(t *testing.T) {
	r, err := template.New(template.WithTemplateString("x"))
	require.NoError(t, err)
	assert.Equal(t, "template", r.Name())
	assert.Equal(t, "text/plain", r.ContentType())
}
