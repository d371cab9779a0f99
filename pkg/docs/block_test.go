package docs_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-recipedocs/pkg/docs"
	"github.com/goliatone/go-recipedocs/pkg/easyblock"
	"github.com/goliatone/go-recipedocs/pkg/easyconfig"
)

func TestDocBlockMinimal(t *testing.T) {
	gen := docs.New()

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "Foo",
		Bases:       []string{"EasyBlock"},
		Description: "Builds Foo.",
	})
	require.NoError(t, err)

	// No extras, no common-params entry, no example file: title block,
	// inheritance line, and description only.
	want := strings.Join([]string{
		"``Foo``",
		"=======",
		"",
		"(derives from ``EasyBlock``)",
		"",
		"Builds Foo.",
		"",
	}, "\n")
	assert.Equal(t, want, block)
}

func TestDocBlockMultipleBases(t *testing.T) {
	gen := docs.New()

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "CMakePythonPackage",
		Bases:       []string{"CMakeMake", "PythonPackage"},
		Description: "Builds software with CMake and installs it as a Python package.",
	})
	require.NoError(t, err)
	assert.Contains(t, block, "(derives from ``CMakeMake``, ``PythonPackage``)")
}

func TestDocBlockExtraOptionsTable(t *testing.T) {
	gen := docs.New()

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "ConfigureMake",
		Bases:       []string{"EasyBlock"},
		Description: "Support for building with configure and make.",
		Extra: easyconfig.Table{
			"configure_cmd_prefix": {
				Default:     "",
				Description: "Prefix to be glued before ./configure",
				Category:    build,
			},
		},
	})
	require.NoError(t, err)

	heading := "Extra easyconfig parameters specific to ``ConfigureMake`` easyblock"
	assert.Contains(t, block, heading+"\n"+strings.Repeat("-", len(heading)))

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-len(s))
	}

	// Column widths: name 20+4 for the literal decoration, description 37
	// (longest entry), default 13+4 (title wins, plus decoration).
	rule := strings.Repeat("=", 24) + "   " + strings.Repeat("=", 37) + "   " + strings.Repeat("=", 17)
	header := pad("easyconfig parameter", 24) + "   " + pad("description", 37) + "   " + pad("default value", 17)
	row := "``configure_cmd_prefix``" + "   " + pad("Prefix to be glued before ./configure", 37) + "   " + pad("``''``", 17)

	assert.Contains(t, block, strings.Join([]string{rule, header, rule, row, rule}, "\n"))
}

func TestDocBlockExtraOptionsSorted(t *testing.T) {
	gen := docs.New()

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "PythonPackage",
		Bases:       []string{"ExtensionEasyBlock"},
		Description: "Builds and installs a Python package.",
		Extra: easyconfig.Table{
			"use_pip":   {Default: false, Description: "Install using pip", Category: build},
			"runtest":   {Default: true, Description: "Run unit tests", Category: build},
			"unpack_it": {Default: true, Description: "Unpack the sources", Category: build},
		},
	})
	require.NoError(t, err)

	runtest := strings.Index(block, "``runtest``")
	unpack := strings.Index(block, "``unpack_it``")
	usePip := strings.Index(block, "``use_pip``")
	require.NotEqual(t, -1, runtest)
	require.NotEqual(t, -1, unpack)
	require.NotEqual(t, -1, usePip)
	assert.Less(t, runtest, unpack)
	assert.Less(t, unpack, usePip)
}

func TestDocBlockCommonParams(t *testing.T) {
	gen := docs.New(
		docs.WithDefaults(testDefaults()),
		docs.WithCommonParams(map[string][]string{
			"ConfigureMake": {"name", "buildopts", "no_such_param"},
		}),
	)

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "ConfigureMake",
		Bases:       []string{"EasyBlock"},
		Description: "Support for building with configure and make.",
	})
	require.NoError(t, err)

	heading := "Commonly used easyconfig parameters with ``ConfigureMake`` easyblock"
	assert.Contains(t, block, heading+"\n"+strings.Repeat("-", len(heading)))
	assert.Contains(t, block, "* ``name`` - Name of the software")
	assert.Contains(t, block, "* ``buildopts`` - Extra options for make")
	// Entries missing from the default table are dropped from the list.
	assert.NotContains(t, block, "no_such_param")
}

func TestDocBlockExampleFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"Binary.eb": &fstest.MapFile{
			Data: []byte("name = 'snappy'   \nversion = '1.1.8'\n"),
		},
	}
	gen := docs.New(docs.WithExamplesFS(fsys))

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "Binary",
		Bases:       []string{"EasyBlock"},
		Description: "Support for installing prebuilt binaries.",
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"Example",
		"--------",
		"",
		"::",
		"",
		"    name = 'snappy'",
		"    version = '1.1.8'",
		"",
	}, "\n")
	assert.True(t, strings.HasSuffix(block, want), "example block mismatch:\n%s", block)
}

func TestDocBlockExampleMissingIsSkipped(t *testing.T) {
	gen := docs.New(docs.WithExamplesFS(fstest.MapFS{}))

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "Foo",
		Bases:       []string{"EasyBlock"},
		Description: "Builds Foo.",
	})
	require.NoError(t, err)
	assert.NotContains(t, block, "Example")
}

func TestDocBlockEmbeddedExamples(t *testing.T) {
	gen := docs.New()

	block, err := gen.DocBlock(easyblock.Descriptor{
		Name:        "ConfigureMake",
		Bases:       []string{"EasyBlock"},
		Description: "Support for building with configure and make.",
	})
	require.NoError(t, err)

	assert.Contains(t, block, "Example")
	assert.Contains(t, block, "    easyblock = 'ConfigureMake'")
}

func TestDocBlockMissingDescription(t *testing.T) {
	gen := docs.New()

	_, err := gen.DocBlock(easyblock.Descriptor{Name: "Foo", Bases: []string{"EasyBlock"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no description")

	// Markup-only descriptions sanitize down to nothing and fail the same way.
	_, err = gen.DocBlock(easyblock.Descriptor{
		Name:        "Bar",
		Bases:       []string{"EasyBlock"},
		Description: "<div></div>",
	})
	require.Error(t, err)
}

func TestGenericBlocks(t *testing.T) {
	gen := docs.New(
		docs.WithDefaults(testDefaults()),
		docs.WithBlocks(testBlocks(t)),
	)

	titles := func() []string {
		blocks, err := gen.GenericBlocks(context.Background())
		require.NoError(t, err)

		var out []string
		for _, block := range blocks {
			out = append(out, strings.SplitN(block, "\n", 2)[0])
		}
		sort.Strings(out)
		return out
	}

	first := titles()
	// GCC lives outside the generic namespace and is excluded.
	assert.Equal(t, []string{"``Binary``", "``ConfigureMake``"}, first)

	// Enumerating twice yields the same set of blocks, no duplicates.
	assert.Equal(t, first, titles())
}

func TestGenericBlocksCancelledContext(t *testing.T) {
	gen := docs.New(
		docs.WithDefaults(testDefaults()),
		docs.WithBlocks(testBlocks(t)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.GenericBlocks(ctx)
	require.Error(t, err)
}
