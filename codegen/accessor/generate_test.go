package accessor_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/autoreg/codegen/accessor"
	"goa.design/autoreg/codegen/model"
	"goa.design/autoreg/codegen/testhelpers"
)

var defaultRegistry = model.Registry{
	Selector: "Submodules()",
	Contains: "Contains",
	Remove:   "Remove",
	Register: "RegisterModule",
}

func TestGenerate_Golden(t *testing.T) {
	cases := []struct {
		golden string
		field  model.Field
	}{
		{
			golden: "container_widget.go.golden",
			field: model.Field{
				Namespace:    "N",
				PkgPath:      "example.com/n",
				Dir:          "/src/n",
				TypeName:     "Container",
				Receiver:     "c",
				FieldName:    "widget",
				FieldType:    "Widget",
				AccessorName: "Widget",
				SetterName:   "SetWidget",
				Registry:     defaultRegistry,
			},
		},
		{
			golden: "generic_imports.go.golden",
			field: model.Field{
				Namespace:  "cache",
				PkgPath:    "example.com/cache",
				Dir:        "/src/cache",
				TypeName:   "Store",
				TypeParams: []string{"K", "V"},
				Receiver:   "s",
				FieldName:  "loader",
				FieldType:  "func(K, time.Duration) *yaml.Node",
				Imports: []model.Import{
					{Name: "yaml", Path: "gopkg.in/yaml.v3"},
					{Name: "time", Path: "time"},
				},
				AccessorName: "Loader",
				SetterName:   "SetLoader",
				Registry:     defaultRegistry,
			},
		},
		{
			golden: "build_constraint.go.golden",
			field: model.Field{
				Namespace:       "N",
				PkgPath:         "example.com/n",
				Dir:             "/src/n",
				TypeName:        "Container",
				Receiver:        "c",
				FieldName:       "widget",
				FieldType:       "*Widget",
				AccessorName:    "Widget",
				SetterName:      "SetWidget",
				Registry:        defaultRegistry,
				BuildConstraint: "extra && linux",
			},
		},
		{
			golden: "field_registry.go.golden",
			field: model.Field{
				Namespace:    "tree",
				PkgPath:      "example.com/tree",
				Dir:          "/src/tree",
				TypeName:     "Node",
				Receiver:     "n",
				FieldName:    "left",
				FieldType:    "*Node",
				AccessorName: "Left",
				SetterName:   "SetLeft",
				Registry: model.Registry{
					Selector: "children",
					Contains: "Has",
					Remove:   "Delete",
					Register: "Add",
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(strings.TrimSuffix(c.golden, ".go.golden"), func(t *testing.T) {
			src, err := accessor.Generate(c.field)
			require.NoError(t, err)
			testhelpers.AssertGolden(t, c.golden, src)
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	f := model.Field{
		Namespace:    "N",
		Dir:          "/src/n",
		TypeName:     "Container",
		Receiver:     "c",
		FieldName:    "widget",
		FieldType:    "Widget",
		AccessorName: "Widget",
		SetterName:   "SetWidget",
		Registry:     defaultRegistry,
	}
	first, err := accessor.Generate(f)
	require.NoError(t, err)
	second, err := accessor.Generate(f)
	require.NoError(t, err)
	require.True(t, bytes.Equal(first, second))
}

func TestGenerate_Header(t *testing.T) {
	src, err := accessor.Generate(model.Field{
		Namespace:    "N",
		TypeName:     "Container",
		Receiver:     "c",
		FieldName:    "widget",
		FieldType:    "int",
		AccessorName: "Widget",
		SetterName:   "SetWidget",
		Registry:     defaultRegistry,
	})
	require.NoError(t, err)
	first, _, _ := strings.Cut(string(src), "\n")
	require.Equal(t, accessor.Header, first)
}

func TestFile_Path(t *testing.T) {
	f := accessor.File(model.Field{
		Namespace:    "N",
		Dir:          "/src/n",
		TypeName:     "Container",
		Receiver:     "c",
		FieldName:    "widget",
		FieldType:    "Widget",
		AccessorName: "Widget",
		SetterName:   "SetWidget",
		Registry:     defaultRegistry,
	})
	require.Equal(t, filepath.Join("/src/n", "Container_widget_autoreg.go"), f.Path)
	require.Len(t, f.SectionTemplates, 2)
}

func TestRender_InvalidSource(t *testing.T) {
	f := accessor.File(model.Field{
		Namespace:    "N",
		TypeName:     "Container",
		Receiver:     "c",
		FieldName:    "widget",
		FieldType:    "func(",
		AccessorName: "Widget",
		SetterName:   "SetWidget",
		Registry:     defaultRegistry,
	})
	_, err := accessor.Render(f)
	require.ErrorContains(t, err, "format")
}
