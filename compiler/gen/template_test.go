package gen

import (
	"strings"
	"testing"
	"testing/fstest"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	// Templates are seeded with the codegen function map.
	tmpl := MustParse(NewTemplate("stats").Parse(`{{ pascal "light_mode" }}`))

	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, nil))
	assert.Equal(t, "LightMode", sb.String())
}

func TestTemplateFuncs(t *testing.T) {
	tmpl := NewTemplate("shout").Funcs(template.FuncMap{"shout": strings.ToUpper})
	tmpl = MustParse(tmpl.Parse(`{{ shout "go" }}`))

	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, nil))
	assert.Equal(t, "GO", sb.String())

	// The merged map keeps both the user and the seeded functions, so the
	// template writer can rebuild a shared namespace from it.
	assert.Contains(t, tmpl.FuncMap, "shout")
	assert.Contains(t, tmpl.FuncMap, "pascal")
}

func TestTemplateSkipIf(t *testing.T) {
	tmpl := NewTemplate("audit").SkipIf(func(g *Graph) bool { return len(g.Nodes) > 0 })
	require.NotNil(t, tmpl.condition)

	empty := &Graph{}
	assert.True(t, tmpl.condition(empty))

	populated, err := NewGraph(&Config{Package: "enums"}, testSpec("Status", true, "Green"))
	require.NoError(t, err)
	assert.False(t, tmpl.condition(populated))
}

func TestTemplateParseFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/audit.tmpl": &fstest.MapFile{
			Data: []byte("const generatedEnums = {{ len $.Nodes }}"),
		},
	}
	tmpl := MustParse(NewTemplate("fs").ParseFS(fsys, "templates/*.tmpl"))
	require.NotNil(t, tmpl.Lookup("audit.tmpl"))

	graph, err := NewGraph(&Config{Package: "enums"}, testSpec("Status", true, "Green"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, tmpl.ExecuteTemplate(&sb, "audit.tmpl", graph))
	assert.Equal(t, "const generatedEnums = 1", sb.String())
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() {
		MustParse(NewTemplate("ok").Parse("fine"))
	})
	assert.Panics(t, func() {
		MustParse(NewTemplate("bad").Parse("{{ broken"))
	})
}
