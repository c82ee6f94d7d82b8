package compiler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byBretema/enumc/compiler"
	"github.com/byBretema/enumc/compiler/gen"
	"github.com/byBretema/enumc/compiler/load"
	"github.com/byBretema/enumc/schema"
)

// writeManifest drops a manifest with the given body into dir.
func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "enumc.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const manifest = `
package: github.com/acme/app/internal/enums
enums:
  - name: Status
    sentinel: true
    members: [Green, Yellow, Red]
  - name: Priority
    members: [Low, Medium, High]
`

func TestLoadGraph(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	cfg := &gen.Config{}
	graph, err := compiler.LoadGraph(path, cfg)
	require.NoError(t, err)
	require.Len(t, graph.Nodes, 2)
	assert.Equal(t, "Status", graph.Nodes[0].Name)
	assert.Equal(t, "Priority", graph.Nodes[1].Name)

	assert.Equal(t, "github.com/acme/app/internal/enums", cfg.Package)
	assert.Equal(t, dir, cfg.Target, "a manifest without a target generates next to itself")
}

func TestLoadGraphConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	out := filepath.Join(dir, "out")
	cfg := &gen.Config{Package: "github.com/acme/app/enums", Target: out}
	_, err := compiler.LoadGraph(path, cfg)
	require.NoError(t, err)

	assert.Equal(t, "github.com/acme/app/enums", cfg.Package, "explicit config beats the manifest")
	assert.Equal(t, out, cfg.Target)
}

func TestLoadGraphRelativeTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
package: github.com/acme/app/internal/enums
target: gen/enums
enums:
  - name: Status
    sentinel: true
    members: [Green]
`)

	cfg := &gen.Config{}
	_, err := compiler.LoadGraph(path, cfg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "gen", "enums"), cfg.Target, "relative targets anchor on the manifest directory")
}

func TestLoadGraphFeatures(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
package: github.com/acme/app/internal/enums
features: [codec/text, codec/sql]
enums:
  - name: Status
    sentinel: true
    members: [Green]
`)

	cfg := &gen.Config{Features: []gen.Feature{gen.FeatureTextCodec}}
	_, err := compiler.LoadGraph(path, cfg)
	require.NoError(t, err)
	require.Len(t, cfg.Features, 2, "features already on the config are not duplicated")
	assert.True(t, cfg.HasFeature(gen.FeatureSQLCodec.Name))

	t.Run("unknown feature", func(t *testing.T) {
		path := writeManifest(t, t.TempDir(), `
package: github.com/acme/app/internal/enums
features: [codec/yaml]
enums:
  - name: Status
    sentinel: true
    members: [Green]
`)
		_, err := compiler.LoadGraph(path, &gen.Config{})
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
		assert.ErrorContains(t, err, "codec/yaml")
	})
}

func TestLoadGraphMissingManifest(t *testing.T) {
	_, err := compiler.LoadGraph(filepath.Join(t.TempDir(), "enumc.yml"), &gen.Config{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "open manifest")
}

func TestNewGraph(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	// The cache hands out the decoded manifest, the way a watch loop does.
	cache := load.NewCache()
	m, changed, err := cache.Load(path)
	require.NoError(t, err)
	require.True(t, changed)

	cfg := &gen.Config{}
	graph, err := compiler.NewGraph(m, cfg, dir)
	require.NoError(t, err)
	assert.Len(t, graph.Nodes, 2)
	assert.Equal(t, dir, cfg.Target)

	_, changed, err = cache.Load(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	require.NoError(t, compiler.Generate(path, &gen.Config{}))

	content, err := os.ReadFile(filepath.Join(dir, "status.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package enums")
	assert.Contains(t, string(content), "type Status int")
	_, err = os.Stat(filepath.Join(dir, "priority.go"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "doc.go"))
	require.NoError(t, err)
}

func TestGenerateOptionError(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	err := compiler.Generate(path, &gen.Config{}, compiler.FeatureNames("codec/yaml"))
	require.Error(t, err)
	assert.True(t, gen.IsConfigError(err))

	// A failing option aborts the run before anything is written.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestGenerateOptionPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	// Options run before the manifest is applied, so a target they set
	// wins over the manifest default.
	target := t.TempDir()
	require.NoError(t, compiler.Generate(path, &gen.Config{}, func(cfg *gen.Config) error {
		cfg.Target = target
		return nil
	}))

	_, err := os.Stat(filepath.Join(target, "status.go"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "status.go"))
	assert.True(t, os.IsNotExist(err))
}

// auditExtension exercises every extension surface at once.
type auditExtension struct {
	compiler.DefaultExtension
	generated *bool
}

func (e *auditExtension) Hooks() []gen.Hook {
	return []gen.Hook{func(next gen.Generator) gen.Generator {
		return gen.GenerateFunc(func(g *gen.Graph) error {
			*e.generated = true
			return next.Generate(g)
		})
	}}
}

func (e *auditExtension) Templates() []*gen.Template {
	return []*gen.Template{gen.MustParse(gen.NewTemplate("audit").Parse(
		"package enums\n\nconst auditEnums = {{ len $.Nodes }}\n"))}
}

func (e *auditExtension) Annotations() []schema.Annotation {
	return []schema.Annotation{schema.Comment("managed by acme-tools")}
}

func (e *auditExtension) Options() []compiler.Option {
	return []compiler.Option{compiler.FeatureNames(gen.FeatureTextCodec.Name)}
}

func TestExtensions(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	var generated bool
	cfg := &gen.Config{}
	require.NoError(t, compiler.Generate(path, cfg, compiler.Extensions(&auditExtension{generated: &generated})))

	assert.True(t, generated, "extension hooks wrap the generator")
	assert.True(t, cfg.HasFeature(gen.FeatureTextCodec.Name), "extension options apply to the config")
	assert.Equal(t, schema.Comment("managed by acme-tools"), cfg.Annotations["Comment"])

	_, err := os.Stat(filepath.Join(dir, "audit.go"))
	require.NoError(t, err, "extension templates are executed")
	_, err = os.Stat(filepath.Join(dir, "status_text.go"))
	require.NoError(t, err)
}

// labels is a mergeable annotation. Later extensions extend it instead of
// replacing it.
type labels []string

func (labels) Name() string { return "Labels" }

func (l labels) Merge(other schema.Annotation) schema.Annotation {
	return append(l, other.(labels)...)
}

type labeled struct {
	compiler.DefaultExtension
	l labels
}

func (e *labeled) Annotations() []schema.Annotation {
	return []schema.Annotation{e.l}
}

func TestExtensionsMergeAnnotations(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)

	cfg := &gen.Config{}
	require.NoError(t, compiler.Generate(path, cfg, compiler.Extensions(
		&labeled{l: labels{"graphql"}},
		&labeled{l: labels{"openapi"}},
	)))

	assert.Equal(t, labels{"graphql", "openapi"}, cfg.Annotations["Labels"])
}

func TestTemplateFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)
	tmpl := filepath.Join(dir, "audit.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte("package enums\n\nconst auditEnums = {{ len $.Nodes }}\n"), 0o644))

	require.NoError(t, compiler.Generate(path, &gen.Config{}, compiler.TemplateFiles(tmpl)))

	content, err := os.ReadFile(filepath.Join(dir, "audit.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "const auditEnums = 2")

	t.Run("missing file", func(t *testing.T) {
		err := compiler.Generate(path, &gen.Config{}, compiler.TemplateFiles(filepath.Join(dir, "no-such.tmpl")))
		require.Error(t, err)
	})
}

func TestTemplateGlob(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, manifest)
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "audit.tmpl"),
		[]byte("package enums\n\nconst auditEnums = {{ len $.Nodes }}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "report.tmpl"),
		[]byte("package enums\n\nconst reportEnums = {{ len $.Nodes }}\n"), 0o644))

	require.NoError(t, compiler.Generate(path, &gen.Config{}, compiler.TemplateGlob(filepath.Join(src, "*.tmpl"))))

	for _, name := range []string{"audit.go", "report.go"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
	}
}
