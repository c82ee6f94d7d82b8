package gen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byBretema/enumc/compiler/load"
)

func TestNewGraph(t *testing.T) {
	t.Run("keeps load order", func(t *testing.T) {
		graph, err := NewGraph(&Config{Package: "lights/enums"},
			&load.Spec{Name: "Status", Sentinel: true, Members: []string{"Green", "Yellow", "Red"}},
			&load.Spec{Name: "Priority", Members: []string{"Low", "Mid", "High"}},
		)
		require.NoError(t, err)
		require.Len(t, graph.Nodes, 2)
		assert.Equal(t, "Status", graph.Nodes[0].Name)
		assert.Equal(t, "Priority", graph.Nodes[1].Name)
	})

	t.Run("rejects redeclared enums", func(t *testing.T) {
		_, err := NewGraph(&Config{},
			&load.Spec{Name: "Status", Members: []string{"Green"}},
			&load.Spec{Name: "Status", Members: []string{"Red"}},
		)
		require.EqualError(t, err, "enumc: spec error on enum Status: enum redeclared")
	})

	t.Run("rejects generated file collisions", func(t *testing.T) {
		// Both names share the label "http_code".
		_, err := NewGraph(&Config{},
			&load.Spec{Name: "HTTPCode", Members: []string{"OK"}},
			&load.Spec{Name: "HttpCode", Members: []string{"Accepted"}},
		)
		require.EqualError(t, err, "enumc: spec error on enum HttpCode: generated file \"http_code.go\" conflicts with enum \"HTTPCode\"")
	})

	t.Run("rejects generated identifier collisions", func(t *testing.T) {
		// The second enum type name collides with the first enum's
		// generated constant.
		_, err := NewGraph(&Config{},
			&load.Spec{Name: "Status", Members: []string{"Green"}},
			&load.Spec{Name: "StatusGreen", Members: []string{"On"}},
		)
		require.EqualError(t, err, "enumc: spec error on enum StatusGreen: generated identifier \"StatusGreen\" conflicts with enum \"Status\"")
	})

	t.Run("rejects invalid specs", func(t *testing.T) {
		_, err := NewGraph(&Config{}, &load.Spec{Name: "status", Members: []string{"Green"}})
		require.Error(t, err)
	})
}

func TestGraphGen(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		err := generate(&Graph{})
		require.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("missing target", func(t *testing.T) {
		err := generate(&Graph{Config: &Config{}})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "missing target directory")
	})

	t.Run("generator override", func(t *testing.T) {
		var got *Graph
		graph, err := NewGraph(&Config{
			Target: t.TempDir(),
			Generator: GenerateFunc(func(g *Graph) error {
				got = g
				return nil
			}),
		}, &load.Spec{Name: "Status", Members: []string{"Green"}})
		require.NoError(t, err)

		require.NoError(t, graph.Gen())
		assert.Equal(t, graph, got)

		// The override replaces the default emission entirely.
		entries, err := os.ReadDir(graph.Target)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestGraphHooks(t *testing.T) {
	var order []string
	hook := func(name string) Hook {
		return func(next Generator) Generator {
			return GenerateFunc(func(g *Graph) error {
				order = append(order, name)
				return next.Generate(g)
			})
		}
	}

	graph, err := NewGraph(&Config{
		Target: t.TempDir(),
		Hooks:  []Hook{hook("first"), hook("second")},
		Generator: GenerateFunc(func(*Graph) error {
			order = append(order, "generate")
			return nil
		}),
	}, &load.Spec{Name: "Status", Members: []string{"Green"}})
	require.NoError(t, err)

	require.NoError(t, graph.Gen())
	assert.Equal(t, []string{"first", "second", "generate"}, order, "hooks run in declaration order around the generator")
}

func TestGraphEnabledCodecs(t *testing.T) {
	t.Run("filtered by features", func(t *testing.T) {
		g := &Graph{Config: &Config{Features: []Feature{FeatureTextCodec, FeatureSQLCodec}}}
		assert.Equal(t, []string{CodecText, CodecSQL}, g.enabledCodecs(drivers[0]))
	})

	t.Run("filtered by driver support", func(t *testing.T) {
		g := &Graph{Config: &Config{Features: []Feature{FeatureTextCodec, FeatureGraphQLCodec}}}
		d := &Driver{Name: "text-only", CodecMode: Text}
		assert.Equal(t, []string{CodecText}, g.enabledCodecs(d))
	})

	t.Run("none enabled", func(t *testing.T) {
		g := &Graph{Config: &Config{}}
		assert.Empty(t, g.enabledCodecs(drivers[0]))
	})
}

func TestGenerateFunc(t *testing.T) {
	called := false
	f := GenerateFunc(func(*Graph) error {
		called = true
		return nil
	})
	require.NoError(t, f.Generate(&Graph{}))
	assert.True(t, called)
}
