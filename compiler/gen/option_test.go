package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("// Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "// Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	t.Run("sets package", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("github.com/org/project/lights")(c)

		require.NoError(t, err)
		assert.Equal(t, "github.com/org/project/lights", c.Package)
	})

	t.Run("empty package returns error", func(t *testing.T) {
		c := &Config{}
		err := WithPackage("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target directory", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("./lights")(c)

		require.NoError(t, err)
		assert.Equal(t, "./lights", c.Target)
	})

	t.Run("empty target returns error", func(t *testing.T) {
		c := &Config{}
		err := WithTarget("")(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithFeatures(t *testing.T) {
	t.Run("adds single feature", func(t *testing.T) {
		c := &Config{}
		err := WithFeatures(FeatureSQLCodec)(c)

		require.NoError(t, err)
		assert.Equal(t, 1, len(c.Features))
		assert.Equal(t, "codec/sql", c.Features[0].Name)
	})

	t.Run("adds multiple features", func(t *testing.T) {
		c := &Config{}
		err := WithFeatures(FeatureSQLCodec, FeatureSnapshot)(c)

		require.NoError(t, err)
		assert.Equal(t, 2, len(c.Features))
	})

	t.Run("appends to existing features", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureTextCodec}}
		err := WithFeatures(FeatureSnapshot)(c)

		require.NoError(t, err)
		assert.Equal(t, 2, len(c.Features))
	})
}

func TestWithFeatureNames(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		wantErr bool
	}{
		{"text codec", []string{"codec/text"}, false},
		{"sql codec", []string{"codec/sql"}, false},
		{"several", []string{"codec/graphql", "snapshot"}, false},
		{"unknown", []string{"codec/protobuf"}, true},
		{"empty name", []string{""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithFeatureNames(tt.flags...)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.flags), len(c.Features))
			}
		})
	}
}

func TestWithDriver(t *testing.T) {
	t.Run("sets driver", func(t *testing.T) {
		d, err := NewDriver("jennifer")
		require.NoError(t, err)

		c := &Config{}
		err = WithDriver(d)(c)

		require.NoError(t, err)
		assert.Equal(t, d, c.Driver)
	})

	t.Run("nil driver returns error", func(t *testing.T) {
		c := &Config{}
		err := WithDriver(nil)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithDriverName(t *testing.T) {
	tests := []struct {
		name    string
		driver  string
		wantErr bool
	}{
		{"jennifer", "jennifer", false},
		{"invalid", "protoc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithDriverName(tt.driver)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
			} else {
				require.NoError(t, err)
				require.NotNil(t, c.Driver)
				assert.Equal(t, tt.driver, c.Driver.Name)
			}
		})
	}
}

func TestWithHooks(t *testing.T) {
	t.Run("adds hooks", func(t *testing.T) {
		hook := func(next Generator) Generator { return next }
		c := &Config{}
		err := WithHooks(hook)(c)

		require.NoError(t, err)
		assert.Equal(t, 1, len(c.Hooks))
	})

	t.Run("appends to existing hooks", func(t *testing.T) {
		hook1 := func(next Generator) Generator { return next }
		hook2 := func(next Generator) Generator { return next }
		c := &Config{Hooks: []Hook{hook1}}
		err := WithHooks(hook2)(c)

		require.NoError(t, err)
		assert.Equal(t, 2, len(c.Hooks))
	})
}

func TestWithTemplates(t *testing.T) {
	t.Run("adds templates", func(t *testing.T) {
		tmpl := NewTemplate("custom")
		c := &Config{}
		err := WithTemplates(tmpl)(c)

		require.NoError(t, err)
		assert.Equal(t, 1, len(c.Templates))
	})

	t.Run("appends to existing templates", func(t *testing.T) {
		tmpl1 := NewTemplate("existing")
		tmpl2 := NewTemplate("new")
		c := &Config{Templates: []*Template{tmpl1}}
		err := WithTemplates(tmpl2)(c)

		require.NoError(t, err)
		assert.Equal(t, 2, len(c.Templates))
	})
}

func TestWithAnnotations(t *testing.T) {
	t.Run("sets annotations on nil map", func(t *testing.T) {
		c := &Config{}
		err := WithAnnotations(Annotations{"key": "value"})(c)

		require.NoError(t, err)
		assert.Equal(t, "value", c.Annotations["key"])
	})

	t.Run("merges with existing annotations", func(t *testing.T) {
		c := &Config{Annotations: Annotations{"existing": "value"}}
		err := WithAnnotations(Annotations{"new": "value2"})(c)

		require.NoError(t, err)
		assert.Equal(t, "value", c.Annotations["existing"])
		assert.Equal(t, "value2", c.Annotations["new"])
	})

	t.Run("overwrites existing keys", func(t *testing.T) {
		c := &Config{Annotations: Annotations{"key": "old"}}
		err := WithAnnotations(Annotations{"key": "new"})(c)

		require.NoError(t, err)
		assert.Equal(t, "new", c.Annotations["key"])
	})
}

func TestWithGenerator(t *testing.T) {
	t.Run("sets generator", func(t *testing.T) {
		c := &Config{}
		err := WithGenerator(GenerateFunc(func(*Graph) error { return nil }))(c)

		require.NoError(t, err)
		assert.NotNil(t, c.Generator)
	})

	t.Run("nil generator returns error", func(t *testing.T) {
		c := &Config{}
		err := WithGenerator(nil)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestConfigApply(t *testing.T) {
	t.Run("applies multiple options", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage("github.com/test/project"),
			WithTarget("./lights"),
			WithHeader("// Custom"),
		)

		require.NoError(t, err)
		assert.Equal(t, "github.com/test/project", c.Package)
		assert.Equal(t, "./lights", c.Target)
		assert.Equal(t, "// Custom", c.Header)
	})

	t.Run("stops on first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithPackage(""),        // Error
			WithTarget("./lights"), // Should not be applied
		)

		require.Error(t, err)
		assert.Empty(t, c.Package)
		assert.Empty(t, c.Target)
	})
}

func TestConfigApplyAll(t *testing.T) {
	t.Run("collects all errors", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage(""), // Error
			WithTarget(""),  // Error
		)

		require.Error(t, err)
		// errors.Join returns an error with Unwrap() []error
		unwrapper, ok := err.(interface{ Unwrap() []error })
		require.True(t, ok, "error should implement Unwrap() []error")
		assert.Equal(t, 2, len(unwrapper.Unwrap()))
	})

	t.Run("returns nil when all succeed", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage("github.com/test"),
			WithTarget("./lights"),
		)

		require.NoError(t, err)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("creates config with options", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage("github.com/test/project"),
			WithTarget("./lights"),
		)

		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "github.com/test/project", c.Package)
		assert.Equal(t, "./lights", c.Target)
	})

	t.Run("starts from the defaults", func(t *testing.T) {
		c, err := NewConfig(WithTarget("./lights"))

		require.NoError(t, err)
		assert.Equal(t, defaultHeader, c.Header)
		assert.True(t, c.HasFeature(FeatureTextCodec.Name))
	})

	t.Run("returns error on invalid option", func(t *testing.T) {
		c, err := NewConfig(
			WithPackage(""),
		)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestMustNewConfig(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		c := MustNewConfig(
			WithPackage("github.com/test/project"),
		)

		require.NotNil(t, c)
		assert.Equal(t, "github.com/test/project", c.Package)
	})

	t.Run("panics on error", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNewConfig(WithPackage(""))
		})
	})
}
