package load_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/byBretema/enumc/compiler/load"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "enumc.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCacheLoad(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
package: github.com/org/game/enums
enums:
  - name: LightsView
    members: [Isometric, FirstPerson]
`)
	c := load.NewCache()

	m1, changed, err := c.Load(path)
	require.NoError(t, err)
	assert.True(t, changed, "first read counts as changed")
	require.Len(t, m1.Enums, 1)

	m2, changed, err := c.Load(path)
	require.NoError(t, err)
	assert.False(t, changed, "unchanged contents are not re-parsed")
	assert.Same(t, m1, m2)
}

func TestCacheLoad_Modified(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
package: github.com/org/game/enums
enums:
  - name: LightsView
    members: [Isometric]
`)
	c := load.NewCache()
	_, _, err := c.Load(path)
	require.NoError(t, err)

	writeManifest(t, dir, `
package: github.com/org/game/enums
enums:
  - name: LightsView
    members: [Isometric, FirstPerson]
`)
	m, changed, err := c.Load(path)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"Isometric", "FirstPerson"}, m.Enums[0].Members)
}

func TestCacheInvalidate(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
package: github.com/org/game/enums
enums:
  - name: LightsView
    members: [Isometric]
`)
	c := load.NewCache()
	_, _, err := c.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	c.Invalidate(path)
	assert.Equal(t, 0, c.Len())

	_, changed, err := c.Load(path)
	require.NoError(t, err)
	assert.True(t, changed, "invalidated entries count as changed on reload")
}

func TestCacheClear(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
package: github.com/org/game/enums
enums:
  - name: LightsView
    members: [Isometric]
`)
	c := load.NewCache()
	_, _, err := c.Load(path)
	require.NoError(t, err)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheLoad_Errors(t *testing.T) {
	c := load.NewCache()

	_, _, err := c.Load(filepath.Join(t.TempDir(), "nosuch.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")

	path := writeManifest(t, t.TempDir(), "enmus: nope")
	_, _, err = c.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse manifest")
	assert.Equal(t, 0, c.Len(), "failed parses are not cached")
}
