package load_test

import (
	"testing"

	"github.com/byBretema/enumc/compiler/load"
	"github.com/byBretema/enumc/schema"
	"github.com/byBretema/enumc/schema/enum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSpec(t *testing.T) {
	t.Run("sentinel enum", func(t *testing.T) {
		s, err := load.NewSpec(enum.Uint8("LightsView").
			Values("Isometric", "FirstPerson", "ThirdPerson", "Free").
			WithSentinel().
			Descriptor())
		require.NoError(t, err)
		assert.Equal(t, "LightsView", s.Name)
		assert.Equal(t, "uint8", s.Underlying)
		assert.True(t, s.Sentinel)
		assert.Equal(t, "None", s.SentinelName, "unnamed sentinel defaults to None")
		assert.Equal(t, []string{"Isometric", "FirstPerson", "ThirdPerson", "Free"}, s.Members)
	})

	t.Run("renamed sentinel", func(t *testing.T) {
		s, err := load.NewSpec(enum.Int("Mode").
			Values("Read", "Write").
			SentinelName("Unset").
			Descriptor())
		require.NoError(t, err)
		assert.Equal(t, "Unset", s.SentinelName)
	})

	t.Run("plain enum", func(t *testing.T) {
		s, err := load.NewSpec(enum.Int("Weekday").
			Values("Monday", "Tuesday").
			Descriptor())
		require.NoError(t, err)
		assert.False(t, s.Sentinel)
		assert.Empty(t, s.SentinelName)
	})

	t.Run("builder error propagates", func(t *testing.T) {
		members := make([]string, enum.MaxMembers+1)
		for i := range members {
			members[i] = "M" + string(rune('A'+i))
		}
		_, err := load.NewSpec(enum.Int("Big").Values(members...).Descriptor())
		require.Error(t, err)
		assert.Contains(t, err.Error(), `enum "Big"`)
	})

	t.Run("invalid underlying type", func(t *testing.T) {
		_, err := load.NewSpec(&enum.Descriptor{Name: "Broken"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid underlying type")
	})

	t.Run("annotations", func(t *testing.T) {
		s, err := load.NewSpec(enum.Uint8("LightsView").
			Values("Isometric").
			Annotations(schema.Comment("camera projection")).
			Descriptor())
		require.NoError(t, err)
		require.Contains(t, s.Annotations, "Comment")
	})
}

func TestSpecType(t *testing.T) {
	s, err := load.NewSpec(enum.Uint16("Port").Values("HTTP", "HTTPS").Descriptor())
	require.NoError(t, err)
	typ, err := s.Type()
	require.NoError(t, err)
	assert.Equal(t, enum.TypeUint16, typ)

	s = &load.Spec{Name: "Broken", Underlying: "float64"}
	_, err = s.Type()
	assert.Error(t, err)
}

func TestMarshalSpec(t *testing.T) {
	buf, err := load.MarshalSpec(enum.Uint8("LightsView").
		Values("Isometric", "FirstPerson").
		WithSentinel().
		Comment("camera projection"))
	require.NoError(t, err)

	s, err := load.UnmarshalSpec(buf)
	require.NoError(t, err)
	assert.Equal(t, "LightsView", s.Name)
	assert.Equal(t, "uint8", s.Underlying)
	assert.True(t, s.Sentinel)
	assert.Equal(t, "None", s.SentinelName)
	assert.Equal(t, []string{"Isometric", "FirstPerson"}, s.Members)
	assert.Equal(t, "camera projection", s.Comment)
}

func TestMarshalSpec_BuilderError(t *testing.T) {
	members := make([]string, enum.MaxMembers+1)
	for i := range members {
		members[i] = "M" + string(rune('A'+i))
	}
	_, err := load.MarshalSpec(enum.Int("Big").Values(members...))
	require.Error(t, err)
}

type panicDef struct{}

func (panicDef) Descriptor() *enum.Descriptor {
	panic("boom")
}

func TestMarshalSpec_Panic(t *testing.T) {
	_, err := load.MarshalSpec(panicDef{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Descriptor panics: boom")
}

func TestUnmarshalSpec_Defaults(t *testing.T) {
	t.Run("underlying defaults to int", func(t *testing.T) {
		s, err := load.UnmarshalSpec([]byte(`{"name":"Weekday","members":["Monday"]}`))
		require.NoError(t, err)
		assert.Equal(t, "int", s.Underlying)
		assert.False(t, s.Sentinel)
	})

	t.Run("sentinel name implies sentinel", func(t *testing.T) {
		s, err := load.UnmarshalSpec([]byte(`{"name":"Mode","members":["Read"],"sentinel_name":"Unset"}`))
		require.NoError(t, err)
		assert.True(t, s.Sentinel)
		assert.Equal(t, "Unset", s.SentinelName)
	})

	t.Run("sentinel gets default name", func(t *testing.T) {
		s, err := load.UnmarshalSpec([]byte(`{"name":"Mode","members":["Read"],"sentinel":true}`))
		require.NoError(t, err)
		assert.Equal(t, load.DefaultSentinelName, s.SentinelName)
	})
}
