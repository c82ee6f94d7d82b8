package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotationNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "GraphQL", Annotation{}.Name())
	assert.Equal(t, "GraphQLType", Type("ViewMode").Name())
}

func TestTypeName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ViewMode", TypeName(Type("ViewMode"), "LightsView"))
	assert.Equal(t, "ViewMode", TypeName("ViewMode", "LightsView"))
	assert.Equal(t, "ViewMode", TypeName(map[string]any{"type_name": "ViewMode"}, "LightsView"))
	assert.Equal(t, "LightsView", TypeName(nil, "LightsView"))
	assert.Equal(t, "LightsView", TypeName(Type(""), "LightsView"))
	assert.Equal(t, "LightsView", TypeName("", "LightsView"))
	assert.Equal(t, "LightsView", TypeName(map[string]any{}, "LightsView"))
}
