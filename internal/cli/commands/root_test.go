package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restorm-go/restorm/query"
)

func TestBuildDescriptorCollection(t *testing.T) {
	b, err := buildDescriptor("users")
	require.NoError(t, err)
	assert.Equal(t, "users", b.Resource())
	assert.Nil(t, b.ID())
	assert.Nil(t, b.Parent())
}

func TestBuildDescriptorNestedChain(t *testing.T) {
	b, err := buildDescriptor("users/42/medias/7/thumbnails")
	require.NoError(t, err)

	segments := b.Segments()
	require.Len(t, segments, 3)
	assert.Equal(t, query.Segment{Resource: "users", ID: "42"}, segments[0])
	assert.Equal(t, query.Segment{Resource: "medias", ID: "7"}, segments[1])
	assert.Equal(t, query.Segment{Resource: "thumbnails"}, segments[2])
}

func TestBuildDescriptorTrailingID(t *testing.T) {
	b, err := buildDescriptor("users/42")
	require.NoError(t, err)
	assert.Equal(t, "users", b.Resource())
	assert.Equal(t, "42", b.ID())
}

func TestBuildDescriptorRejectsEmptyPaths(t *testing.T) {
	_, err := buildDescriptor("")
	assert.Error(t, err)

	_, err = buildDescriptor("users//medias")
	assert.Error(t, err)
}

func TestParseConditions(t *testing.T) {
	conditions, err := parseConditions([]string{"role=admin", "name=Cedric"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"role": "admin", "name": "Cedric"}, conditions)
}

func TestParseConditionsRejectsMalformedPairs(t *testing.T) {
	_, err := parseConditions([]string{"role"})
	assert.Error(t, err)

	_, err = parseConditions([]string{"=admin"})
	assert.Error(t, err)
}

func TestParseConditionsEmpty(t *testing.T) {
	conditions, err := parseConditions(nil)
	require.NoError(t, err)
	assert.Nil(t, conditions)
}
