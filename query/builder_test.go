package query

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereMergesConditions(t *testing.T) {
	b := New("users").
		Where(map[string]any{"name": "Cedric"}).
		Where(map[string]any{"email": "c@x.com"})

	assert.Equal(t, map[string]any{"name": "Cedric", "email": "c@x.com"}, b.Query())
}

func TestWhereLaterKeysWin(t *testing.T) {
	b := New("users").
		Where(map[string]any{"status": "draft", "name": "Cedric"}).
		Where(map[string]any{"status": "published"})

	assert.Equal(t, "published", b.Query()["status"])
	assert.Equal(t, "Cedric", b.Query()["name"])
}

func TestFilterBehavesLikeWhere(t *testing.T) {
	a := New("users").Where(map[string]any{"name": "Cedric"})
	b := New("users").Filter(map[string]any{"name": "Cedric"})

	assert.Equal(t, a.Query(), b.Query())
}

func TestResetClearsAccumulationNotIdentity(t *testing.T) {
	parent := New("users").SetID(1)
	b := New("medias").SetParent(parent)
	b.Where(map[string]any{"x": 1}).Limit(5).OrderBy("name", "desc").SetID(9).SetMethod(http.MethodPost).SetBody(map[string]any{"a": 1})

	b.Reset()

	assert.Empty(t, b.Query())
	assert.NotNil(t, b.Query())
	assert.Nil(t, b.ID())
	assert.Equal(t, "", b.Sort())
	assert.Equal(t, "", b.Direction())
	assert.Nil(t, b.Body())
	assert.Equal(t, http.MethodGet, b.Method())

	m := b.ToMap()
	assert.NotContains(t, m, "limit")
	assert.NotContains(t, m, "offset")

	// Identity survives a reset.
	assert.Equal(t, "medias", b.Resource())
	assert.Same(t, parent, b.Parent())
}

func TestPaginateDerivation(t *testing.T) {
	cases := []struct {
		page, perPage  int
		offset, limit  int
	}{
		{1, 10, 0, 10},
		{2, 10, 10, 10},
		{3, 25, 50, 25},
		{1, 1, 0, 1},
	}

	for _, tc := range cases {
		b := New("users").Paginate(tc.page, tc.perPage)
		m := b.ToMap()
		assert.Equal(t, tc.page, m["page"])
		assert.Equal(t, tc.perPage, m["perPage"])
		assert.Equal(t, tc.offset, m["offset"])
		assert.Equal(t, tc.limit, m["limit"])
	}
}

func TestOrderByLastCallWins(t *testing.T) {
	b := New("users").OrderBy("name", "asc").OrderBy("created_at", "desc")

	assert.Equal(t, "created_at", b.Sort())
	assert.Equal(t, "desc", b.Direction())
}

func TestOrderByDefaults(t *testing.T) {
	b := New("users").OrderBy("", "sideways")

	assert.Equal(t, "id", b.Sort())
	assert.Equal(t, "asc", b.Direction())
}

func TestToMapOmitsAbsentFields(t *testing.T) {
	b := New("users").
		Where(map[string]any{"name": "Cedric"}).
		Filter(map[string]any{"email": "c@x.com"}).
		Limit(10)

	m := b.ToMap()
	require.Len(t, m, 2)
	assert.Equal(t, map[string]any{"name": "Cedric", "email": "c@x.com"}, m["query"])
	assert.Equal(t, 10, m["limit"])
}

func TestToMapAlwaysIncludesQuery(t *testing.T) {
	m := New("users").ToMap()

	require.Contains(t, m, "query")
	assert.Empty(t, m["query"].(map[string]any))
}

func TestSegmentsUnwrapRootFirst(t *testing.T) {
	users := New("users").SetID(1)
	medias := New("medias").SetID(2).SetParent(users)
	thumbnails := New("thumbnails").SetParent(medias)

	segments := thumbnails.Segments()
	require.Len(t, segments, 3)
	assert.Equal(t, Segment{Resource: "users", ID: 1}, segments[0])
	assert.Equal(t, Segment{Resource: "medias", ID: 2}, segments[1])
	assert.Equal(t, Segment{Resource: "thumbnails", ID: nil}, segments[2])
}

func TestCloneIsIndependent(t *testing.T) {
	parent := New("users").SetID(1)
	b := New("medias").SetParent(parent).Where(map[string]any{"kind": "video"}).Limit(3)

	clone := b.Clone()
	clone.Where(map[string]any{"kind": "image"}).Limit(7).SetID(42)
	clone.Parent().SetID(99)

	assert.Equal(t, "video", b.Query()["kind"])
	assert.Equal(t, 3, b.ToMap()["limit"])
	assert.Nil(t, b.ID())
	assert.Equal(t, 1, b.Parent().ID())
	assert.Equal(t, 99, clone.Parent().ID())
}
