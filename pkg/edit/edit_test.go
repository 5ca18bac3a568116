package edit

import "testing"

import "github.com/stretchr/testify/assert"

func TestPredicates(t *testing.T) {
	assert.True(t, Insert(3, "hi").IsInsert())
	assert.False(t, Insert(3, "hi").IsDelete())

	assert.True(t, Delete(2, 5).IsDelete())
	assert.False(t, Delete(2, 5).IsInsert())

	r := New(2, 5, "xy")
	assert.True(t, r.IsReplace())
	assert.False(t, r.IsInsert())
	assert.False(t, r.IsDelete())

	noop := New(4, 4, "")
	assert.True(t, noop.IsNoop())
}

func TestDelta(t *testing.T) {
	assert.Equal(t, 2, Insert(0, "hi").Delta())
	assert.Equal(t, -3, Delete(0, 3).Delta())
	assert.Equal(t, 0, New(0, 3, "abc").Delta())
}

func TestInverseRoundTrip(t *testing.T) {
	e := New(2, 5, "xyz")
	replaced := "abc"
	inv := e.Inverse(replaced)
	assert.Equal(t, 2, inv.Start)
	assert.Equal(t, 2+len([]rune(e.Text)), inv.End)
	assert.Equal(t, replaced, inv.Text)
}

func TestJSONRoundTrip(t *testing.T) {
	e := New(1, 4, "héllo")
	j := e.ToJSON()
	assert.Equal(t, e, FromJSON(j))
}
