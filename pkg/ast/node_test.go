package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	t.Parallel()

	outer := Span{Start: 0, End: 10}
	assert.Equal(t, 10, outer.Len())
	assert.True(t, outer.Contains(Span{Start: 2, End: 5}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Span{Start: 5, End: 11}))
}

func TestExtent(t *testing.T) {
	t.Parallel()

	span, ok := Leaf("String", 3, 7).Extent()
	require.True(t, ok)
	assert.Equal(t, Span{Start: 3, End: 7}, span)

	_, ok = Unspanned("Unknown").Extent()
	assert.False(t, ok)

	var nilNode *Node
	_, ok = nilNode.Extent()
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	input := `{
		"name": "Program",
		"span": {"start": 0, "end": 18, "line": 0, "line_end": 0},
		"children": [
			{"name": "SqlKeyword", "span": {"start": 0, "end": 6}},
			{"name": "Unknown"}
		]
	}`

	root, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "Program", root.Tag)
	require.NotNil(t, root.Span)
	assert.Equal(t, 18, root.Span.End)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "SqlKeyword", root.Children[0].Tag)
	assert.Nil(t, root.Children[1].Span)
	assert.Equal(t, 3, Count(root))
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader(`{"name": `))
	assert.Error(t, err)
}
