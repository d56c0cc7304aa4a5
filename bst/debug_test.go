package bst

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisit(t *testing.T) {
	assert := assert.New(t)

	tree := NewTree(42)
	var buf bytes.Buffer
	assert.NoError(Visit(&buf, tree.Root()))
	assert.Equal("42\n", buf.String())

	empty := NewEmptyTree[int]()
	assert.ErrorIs(Visit(&buf, empty.Root()), ErrEmptyTree)
	assert.ErrorIs(Visit[int](&buf, nil), ErrEmptyTree)
}

func TestDebugPrintTree(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.NoError(DebugPrintTree(&buf, NewEmptyTree[int]()))
	assert.Contains(buf.String(), "(empty)")

	tree := buildTree(5, 3, 8, 9)
	buf.Reset()
	assert.NoError(DebugPrintTree(&buf, tree))
	out := buf.String()
	assert.True(strings.HasPrefix(out, "5\n"))
	for _, s := range []string{"3", "8", "9", "(none)"} {
		assert.Contains(out, s)
	}
	// root line, plus 3, 8, the placeholder under 8, and 9
	assert.Equal(5, strings.Count(out, "\n"))
}
