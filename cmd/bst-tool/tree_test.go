package main

import (
	"bytes"
	"testing"

	"github.com/bluesky-social/bstree/bst"

	"github.com/stretchr/testify/assert"
)

func runTool(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out, logs bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &logs
	err := app.Run(append([]string{"bst-tool"}, args...))
	return out.String(), err
}

func TestBuild(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "build", "5", "7", "7", "1")
	assert.NoError(err)
	assert.Equal("length: 3\nheight: 2\nmin: 1\nmax: 7\n", out)

	out, err = runTool(t, "build")
	assert.NoError(err)
	assert.Contains(out, "length: 0")
	assert.Contains(out, "min: -")

	_, err = runTool(t, "build", "5", "seven")
	assert.Error(err)

	out, err = runTool(t, "--type", "string", "build", "pear", "apple", "zucchini")
	assert.NoError(err)
	assert.Contains(out, "min: apple")
	assert.Contains(out, "max: zucchini")

	_, err = runTool(t, "--type", "float", "build", "1.5")
	assert.Error(err)
}

func TestContainsCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "contains", "--value", "3", "5", "3", "8")
	assert.NoError(err)
	assert.Equal("true\n", out)

	out, err = runTool(t, "contains", "--value", "4", "5", "3", "8")
	assert.NoError(err)
	assert.Equal("false\n", out)

	_, err = runTool(t, "contains", "--strict", "--value", "4", "5", "3", "8")
	assert.ErrorIs(err, bst.ErrNotFound)
}

func TestRemoveCommand(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "remove", "--value", "5", "5", "3", "8")
	assert.NoError(err)
	assert.NotContains(out, "5")
	assert.Contains(out, "8")
	assert.Contains(out, "3")

	// missing values are only logged
	out, err = runTool(t, "remove", "--value", "4", "5")
	assert.NoError(err)
	assert.Equal("5\n", out)
}

func TestPrintAndVisit(t *testing.T) {
	assert := assert.New(t)

	out, err := runTool(t, "print")
	assert.NoError(err)
	assert.Equal("(empty)\n", out)

	out, err = runTool(t, "visit", "5", "3", "8", "1")
	assert.NoError(err)
	assert.Equal("5\n3\n8\n", out)

	_, err = runTool(t, "visit")
	assert.ErrorIs(err, bst.ErrEmptyTree)
}
