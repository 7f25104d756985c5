package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	raw := "M  src/app.js\n" +
		" M src/util.js\n" +
		"A  src/new.js\n" +
		"?? notes.txt\n" +
		"D  gone.js\n" +
		" D also-gone.js\n" +
		"R  old.js -> new.js\n"

	c := Parse(raw)

	assert.Equal(t, []string{"src/app.js", "src/util.js"}, c.Modified)
	assert.Equal(t, []string{"src/new.js", "notes.txt"}, c.Created)
	assert.Equal(t, []string{"gone.js", "also-gone.js"}, c.Deleted)
	require.Len(t, c.Renamed, 1)
	assert.Equal(t, Rename{From: "old.js", To: "new.js"}, c.Renamed[0])
	assert.False(t, c.Empty())
}

func TestParseEmpty(t *testing.T) {
	c := Parse("")
	assert.True(t, c.Empty())
	assert.Empty(t, c.Paths())

	c = Parse("\n  \n")
	assert.True(t, c.Empty())
}

func TestParseUnrecognizedLineCountsAsModified(t *testing.T) {
	c := Parse("UU conflicted.go\n")
	assert.Equal(t, []string{"conflicted.go"}, c.Modified)
}

func TestPathsUsesRenameTarget(t *testing.T) {
	c := Parse("R  a.go -> b.go\nM  c.go\n")
	assert.ElementsMatch(t, []string{"b.go", "c.go"}, c.Paths())
}
