package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprite-ai/autocommit/internal/analyze"
	"github.com/sprite-ai/autocommit/internal/diff"
)

const previewDiff = `diff --git a/src/app.js b/src/app.js
index 1111111..2222222 100644
--- a/src/app.js
+++ b/src/app.js
@@ -1,2 +1,3 @@
 const a = 1
+const b = 2
 module.exports = a
`

func testResult() *analyze.Result {
	return &analyze.Result{
		HasChanges: true,
		Mode:       analyze.ModeAll,
		Files: []analyze.FileChange{
			{Path: "src/app.js", Kind: analyze.KindModified, Additions: 1},
		},
		Categorized: map[analyze.Bucket][]string{
			analyze.BucketSource: {"src/app.js"},
		},
		LineStats:        analyze.LineStats{Additions: 1},
		SuggestedType:    analyze.TypeFeat,
		SuggestedMessage: "feat(app): update app.js",
	}
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestAcceptSuggestion(t *testing.T) {
	m := sized(New(testResult(), nil))

	updated, cmd := m.Update(keyMsg("y"))
	m = updated.(Model)

	require.NotNil(t, cmd, "accept should quit")
	assert.True(t, m.outcome.Accepted)
	assert.Equal(t, "feat(app): update app.js", m.outcome.Message)
}

func TestAbort(t *testing.T) {
	m := sized(New(testResult(), nil))

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)

	require.NotNil(t, cmd, "abort should quit")
	assert.False(t, m.outcome.Accepted)
}

func TestEditMessage(t *testing.T) {
	m := sized(New(testResult(), nil))

	updated, _ := m.Update(keyMsg("e"))
	m = updated.(Model)
	assert.Equal(t, viewEdit, m.view)

	m.input.SetValue("feat(app): handcrafted message")
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)
	assert.Equal(t, viewSummary, m.view)

	updated, _ = m.Update(keyMsg("y"))
	m = updated.(Model)
	assert.True(t, m.outcome.Accepted)
	assert.Equal(t, "feat(app): handcrafted message", m.outcome.Message)
}

func TestEditCancelKeepsSuggestion(t *testing.T) {
	m := sized(New(testResult(), nil))

	updated, _ := m.Update(keyMsg("e"))
	m = updated.(Model)
	m.input.SetValue("scrapped")
	updated, _ = m.Update(keyMsg("esc"))
	m = updated.(Model)

	updated, _ = m.Update(keyMsg("y"))
	m = updated.(Model)
	assert.Equal(t, "feat(app): update app.js", m.outcome.Message)
}

func TestDiffToggle(t *testing.T) {
	ds, err := diff.Parse(previewDiff)
	require.NoError(t, err)

	m := sized(New(testResult(), ds))

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	assert.Equal(t, viewDiff, m.view)
	assert.NotEmpty(t, m.diffLines)

	updated, _ = m.Update(keyMsg("d"))
	m = updated.(Model)
	assert.Equal(t, viewSummary, m.view)
}

func TestDiffToggleWithoutPreview(t *testing.T) {
	m := sized(New(testResult(), nil))

	updated, _ := m.Update(keyMsg("d"))
	m = updated.(Model)
	assert.Equal(t, viewSummary, m.view, "no preview available, stay on summary")
}

func TestSummaryViewRendersMessage(t *testing.T) {
	m := sized(New(testResult(), nil))
	out := m.View()
	assert.Contains(t, out, "feat(app): update app.js")
	assert.Contains(t, out, "src/app.js")
}
