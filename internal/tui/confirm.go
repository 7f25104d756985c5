// Package tui implements the Bubble Tea confirmation prompt shown before
// any mutation runs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sprite-ai/autocommit/internal/analyze"
	"github.com/sprite-ai/autocommit/internal/diff"
)

// Outcome is what the prompt resolved to.
type Outcome struct {
	Accepted bool
	Message  string // final message, possibly edited
}

type view int

const (
	viewSummary view = iota
	viewEdit
	viewDiff
)

// Model is the confirmation prompt's Bubble Tea model.
type Model struct {
	result  *analyze.Result
	preview *diff.Set

	width  int
	height int

	view         view
	input        textinput.Model
	message      string
	diffLines    []string
	scrollOffset int

	outcome Outcome
	done    bool
}

// New builds the prompt for an analysis result. preview may be nil when no
// diff text is available for display.
func New(res *analyze.Result, preview *diff.Set) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.SetValue(res.SuggestedMessage)

	m := Model{
		result:  res,
		preview: preview,
		input:   ti,
		message: res.SuggestedMessage,
	}
	if preview != nil {
		m.diffLines = renderPreview(preview)
	}
	return m
}

// Run shows the prompt and blocks until the user accepts or aborts.
func Run(res *analyze.Result, preview *diff.Set) (Outcome, error) {
	p := tea.NewProgram(New(res, preview), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("running prompt: %w", err)
	}
	return final.(Model).outcome, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.view == viewEdit {
			return m.updateEdit(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.outcome = Outcome{}
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, keys.Accept):
			m.outcome = Outcome{Accepted: true, Message: m.message}
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, keys.Edit):
			m.view = viewEdit
			m.input.SetValue(m.message)
			m.input.Focus()
			return m, textinput.Blink

		case key.Matches(msg, keys.Diff):
			if m.view == viewDiff {
				m.view = viewSummary
			} else if m.preview != nil {
				m.view = viewDiff
				m.scrollOffset = 0
			}

		case key.Matches(msg, keys.Down):
			if m.view == viewDiff && m.scrollOffset < len(m.diffLines)-1 {
				m.scrollOffset++
			}

		case key.Matches(msg, keys.Up):
			if m.view == viewDiff && m.scrollOffset > 0 {
				m.scrollOffset--
			}
		}
	}

	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v := strings.TrimSpace(m.input.Value()); v != "" {
			m.message = v
		}
		m.view = viewSummary
		m.input.Blur()
		return m, nil
	case "esc":
		m.view = viewSummary
		m.input.Blur()
		return m, nil
	case "ctrl+c":
		m.outcome = Outcome{}
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	switch m.view {
	case viewEdit:
		return m.renderEdit()
	case viewDiff:
		return m.renderDiff()
	default:
		return m.renderSummary()
	}
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("autocommit") + "\n\n")
	b.WriteString(summaryStyle.Render(m.result.Summarize()) + "\n\n")

	for _, bucket := range []analyze.Bucket{
		analyze.BucketSource, analyze.BucketTest, analyze.BucketDocs,
		analyze.BucketConfig, analyze.BucketStyle,
	} {
		paths := m.result.Categorized[bucket]
		if len(paths) == 0 {
			continue
		}
		b.WriteString(bucketStyle.Render(string(bucket)) + "\n")
		for _, p := range paths {
			b.WriteString("  " + m.renderFileLine(p) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(messageBoxStyle.Render(messageStyle.Render(m.message)))
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderFileLine(path string) string {
	for _, f := range m.result.Files {
		if f.Path != path {
			continue
		}
		var style lipgloss.Style
		marker := "M"
		switch f.Kind {
		case analyze.KindCreated:
			style, marker = fileCreatedStyle, "A"
		case analyze.KindDeleted:
			style, marker = fileDeletedStyle, "D"
		case analyze.KindRenamed:
			style, marker = fileModifiedStyle, "R"
		default:
			style = fileModifiedStyle
		}
		stats := statAddStyle.Render(fmt.Sprintf("+%d", f.Additions)) + " " +
			statDelStyle.Render(fmt.Sprintf("-%d", f.Deletions))
		return fmt.Sprintf("%s %s %s", style.Render(marker), style.Render(path), stats)
	}
	return path
}

func (m Model) renderEdit() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("edit commit message") + "\n\n")
	b.WriteString(messageBoxStyle.Render(m.input.View()))
	b.WriteString("\n\n")
	b.WriteString(helpBarStyle.Render("enter: save  esc: cancel"))
	return b.String()
}

func (m Model) renderDiff() string {
	height := m.height - 4
	if height < 1 {
		height = 1
	}

	end := m.scrollOffset + height
	if end > len(m.diffLines) {
		end = len(m.diffLines)
	}

	body := strings.Join(m.diffLines[m.scrollOffset:end], "\n")
	return diffViewStyle.Width(m.width - 2).Render(body) + "\n" + m.renderHelp()
}

func (m Model) renderHelp() string {
	entries := []struct{ k, desc string }{
		{"y", "commit"},
		{"e", "edit"},
		{"d", "diff"},
		{"q", "abort"},
	}
	var parts []string
	for _, e := range entries {
		parts = append(parts, helpKeyStyle.Render(e.k)+helpBarStyle.Render(" "+e.desc))
	}
	return strings.Join(parts, helpBarStyle.Render("  ·  "))
}
