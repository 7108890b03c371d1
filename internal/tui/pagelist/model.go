// Package pagelist provides a cursored list over the rows of one table
// page. Pages are small by construction (the engine's page-size
// allow-list tops out at 100), so every row renders each frame; moving
// between pages is the table's job, not this component's.
package pagelist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one row. cursor marks the row under the cursor.
type RenderFunc[T any] func(item T, cursor bool) string

// Model is the cursored page list.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	cursor     int
}

// New creates a page list over the given rows.
func New[T any](items []T, renderFunc RenderFunc[T]) *Model[T] {
	return &Model[T]{
		items:      items,
		renderFunc: renderFunc,
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// SetItems replaces the rows, keeping the cursor on the same index where
// possible and clamping it otherwise. A page flip therefore lands the
// cursor on the row in the same visual position.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles cursor navigation keys.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyUp:
		m.moveCursor(-1)
	case tea.KeyDown:
		m.moveCursor(1)
	case tea.KeyHome:
		m.cursor = 0
	case tea.KeyEnd:
		m.cursor = len(m.items) - 1
	case tea.KeyRunes:
		if len(keyMsg.Runes) > 0 {
			switch keyMsg.Runes[0] {
			case 'j':
				m.moveCursor(1)
			case 'k':
				m.moveCursor(-1)
			}
		}
	default:
		// Other keys belong to the surrounding model.
	}

	return m, nil
}

// moveCursor shifts the cursor, clamped to the page bounds.
func (m *Model[T]) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.items) {
		return
	}
	m.cursor = next
}

// View renders every row of the page.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, item := range m.items {
		sb.WriteString(m.renderFunc(item, i == m.cursor))
		if i < len(m.items)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Len returns the number of rows on the page.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// Cursor returns the cursor index.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// Current returns the row under the cursor, or nil for an empty page.
func (m *Model[T]) Current() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.cursor]
}
