package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ekinoz/happy/internal/model"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	model.Item
}

func (i listItem) Title() string       { return i.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line). Built-in
// defaults get a muted bullet and no delete affordance.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	bullet := successStyle.Render(bulletUser)
	text := it.Text
	if it.IsDefault() {
		bullet = mutedStyle.Render(bulletDefault)
		text = mutedStyle.Render(text)
	}

	prefix := "  "
	line := fmt.Sprintf("%s %s", bullet, text)
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		if !it.IsDefault() {
			line += " " + helpStyle.Render("⌫ d")
		}
	}
	fmt.Fprintln(w, prefix+line)
}
