// Package ui renders the single-screen happy-things list: a status
// bar with a live clock, the item list, and an add overlay. The
// rendered list is a pure function of the latest subscription
// snapshot; add and delete go straight to the store and the list
// catches up when the next snapshot lands.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ekinoz/happy/internal/auth"
	"github.com/ekinoz/happy/internal/clock"
	"github.com/ekinoz/happy/internal/model"
	"github.com/ekinoz/happy/internal/store"
)

// Messages produced by the background commands.
type (
	// snapshotMsg carries a full replacement item set from the live
	// subscription.
	snapshotMsg []model.Item

	// subClosedMsg means the subscription channel closed (teardown or
	// store shutdown); the list keeps its last state.
	subClosedMsg struct{}

	// insertResultMsg reports the outcome of an add.
	insertResultMsg struct{ err error }

	// deleteResultMsg reports the outcome of a delete.
	deleteResultMsg struct{ err error }
)

// Model is the root view. It exclusively owns the session, the item
// list state, and the add-dialog state.
type Model struct {
	list    list.Model
	session auth.Session
	store   store.Store // nil when the backend failed to initialize
	log     *zap.Logger

	sub    <-chan []model.Item
	cancel context.CancelFunc

	now    string // formatted clock, refreshed by ticks
	width  int
	height int

	// Add dialog; created on "a", destroyed on save or cancel.
	adding      bool
	ti          textinput.Model
	addErr      string
	pendingText string // survives a failed insert so nothing is lost

	done bool // teardown happened; stop re-arming timers
}

// New builds the root view and, when a store is available, opens the
// single live subscription for the life of the view.
func New(st store.Store, sess auth.Session, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Happy Things"
	l.SetShowHelp(true)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, delBind} }

	m := Model{
		list:    l,
		session: sess,
		store:   st,
		log:     log,
		now:     clock.Format(time.Now()),
		width:   48,
		height:  24,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "Something that made you happy..."
	m.ti.CharLimit = 200

	m.setItems(model.Defaults())

	if st != nil {
		ctx, cancel := context.WithCancel(context.Background())
		ch, err := st.Subscribe(ctx)
		if err != nil {
			log.Warn("ui: open subscription", zap.Error(err))
			cancel()
		} else {
			m.sub = ch
			m.cancel = cancel
		}
	}
	return m
}

// setItems replaces the whole list. Empty snapshots collapse to the
// built-in default set.
func (m *Model) setItems(items []model.Item) {
	if len(items) == 0 {
		items = model.Defaults()
	}
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}
	m.list.SetItems(li)
}

// Items exposes the rendered list for tests and the CLI.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(clock.Tick(), m.waitForSnapshot())
}

// waitForSnapshot reads one push from the subscription. Update
// re-arms it after each snapshot; nothing re-arms after teardown.
func (m Model) waitForSnapshot() tea.Cmd {
	ch := m.sub
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		items, ok := <-ch
		if !ok {
			return subClosedMsg{}
		}
		return snapshotMsg(items)
	}
}

func (m Model) insertCmd(text string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		_, err := st.Insert(context.Background(), text)
		return insertResultMsg{err: err}
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		return deleteResultMsg{err: st.Delete(context.Background(), id)}
	}
}

// teardown releases the subscription; the clock chain dies with the
// done flag. Safe to call twice.
func (m *Model) teardown() {
	m.done = true
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clock.TickMsg:
		if m.done {
			return m, nil
		}
		m.now = clock.Format(time.Time(msg))
		return m, clock.Tick()

	case snapshotMsg:
		if m.done {
			return m, nil
		}
		m.setItems([]model.Item(msg))
		return m, m.waitForSnapshot()

	case subClosedMsg:
		// Last state stays on screen; the store client owns any
		// reconnection story.
		return m, nil

	case insertResultMsg:
		if msg.err != nil {
			m.log.Warn("ui: insert", zap.Error(msg.err))
			// Reopen the dialog with the text intact so the user can
			// retry or bail.
			m.adding = true
			m.addErr = "Could not save — try again"
			m.ti.SetValue(m.pendingText)
			m.ti.CursorEnd()
			m.ti.Focus()
			return m, nil
		}
		m.pendingText = ""
		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.log.Warn("ui: delete", zap.Error(msg.err))
		}
		// No rollback either way: the list only follows snapshots.
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.teardown()
			return m, tea.Quit
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		case "d":
			return m, m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateAdding handles the add overlay. Empty or whitespace-only text
// never reaches the store; the dialog just stays open.
func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.addErr = "Say one happy thing first"
				return m, nil
			}
			if m.store == nil {
				m.addErr = "Offline — nothing is being saved"
				return m, nil
			}
			// Successful initiation closes the dialog; the list
			// updates via the subscription, not locally.
			m.pendingText = text
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, m.insertCmd(text)
		case "esc":
			m.adding = false
			m.addErr = ""
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

// deleteSelected issues a delete for the selected item unless it is a
// built-in default, which is never deletable and never reaches the
// store.
func (m Model) deleteSelected() tea.Cmd {
	i := m.list.Index()
	items := m.list.Items()
	if i < 0 || i >= len(items) {
		return nil
	}
	li, ok := items[i].(listItem)
	if !ok || li.IsDefault() {
		return nil
	}
	if m.store == nil {
		return nil
	}
	return m.deleteCmd(li.ID)
}

func (m Model) View() string {
	w := m.width - 4
	if w < 24 {
		w = 24
	}
	listHeight := m.height - 7
	if m.adding {
		listHeight -= 4
	}
	if listHeight < 4 {
		listHeight = 4
	}
	m.list.SetSize(w, listHeight)

	content := m.statusBar(w) + "\n\n" + m.list.View()
	if m.adding {
		title := "What made you happy?"
		if m.addErr != "" {
			title += " — " + errorStyle.Render(m.addErr)
		}
		content += "\n" + overlayStyle.Render(title+"\n"+m.ti.View())
	}
	return frameStyle.Render(content)
}

// statusBar mimics a phone status strip: app title left, clock right.
func (m Model) statusBar(width int) string {
	left := titleStyle.Render("☀ Happy Things")
	if m.store == nil {
		left += " " + mutedStyle.Render("(offline)")
	} else if !m.session.Persisted() {
		left += " " + mutedStyle.Render("(guest)")
	}
	right := clockStyle.Render(m.now)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Run starts the program on the alt screen and blocks until quit.
func Run(st store.Store, sess auth.Session, log *zap.Logger) error {
	m := New(st, sess, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	// Whatever happened, the subscription must not leak.
	if fm, ok := final.(Model); ok {
		fm.teardown()
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
