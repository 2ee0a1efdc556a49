package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmeert/tick/internal/model"
	"github.com/lmeert/tick/internal/store"
)

// Options tune the interactive view from root flags.
type Options struct {
	Theme string
}

// row adapts a store item to bubbles/list.Item. Rows carry the store
// identifier so re-renders reuse them instead of rebuilding.
type row struct {
	id        uint64
	label     string
	completed bool
}

func newRow(it model.Item) row {
	return row{id: it.ID, label: it.Label, completed: it.Completed}
}

// Implement list.Item interface
func (r row) Title() string       { return r.label }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.label }

// Custom delegate to control how rows render (single line, static checkbox).
type rowDelegate struct {
	theme Theme
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	box := d.theme.BoxUnchecked
	if r.completed {
		box = d.theme.BoxChecked
	}
	line := fmt.Sprintf("%s %s", d.theme.Muted.Render(box), r.label)
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// itemAddedMsg carries one store change notification into the update loop.
type itemAddedMsg struct {
	item model.Item
}

type appModel struct {
	store *store.Store
	theme Theme

	input textinput.Model
	list  list.Model

	// Store change notifications arrive here via the subscription.
	updates chan model.Item
	cancel  func()
}

func newApp(s *store.Store, theme Theme) appModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "What needs to be done?"
	in.CharLimit = 200
	in.Focus()

	rows := make([]list.Item, 0, s.Len())
	for _, it := range s.Items() {
		rows = append(rows, newRow(it))
	}

	l := list.New(rows, rowDelegate{theme: theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help

	addBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add"))
	quitBind := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, quitBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, quitBind} }

	// Buffered so an append burst never blocks the update loop.
	updates := make(chan model.Item, 32)
	cancel := s.Subscribe(func(it model.Item) {
		updates <- it
	})

	m := appModel{
		store:   s,
		theme:   theme,
		input:   in,
		list:    l,
		updates: updates,
		cancel:  cancel,
	}
	m.syncTitle()
	return m
}

// waitForAppend blocks on the subscription channel and surfaces the next
// change as a message.
func waitForAppend(updates <-chan model.Item) tea.Cmd {
	return func() tea.Msg {
		return itemAddedMsg{item: <-updates}
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForAppend(m.updates))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemAddedMsg:
		cmd := m.list.InsertItem(len(m.list.Items()), newRow(msg.item))
		m.syncTitle()
		return m, tea.Batch(cmd, waitForAppend(m.updates))

	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 8
		m.list.SetSize(msg.Width-2, msg.Height-5)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			label := m.input.Value()
			if strings.TrimSpace(label) == "" {
				// Blank input: no append, field left as-is.
				return m, nil
			}
			m.store.Append(label)
			m.input.SetValue("")
			return m, nil
		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		// Everything else types into the field, q and space included.
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Border.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.list.View())
	return b.String()
}

// syncTitle refreshes the header segments that show live counts.
func (m *appModel) syncTitle() {
	m.list.Title = fmt.Sprintf("%s   %s %d",
		m.theme.Title.Render("Todos"),
		m.theme.Accent.Render("Total"), m.store.Len(),
	)
}

// Run starts the interactive view over the store and blocks until quit.
func Run(s *store.Store, opt Options) error {
	m := newApp(s, NewTheme(opt.Theme))
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
