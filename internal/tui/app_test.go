package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmeert/tick/internal/store"
)

func newTestApp(t *testing.T, s *store.Store) appModel {
	t.Helper()
	m := newApp(s, NewTheme("mono"))
	t.Cleanup(m.cancel)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(appModel)
}

func typeString(t *testing.T, m appModel, text string) appModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(appModel)
}

func pressEnter(t *testing.T, m appModel) appModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(appModel)
}

// deliverAppend pulls the queued store notification through the same message
// path the running program uses.
func deliverAppend(t *testing.T, m appModel) appModel {
	t.Helper()
	require.NotZero(t, len(m.updates), "no store notification queued")
	next, _ := m.Update(waitForAppend(m.updates)())
	return next.(appModel)
}

func TestEnterAppendsAndClearsInput(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	m = typeString(t, m, "Buy milk")
	require.Equal(t, "Buy milk", m.input.Value())

	m = pressEnter(t, m)

	require.Equal(t, 1, s.Len())
	it := s.Items()[0]
	assert.EqualValues(t, 1, it.ID)
	assert.Equal(t, "Buy milk", it.Label)
	assert.False(t, it.Completed)
	assert.Empty(t, m.input.Value(), "field clears after a successful submit")
}

func TestBlankSubmitLeavesEverythingAlone(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	m = typeString(t, m, "   ")
	m = pressEnter(t, m)

	assert.Equal(t, 0, s.Len())
	assert.EqualValues(t, 0, s.Version())
	assert.Equal(t, "   ", m.input.Value(), "field stays as typed on a blank submit")
	assert.Zero(t, len(m.updates), "no notification for a skipped append")
}

func TestEmptySubmitIsIgnored(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	m = pressEnter(t, m)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, m.list.Items())
}

func TestAppendNotificationInsertsRow(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	m = pressEnter(t, typeString(t, m, "A"))
	m = deliverAppend(t, m)
	m = pressEnter(t, typeString(t, m, "B"))
	m = deliverAppend(t, m)

	items := m.list.Items()
	require.Len(t, items, 2)
	first := items[0].(row)
	second := items[1].(row)
	assert.EqualValues(t, 1, first.id)
	assert.Equal(t, "A", first.label)
	assert.EqualValues(t, 2, second.id)
	assert.Equal(t, "B", second.label)
}

func TestLabelKeptVerbatimWithInnerWhitespace(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	m = pressEnter(t, typeString(t, m, "  padded label  "))

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "  padded label  ", s.Items()[0].Label)
}

func TestSeedsRowsFromStore(t *testing.T) {
	s := store.New()
	s.Append("already there")

	m := newTestApp(t, s)

	require.Len(t, m.list.Items(), 1)
	assert.EqualValues(t, 1, m.list.Items()[0].(row).id)
}

func TestEscQuits(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQTypesIntoFieldInsteadOfQuitting(t *testing.T) {
	s := store.New()
	m := newTestApp(t, s)

	m = typeString(t, m, "q")

	assert.Equal(t, "q", m.input.Value())
}

func TestCheckboxRendersStatically(t *testing.T) {
	th := NewTheme("mono")
	d := rowDelegate{theme: th}

	var pending, done strings.Builder
	l := newTestApp(t, store.New()).list
	d.Render(&pending, l, 1, row{id: 1, label: "open item"})
	d.Render(&done, l, 1, row{id: 2, label: "done item", completed: true})

	assert.Contains(t, pending.String(), "[ ] open item")
	assert.Contains(t, done.String(), "[x] done item")
}
