package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/makotogo/people/internal/store/sqlstore"
)

// personDelegate controls how items render (single line).
type personDelegate struct{}

func (d personDelegate) Height() int                               { return 1 }
func (d personDelegate) Spacing() int                              { return 0 }
func (d personDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d personDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(personItem)
	name := fmt.Sprintf("%s %s", it.p.FirstName, it.p.LastName)
	details := fmt.Sprintf("age %d  %s eyes  %s", it.p.Age, it.p.EyeColor, it.p.Gender)
	line := name + "  " + mutedStyle.Render(details)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type screenModel struct {
	screen *Screen
	err    error
}

// Run opens the interactive screen over the given store and blocks
// until the user quits. A data-access failure inside an action aborts
// the program and surfaces here.
func Run(store *sqlstore.Store) error {
	screen, err := NewScreen(store)
	if err != nil {
		return err
	}
	p := tea.NewProgram(screenModel{screen: screen}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(screenModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m screenModel) Init() tea.Cmd { return nil }

func (m screenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	l, err := m.screen.peopleList()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.SetSize(msg.Width-4, msg.Height-7)
		return m, nil

	case tea.KeyMsg:
		// Action keys stay out of the way while the filter input is
		// capturing text.
		if l.FilterState() == list.Filtering {
			break
		}
		keys := m.screen.keys
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Add):
			if err := m.screen.AddPerson(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, keys.Wipe):
			if err := m.screen.DeleteAll(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, keys.Refresh):
			if err := m.screen.Update(""); err != nil {
				m.err = err
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m screenModel) View() string {
	tl, err := m.screen.titleLabel()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	l, err := m.screen.peopleList()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	st, err := m.screen.statusLabel()
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	content := titleStyle.Render(tl.text) + "\n" + l.View()
	if st.text != "" {
		content += "\n" + successStyle.Render(st.text)
	}
	return panelString(content)
}

func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
