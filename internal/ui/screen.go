package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"

	"github.com/makotogo/people/internal/generator"
	"github.com/makotogo/people/internal/model"
	"github.com/makotogo/people/internal/store/sqlstore"
)

// The screen follows a configure/init/update split: configure builds
// and registers every widget once, each widget has its own init
// method, and Update re-reads the store after every action so the
// display never goes stale.

// Widget names the screen expects to find after configure.
const (
	WidgetTitle  = "title"
	WidgetList   = "list"
	WidgetStatus = "status"
)

// ErrWidgetNotFound reports a widget lookup that found nothing. A
// miss means the screen was wired wrong, so callers treat it as fatal
// rather than falling back to a zero widget.
var ErrWidgetNotFound = errors.New("widget not found")

// label is the plain-text widget used for the heading and the status
// flash.
type label struct {
	text string
}

// personItem adapts a Person to bubbles/list.Item.
type personItem struct {
	p model.Person
}

func (i personItem) Title() string       { return Row(i.p) }
func (i personItem) Description() string { return "" }
func (i personItem) FilterValue() string { return i.p.FirstName + " " + i.p.LastName }

// Row is the one-line rendering shared by the list delegate and the
// plain (non-interactive) listing.
func Row(p model.Person) string {
	return fmt.Sprintf("%s %s  age %d  %s eyes  %s",
		p.FirstName, p.LastName, p.Age, p.EyeColor, p.Gender)
}

type keymap struct {
	Add     key.Binding
	Wipe    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add person")),
		Wipe:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

// Screen owns the widgets and wires them to the record store.
type Screen struct {
	store   *sqlstore.Store
	widgets map[string]any
	keys    keymap
}

// NewScreen configures the widget set and runs the first update so
// the list opens showing current store contents.
func NewScreen(store *sqlstore.Store) (*Screen, error) {
	s := &Screen{
		store:   store,
		widgets: make(map[string]any),
		keys:    defaultKeymap(),
	}
	if err := s.configure(); err != nil {
		return nil, fmt.Errorf("configure screen: %w", err)
	}
	if err := s.Update(""); err != nil {
		return nil, err
	}
	return s, nil
}

// configure registers every widget, then runs one init step per
// widget.
func (s *Screen) configure() error {
	s.widgets[WidgetTitle] = &label{}
	s.widgets[WidgetList] = newPeopleList()
	s.widgets[WidgetStatus] = &label{}

	if err := s.initTitle(); err != nil {
		return err
	}
	if err := s.initList(); err != nil {
		return err
	}
	return nil
}

// lookup returns the named widget or fails. It never hands back a
// zero widget for a missing name.
func (s *Screen) lookup(name string) (any, error) {
	w, ok := s.widgets[name]
	if !ok || w == nil {
		return nil, fmt.Errorf("%q: %w", name, ErrWidgetNotFound)
	}
	return w, nil
}

func (s *Screen) titleLabel() (*label, error) {
	w, err := s.lookup(WidgetTitle)
	if err != nil {
		return nil, err
	}
	return w.(*label), nil
}

func (s *Screen) statusLabel() (*label, error) {
	w, err := s.lookup(WidgetStatus)
	if err != nil {
		return nil, err
	}
	return w.(*label), nil
}

func (s *Screen) peopleList() (*list.Model, error) {
	w, err := s.lookup(WidgetList)
	if err != nil {
		return nil, err
	}
	return w.(*list.Model), nil
}

func (s *Screen) initTitle() error {
	tl, err := s.titleLabel()
	if err != nil {
		return err
	}
	tl.text = "People"
	return nil
}

func newPeopleList() *list.Model {
	l := list.New(nil, personDelegate{}, 0, 0)
	return &l
}

func (s *Screen) initList() error {
	l, err := s.peopleList()
	if err != nil {
		return err
	}
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("person", "people")
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "

	// Extend help with the screen's own bindings.
	extra := func() []key.Binding {
		return []key.Binding{s.keys.Add, s.keys.Wipe, s.keys.Refresh}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra
	return nil
}

// AddPerson generates one random person, persists it, and refreshes
// the display with a confirmation.
func (s *Screen) AddPerson() error {
	p := generator.NewPerson()
	if err := s.store.Create(p); err != nil {
		return err
	}
	return s.Update("Person created: " + p.String())
}

// DeleteAll wipes the store and refreshes the display with the count.
func (s *Screen) DeleteAll() error {
	n, err := s.store.DeleteAll()
	if err != nil {
		return err
	}
	return s.Update(fmt.Sprintf("All (%d) people deleted!", n))
}

// Update re-queries the store and pushes current contents into every
// widget, plus an optional status flash.
func (s *Screen) Update(status string) error {
	people, err := s.store.FetchAll()
	if err != nil {
		return err
	}

	l, err := s.peopleList()
	if err != nil {
		return err
	}
	items := make([]list.Item, 0, len(people))
	for _, p := range people {
		items = append(items, personItem{p: p})
	}
	l.SetItems(items)

	tl, err := s.titleLabel()
	if err != nil {
		return err
	}
	tl.text = fmt.Sprintf("People  %s %d", accentStyle.Render("Total"), len(people))

	st, err := s.statusLabel()
	if err != nil {
		return err
	}
	st.text = status
	return nil
}
