package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/makotogo/people/internal/model"
	"github.com/makotogo/people/internal/store/sqlstore"
)

func personItemFixture() *model.Person {
	return &model.Person{FirstName: "Ada", LastName: "Lovelace", Age: 36, EyeColor: "brown", Gender: "female"}
}

func newTestScreen(t *testing.T) (*Screen, *sqlstore.Store) {
	t.Helper()
	st, err := sqlstore.Open(filepath.Join(t.TempDir(), "people.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	s, err := NewScreen(st)
	if err != nil {
		t.Fatalf("NewScreen failed: %v", err)
	}
	return s, st
}

func TestScreen_Configure(t *testing.T) {
	s, _ := newTestScreen(t)

	for _, name := range []string{WidgetTitle, WidgetList, WidgetStatus} {
		if _, err := s.lookup(name); err != nil {
			t.Errorf("widget %q missing after configure: %v", name, err)
		}
	}

	l, err := s.peopleList()
	if err != nil {
		t.Fatalf("peopleList failed: %v", err)
	}
	if len(l.Items()) != 0 {
		t.Errorf("fresh screen should list nothing, got %d items", len(l.Items()))
	}
}

func TestScreen_LookupMissingWidgetFailsFast(t *testing.T) {
	s, _ := newTestScreen(t)

	w, err := s.lookup("toolbar")
	if err == nil {
		t.Fatal("expected error for unknown widget name")
	}
	if !errors.Is(err, ErrWidgetNotFound) {
		t.Errorf("expected ErrWidgetNotFound, got %v", err)
	}
	if w != nil {
		t.Errorf("lookup must not hand back a widget on a miss, got %v", w)
	}
}

func TestScreen_UpdateFailsFastWhenListMissing(t *testing.T) {
	s, _ := newTestScreen(t)
	delete(s.widgets, WidgetList)

	if err := s.Update(""); !errors.Is(err, ErrWidgetNotFound) {
		t.Errorf("expected ErrWidgetNotFound, got %v", err)
	}
}

func TestScreen_AddPerson(t *testing.T) {
	s, st := newTestScreen(t)

	if err := s.AddPerson(); err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after add, got %d", count)
	}

	l, err := s.peopleList()
	if err != nil {
		t.Fatalf("peopleList failed: %v", err)
	}
	if len(l.Items()) != 1 {
		t.Fatalf("list should show 1 item, got %d", len(l.Items()))
	}

	people, err := st.FetchAll()
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	item, _ := l.Items()[0].(personItem)
	if item.p.FirstName != people[0].FirstName || item.p.Age != people[0].Age {
		t.Errorf("list row %+v does not match stored row %+v", item.p, people[0])
	}

	status, err := s.statusLabel()
	if err != nil {
		t.Fatalf("statusLabel failed: %v", err)
	}
	if !strings.HasPrefix(status.text, "Person created: ") {
		t.Errorf("expected creation confirmation, got %q", status.text)
	}
}

func TestScreen_DeleteAll(t *testing.T) {
	s, st := newTestScreen(t)

	for i := 0; i < 3; i++ {
		if err := s.AddPerson(); err != nil {
			t.Fatalf("AddPerson failed: %v", err)
		}
	}

	if err := s.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty store after delete all, got %d rows", count)
	}

	l, err := s.peopleList()
	if err != nil {
		t.Fatalf("peopleList failed: %v", err)
	}
	if len(l.Items()) != 0 {
		t.Errorf("list should be empty after delete all, got %d items", len(l.Items()))
	}

	status, err := s.statusLabel()
	if err != nil {
		t.Fatalf("statusLabel failed: %v", err)
	}
	if status.text != "All (3) people deleted!" {
		t.Errorf("unexpected confirmation: %q", status.text)
	}
}

func TestScreen_NoStaleness(t *testing.T) {
	// Mutations that bypass the screen become visible on Update.
	s, st := newTestScreen(t)

	if err := st.Create(personItemFixture()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Update(""); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	l, err := s.peopleList()
	if err != nil {
		t.Fatalf("peopleList failed: %v", err)
	}
	if len(l.Items()) != 1 {
		t.Errorf("list should reflect store contents, got %d items", len(l.Items()))
	}

	title, err := s.titleLabel()
	if err != nil {
		t.Fatalf("titleLabel failed: %v", err)
	}
	if !strings.Contains(title.text, "1") {
		t.Errorf("title should carry the live count, got %q", title.text)
	}
}

func TestRow(t *testing.T) {
	p := personItemFixture()
	row := Row(*p)
	for _, want := range []string{"Ada", "Lovelace", "36", "brown", "female"} {
		if !strings.Contains(row, want) {
			t.Errorf("Row() = %q, missing %q", row, want)
		}
	}
}
