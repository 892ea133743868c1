package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeanpaul/attache/internal/command"
	"github.com/jeanpaul/attache/internal/contact"
	"github.com/jeanpaul/attache/internal/note"
	"github.com/jeanpaul/attache/internal/storage"
)

func newTestAssistant(t *testing.T) *Assistant {
	t.Helper()
	store := storage.New(t.TempDir())
	return New(contact.NewAddressBook(), note.NewNoteBook(), store, command.DefaultMinFuzzyScore)
}

func run(t *testing.T, a *Assistant, line string) command.Response {
	t.Helper()
	resp := a.Execute(line)
	if resp.IsError {
		t.Fatalf("Execute(%q): %s", line, resp.Message)
	}
	return resp
}

func TestContactLifecycle(t *testing.T) {
	a := newTestAssistant(t)

	run(t, a, "add-contact Oleh 0991234567")
	run(t, a, "add-phone Oleh 0997654321")
	run(t, a, "set-email Oleh oleh@example.com")
	run(t, a, "set-address Oleh 12 Khreshchatyk St, Kyiv")
	run(t, a, "set-birthday Oleh 14.03.1990")
	run(t, a, "add-tag Oleh work")

	resp := run(t, a, "show-contact Oleh")
	for _, want := range []string{"Oleh", "0991234567", "0997654321", "oleh@example.com", "Khreshchatyk", "14.03.1990", "work"} {
		assert.Contains(t, resp.Message, want)
	}

	resp = run(t, a, "delete-contact oleh")
	assert.Contains(t, resp.Message, "Oleh")

	resp = a.Execute("show-contact Oleh")
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Message, "not found")
}

func TestDuplicateContactRejected(t *testing.T) {
	a := newTestAssistant(t)
	run(t, a, "add-contact Ann")

	resp := a.Execute("add-contact ANN")
	assert.True(t, resp.IsError, "names are unique case-insensitively")
}

func TestInvalidPhoneSurfacesAsMessage(t *testing.T) {
	a := newTestAssistant(t)
	resp := a.Execute("add-contact Ann 12345")
	assert.True(t, resp.IsError)

	// The failed phone must not leave a half-created contact behind.
	resp = a.Execute("show-contact Ann")
	assert.True(t, resp.IsError)
}

func TestContactNotes(t *testing.T) {
	a := newTestAssistant(t)
	run(t, a, "add-contact Ann")
	run(t, a, "add-contact-note Ann met at the conference")
	run(t, a, "add-contact-note Ann prefers email")

	resp := run(t, a, "show-contact Ann")
	assert.Contains(t, resp.Message, "1. met at the conference")
	assert.Contains(t, resp.Message, "2. prefers email")

	run(t, a, "remove-contact-note Ann 1")
	resp = run(t, a, "show-contact Ann")
	assert.NotContains(t, resp.Message, "conference")
	assert.Contains(t, resp.Message, "1. prefers email")
}

func TestNoteLifecycle(t *testing.T) {
	a := newTestAssistant(t)

	run(t, a, "add-note Groceries milk and eggs")
	run(t, a, "add-note-tag Groceries errands")

	resp := run(t, a, "show-note groceries")
	assert.Contains(t, resp.Message, "Groceries")
	assert.Contains(t, resp.Message, "milk and eggs")
	assert.Contains(t, resp.Message, "errands")

	run(t, a, "edit-note Groceries bread only")
	resp = run(t, a, "show-note Groceries")
	assert.Contains(t, resp.Message, "bread only")
	assert.NotContains(t, resp.Message, "milk")

	resp = run(t, a, "search-notes-by-tag errands")
	assert.Contains(t, resp.Message, "Groceries")

	run(t, a, "delete-note Groceries")
	resp = a.Execute("show-note Groceries")
	assert.True(t, resp.IsError)
}

func TestBirthdaysCommand(t *testing.T) {
	a := newTestAssistant(t)
	run(t, a, "add-contact Ann")
	run(t, a, "set-birthday Ann 14.03.1990")

	resp := run(t, a, "birthdays 365")
	assert.Contains(t, resp.Message, "Ann")

	resp = a.Execute("birthdays soon")
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Message, "number")

	resp = a.Execute("birthdays -1")
	assert.True(t, resp.IsError)
}

func TestInferredCommand(t *testing.T) {
	a := newTestAssistant(t)
	run(t, a, "add-contact Ann")

	resp := run(t, a, "show me all my contacts")
	assert.True(t, resp.Inferred)
	assert.Equal(t, command.OpListContacts, resp.Op)
	assert.Contains(t, resp.Message, "Ann")
}

func TestExitSavesAndPersists(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(dir)
	a := New(contact.NewAddressBook(), note.NewNoteBook(), store, command.DefaultMinFuzzyScore)

	run(t, a, "add-contact Ann 0991234567")
	run(t, a, "add-note Plans call Ann tomorrow")

	resp := run(t, a, "exit")
	assert.Equal(t, command.OpExit, resp.Op)

	book, notes, warnings := store.Load()
	assert.Empty(t, warnings)
	assert.NotNil(t, book.Find("Ann"))
	assert.NotNil(t, notes.Find("Plans"))
}

func TestHelpListsEveryCommand(t *testing.T) {
	a := newTestAssistant(t)
	resp := run(t, a, "help")
	for _, s := range command.Table() {
		if !strings.Contains(resp.Message, s.Usage) {
			t.Errorf("help output is missing %q", s.Usage)
		}
	}
}

func TestUnknownInput(t *testing.T) {
	a := newTestAssistant(t)
	resp := a.Execute("qqqqq zzzzz")
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Message, "help")
}
