// Package assistant ties the books, the command pipeline and storage into
// one engine both front-ends drive: feed it a line, render the response.
package assistant

import (
	"fmt"
	"strings"

	"github.com/jeanpaul/attache/internal/command"
	"github.com/jeanpaul/attache/internal/contact"
	"github.com/jeanpaul/attache/internal/note"
	"github.com/jeanpaul/attache/internal/storage"
)

// Assistant owns the address book and the notebook for one session. It is
// not safe for concurrent use; both front-ends are single input loops.
type Assistant struct {
	book       *contact.AddressBook
	notes      *note.NoteBook
	store      *storage.Store
	dispatcher *command.Dispatcher
	specs      []command.Spec
}

// New builds an assistant over already-loaded books. The store may be used
// again by Save; loading is the caller's job so load warnings reach the user
// before the first prompt.
func New(book *contact.AddressBook, notes *note.NoteBook, store *storage.Store, minFuzzyScore int) *Assistant {
	specs := command.Table()
	a := &Assistant{
		book:       book,
		notes:      notes,
		store:      store,
		specs:      specs,
		dispatcher: command.NewDispatcher(command.NewResolver(specs, minFuzzyScore)),
	}
	a.registerContactHandlers()
	a.registerNoteHandlers()
	a.dispatcher.Register(command.OpHelp, a.handleHelp)
	a.dispatcher.Register(command.OpSave, a.handleSave)
	a.dispatcher.Register(command.OpExit, a.handleExit)
	return a
}

// Execute runs one input line end to end. The response always carries a
// printable message; front-ends check resp.Op for the exit command.
func (a *Assistant) Execute(line string) command.Response {
	return a.dispatcher.Dispatch(line)
}

// Save flushes both books to disk.
func (a *Assistant) Save() error {
	return a.store.Save(a.book, a.notes)
}

// Specs exposes the command table for menu-style front-ends.
func (a *Assistant) Specs() []command.Spec {
	return a.specs
}

// Help renders the command table as markdown, one row per command.
func (a *Assistant) Help() string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, s := range a.specs {
		fmt.Fprintf(&b, "| `%s` | %s |\n", s.Usage, s.Help)
	}
	b.WriteString("\nCommands also answer to plain phrases, e.g. \"show me all my contacts\".\n")
	return b.String()
}

func (a *Assistant) handleHelp(args []string) (string, error) {
	return a.Help(), nil
}

func (a *Assistant) handleSave(args []string) (string, error) {
	if err := a.Save(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Saved %d contacts and %d notes", a.book.Len(), a.notes.Len()), nil
}

func (a *Assistant) handleExit(args []string) (string, error) {
	if err := a.Save(); err != nil {
		return "", fmt.Errorf("saving before exit: %w", err)
	}
	return "Good bye!", nil
}
