package assistant

import (
	"fmt"
	"strings"

	"github.com/jeanpaul/attache/internal/apperr"
	"github.com/jeanpaul/attache/internal/command"
	"github.com/jeanpaul/attache/internal/note"
)

func (a *Assistant) registerNoteHandlers() {
	a.dispatcher.Register(command.OpAddNote, a.handleAddNote)
	a.dispatcher.Register(command.OpShowNote, a.handleShowNote)
	a.dispatcher.Register(command.OpListNotes, a.handleListNotes)
	a.dispatcher.Register(command.OpEditNote, a.handleEditNote)
	a.dispatcher.Register(command.OpDeleteNote, a.handleDeleteNote)
	a.dispatcher.Register(command.OpSearchNotes, a.handleSearchNotes)
	a.dispatcher.Register(command.OpAddNoteTag, a.handleAddNoteTag)
	a.dispatcher.Register(command.OpRemoveNoteTag, a.handleRemoveNoteTag)
	a.dispatcher.Register(command.OpSearchNotesByTag, a.handleSearchNotesByTag)
	a.dispatcher.Register(command.OpSortNotes, a.handleSortNotes)
}

func (a *Assistant) findNote(title string) (*note.Note, error) {
	if n := a.notes.Find(title); n != nil {
		return n, nil
	}
	return nil, apperr.NotFoundf("note %q not found", title)
}

func renderNotes(notes []*note.Note) string {
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, n.String())
	}
	return strings.Join(lines, "\n---\n")
}

func (a *Assistant) handleAddNote(args []string) (string, error) {
	n, err := a.notes.Add(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %q added", n.Title()), nil
}

func (a *Assistant) handleShowNote(args []string) (string, error) {
	n, err := a.findNote(args[0])
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func (a *Assistant) handleListNotes(args []string) (string, error) {
	all := a.notes.All()
	if len(all) == 0 {
		return "No notes yet. Try: add-note <title> [content]", nil
	}
	return renderNotes(all), nil
}

func (a *Assistant) handleEditNote(args []string) (string, error) {
	n, err := a.notes.Edit(args[0], args[1])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %q updated", n.Title()), nil
}

func (a *Assistant) handleDeleteNote(args []string) (string, error) {
	if err := a.notes.Delete(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %q deleted", args[0]), nil
}

func (a *Assistant) handleSearchNotes(args []string) (string, error) {
	found := a.notes.Search(args[0])
	if len(found) == 0 {
		return fmt.Sprintf("No notes matching %q", args[0]), nil
	}
	return renderNotes(found), nil
}

func (a *Assistant) handleAddNoteTag(args []string) (string, error) {
	n, err := a.findNote(args[0])
	if err != nil {
		return "", err
	}
	if err := n.AddTag(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag %q added to note %q", args[1], n.Title()), nil
}

func (a *Assistant) handleRemoveNoteTag(args []string) (string, error) {
	n, err := a.findNote(args[0])
	if err != nil {
		return "", err
	}
	if err := n.RemoveTag(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag %q removed from note %q", args[1], n.Title()), nil
}

func (a *Assistant) handleSearchNotesByTag(args []string) (string, error) {
	found := a.notes.SearchByTag(args[0])
	if len(found) == 0 {
		return fmt.Sprintf("No notes tagged %q", args[0]), nil
	}
	return renderNotes(found), nil
}

func (a *Assistant) handleSortNotes(args []string) (string, error) {
	if a.notes.Len() == 0 {
		return "No notes to sort", nil
	}
	a.notes.SortByTags()
	var b strings.Builder
	b.WriteString("Notes grouped by tag:")
	for _, n := range a.notes.All() {
		tag := "(untagged)"
		if tags := n.Tags(); len(tags) > 0 {
			tag = tags[0]
		}
		fmt.Fprintf(&b, "\n  [%s] %s", tag, n.Title())
	}
	return b.String(), nil
}
