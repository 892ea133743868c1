// Package storage persists the address book and the notebook as JSON files
// in a data directory. Loading is tolerant: malformed entries are skipped
// with a warning instead of failing the whole session.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeanpaul/attache/internal/contact"
	"github.com/jeanpaul/attache/internal/note"
)

const (
	contactsFile = "contacts.json"
	notesFile    = "notes.json"
)

// contactRecord is the on-disk shape of one contact, keyed by name in the
// enclosing map.
type contactRecord struct {
	Phones   []string `json:"phones,omitempty"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// noteRecord is the on-disk shape of one note.
type noteRecord struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Store reads and writes both books under one directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string { return s.dir }

// Load reads both files. Missing files mean empty books. A file that cannot
// be read or parsed degrades to an empty book with a warning, and entries
// that fail validation are dropped the same way, so bad data never refuses
// the session.
func (s *Store) Load() (*contact.AddressBook, *note.NoteBook, []string) {
	var warnings []string

	book := contact.NewAddressBook()
	raw, err := os.ReadFile(filepath.Join(s.dir, contactsFile))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("cannot read %s, starting with an empty address book: %v", contactsFile, err))
	default:
		var records map[string]contactRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s is corrupt, starting with an empty address book: %v", contactsFile, err))
			break
		}
		for name, rec := range records {
			if w := restoreContact(book, name, rec); len(w) > 0 {
				warnings = append(warnings, w...)
			}
		}
	}

	notes := note.NewNoteBook()
	raw, err = os.ReadFile(filepath.Join(s.dir, notesFile))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		warnings = append(warnings, fmt.Sprintf("cannot read %s, starting with an empty notebook: %v", notesFile, err))
	default:
		var records []noteRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s is corrupt, starting with an empty notebook: %v", notesFile, err))
			break
		}
		for _, rec := range records {
			n, err := note.Restore(rec.ID, rec.Title, rec.Content, rec.Tags, rec.CreatedAt, rec.ModifiedAt)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping note %q: %v", rec.Title, err))
				continue
			}
			if err := notes.Put(n); err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping note %q: %v", rec.Title, err))
			}
		}
	}

	return book, notes, warnings
}

// restoreContact rebuilds one record through the validating mutators. An
// invalid name drops the whole contact; an invalid field drops just that
// field. Either way a warning says what was lost.
func restoreContact(book *contact.AddressBook, name string, rec contactRecord) []string {
	var warnings []string

	r, err := contact.NewRecord(name)
	if err != nil {
		return []string{fmt.Sprintf("skipping contact %q: %v", name, err)}
	}
	for _, p := range rec.Phones {
		if err := r.AddPhone(p); err != nil {
			warnings = append(warnings, fmt.Sprintf("contact %q: dropping phone %q: %v", name, p, err))
		}
	}
	if rec.Email != "" {
		if err := r.SetEmail(rec.Email); err != nil {
			warnings = append(warnings, fmt.Sprintf("contact %q: dropping email %q: %v", name, rec.Email, err))
		}
	}
	if rec.Address != "" {
		if err := r.SetAddress(rec.Address); err != nil {
			warnings = append(warnings, fmt.Sprintf("contact %q: dropping address: %v", name, err))
		}
	}
	if rec.Birthday != "" {
		if err := r.SetBirthday(rec.Birthday); err != nil {
			warnings = append(warnings, fmt.Sprintf("contact %q: dropping birthday %q: %v", name, rec.Birthday, err))
		}
	}
	for _, t := range rec.Tags {
		if err := r.AddTag(t); err != nil {
			warnings = append(warnings, fmt.Sprintf("contact %q: dropping tag %q: %v", name, t, err))
		}
	}
	for _, n := range rec.Notes {
		if err := r.AddNote(n); err != nil {
			warnings = append(warnings, fmt.Sprintf("contact %q: dropping note: %v", name, err))
		}
	}
	if err := book.Add(r); err != nil {
		return append(warnings, fmt.Sprintf("skipping contact %q: %v", name, err))
	}
	return warnings
}

// Save writes both books. Each file is written to a temp sibling first and
// renamed into place so a crash mid-write never leaves a truncated file.
func (s *Store) Save(book *contact.AddressBook, notes *note.NoteBook) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	records := make(map[string]contactRecord, len(book.All()))
	for _, r := range book.All() {
		records[r.Name()] = contactRecord{
			Phones:   r.Phones(),
			Email:    r.Email(),
			Address:  r.Address(),
			Birthday: r.Birthday(),
			Tags:     r.Tags(),
			Notes:    r.Notes(),
		}
	}
	if err := s.writeJSON(contactsFile, records); err != nil {
		return err
	}

	all := notes.All()
	noteRecords := make([]noteRecord, 0, len(all))
	for _, n := range all {
		noteRecords = append(noteRecords, noteRecord{
			ID:         n.ID(),
			Title:      n.Title(),
			Content:    n.Content(),
			Tags:       n.Tags(),
			CreatedAt:  n.CreatedAt(),
			ModifiedAt: n.ModifiedAt(),
		})
	}
	return s.writeJSON(notesFile, noteRecords)
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
