package assistant

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jeanpaul/attache/internal/apperr"
	"github.com/jeanpaul/attache/internal/command"
	"github.com/jeanpaul/attache/internal/contact"
	"github.com/jeanpaul/attache/internal/export"
)

func (a *Assistant) registerContactHandlers() {
	a.dispatcher.Register(command.OpAddContact, a.handleAddContact)
	a.dispatcher.Register(command.OpShowContact, a.handleShowContact)
	a.dispatcher.Register(command.OpListContacts, a.handleListContacts)
	a.dispatcher.Register(command.OpSearchContacts, a.handleSearchContacts)
	a.dispatcher.Register(command.OpDeleteContact, a.handleDeleteContact)
	a.dispatcher.Register(command.OpBirthdays, a.handleBirthdays)
	a.dispatcher.Register(command.OpAddPhone, a.handleAddPhone)
	a.dispatcher.Register(command.OpEditPhone, a.handleEditPhone)
	a.dispatcher.Register(command.OpRemovePhone, a.handleRemovePhone)
	a.dispatcher.Register(command.OpSetEmail, a.handleSetEmail)
	a.dispatcher.Register(command.OpSetAddress, a.handleSetAddress)
	a.dispatcher.Register(command.OpSetBirthday, a.handleSetBirthday)
	a.dispatcher.Register(command.OpAddTag, a.handleAddContactTag)
	a.dispatcher.Register(command.OpRemoveTag, a.handleRemoveContactTag)
	a.dispatcher.Register(command.OpAddContactNote, a.handleAddContactNote)
	a.dispatcher.Register(command.OpRemoveContactNote, a.handleRemoveContactNote)
	a.dispatcher.Register(command.OpExportContacts, a.handleExportContacts)
}

// find resolves a contact by name or fails with the uniform not-found error.
func (a *Assistant) find(name string) (*contact.Record, error) {
	if r := a.book.Find(name); r != nil {
		return r, nil
	}
	return nil, apperr.NotFoundf("contact %s not found", name)
}

func (a *Assistant) handleAddContact(args []string) (string, error) {
	name, phone := args[0], args[1]
	r, err := contact.NewRecord(name)
	if err != nil {
		return "", err
	}
	if phone != "" {
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
	}
	if err := a.book.Add(r); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s added", r.Name()), nil
}

func (a *Assistant) handleShowContact(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func (a *Assistant) handleListContacts(args []string) (string, error) {
	all := a.book.All()
	if len(all) == 0 {
		return "No contacts yet. Try: add-contact <name> [phone]", nil
	}
	lines := make([]string, 0, len(all))
	for _, r := range all {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) handleSearchContacts(args []string) (string, error) {
	found := a.book.Search(args[0])
	if len(found) == 0 {
		return fmt.Sprintf("No contacts matching %q", args[0]), nil
	}
	lines := make([]string, 0, len(found))
	for _, r := range found {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) handleDeleteContact(args []string) (string, error) {
	name, err := a.book.Delete(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted", name), nil
}

func (a *Assistant) handleBirthdays(args []string) (string, error) {
	days, err := strconv.Atoi(args[0])
	if err != nil {
		return "", apperr.Validationf("days must be a number, got %q", args[0])
	}
	upcoming, err := a.book.BirthdaysWithin(time.Now(), days)
	if err != nil {
		return "", err
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days", days), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Birthdays in the next %d days:", days)
	for _, u := range upcoming {
		fmt.Fprintf(&b, "\n  %s — %s", u.Record.Name(), u.Date.Format("Monday, 02.01"))
		switch u.Days {
		case 0:
			b.WriteString(" (today!)")
		case 1:
			b.WriteString(" (tomorrow)")
		default:
			fmt.Fprintf(&b, " (in %d days)", u.Days)
		}
	}
	return b.String(), nil
}

func (a *Assistant) handleAddPhone(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s added to %s", args[1], r.Name()), nil
}

func (a *Assistant) handleEditPhone(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s changed to %s for %s", args[1], args[2], r.Name()), nil
}

func (a *Assistant) handleRemovePhone(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s removed from %s", args[1], r.Name()), nil
}

func (a *Assistant) handleSetEmail(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.SetEmail(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Email set for %s", r.Name()), nil
}

func (a *Assistant) handleSetAddress(args []string) (string, error) {
	if strings.TrimSpace(args[1]) == "" {
		return "", apperr.Arityf("usage: set-address <name> <address...>")
	}
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.SetAddress(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Address set for %s", r.Name()), nil
}

func (a *Assistant) handleSetBirthday(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday set for %s", r.Name()), nil
}

func (a *Assistant) handleAddContactTag(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddTag(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag %q added to %s", args[1], r.Name()), nil
}

func (a *Assistant) handleRemoveContactTag(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.RemoveTag(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag %q removed from %s", args[1], r.Name()), nil
}

func (a *Assistant) handleAddContactNote(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddNote(args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note added to %s", r.Name()), nil
}

func (a *Assistant) handleRemoveContactNote(args []string) (string, error) {
	r, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return "", apperr.Validationf("note number must be a number, got %q", args[1])
	}
	if err := r.RemoveNoteAt(idx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note #%d removed from %s", idx, r.Name()), nil
}

func (a *Assistant) handleExportContacts(args []string) (string, error) {
	n, err := export.ContactsXLSX(a.book, args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Exported %d contacts to %s", n, args[0]), nil
}
