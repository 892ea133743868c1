// Package command turns a raw input line into a bound operation: phrase
// resolution (longest match, keyword heuristics, fuzzy fallback) and
// arity-checked argument splitting.
package command

// ArityClass is the fixed rule for splitting an operation's remainder text
// into positional arguments.
type ArityClass int

const (
	// ArityNone — no arguments; any remaining text is an error.
	ArityNone ArityClass = iota
	// ArityOne — the whole remainder is one argument, spaces included.
	ArityOne
	// ArityTwo — split on the first whitespace run into exactly two parts.
	ArityTwo
	// ArityThree — split on the first two whitespace runs into three parts.
	ArityThree
	// ArityOneRest — one required token, then an optional free remainder.
	ArityOneRest
)

// Operation identifiers. The canonical command names double as op ids.
const (
	OpAddContact        = "add-contact"
	OpShowContact       = "show-contact"
	OpListContacts      = "list-contacts"
	OpSearchContacts    = "search-contacts"
	OpDeleteContact     = "delete-contact"
	OpBirthdays         = "birthdays"
	OpAddPhone          = "add-phone"
	OpEditPhone         = "edit-phone"
	OpRemovePhone       = "remove-phone"
	OpSetEmail          = "set-email"
	OpSetAddress        = "set-address"
	OpSetBirthday       = "set-birthday"
	OpAddTag            = "add-tag"
	OpRemoveTag         = "remove-tag"
	OpAddContactNote    = "add-contact-note"
	OpRemoveContactNote = "remove-contact-note"
	OpAddNote           = "add-note"
	OpShowNote          = "show-note"
	OpListNotes         = "list-notes"
	OpEditNote          = "edit-note"
	OpDeleteNote        = "delete-note"
	OpSearchNotes       = "search-notes"
	OpAddNoteTag        = "add-note-tag"
	OpRemoveNoteTag     = "remove-note-tag"
	OpSearchNotesByTag  = "search-notes-by-tag"
	OpSortNotes         = "sort-notes"
	OpExportContacts    = "export-contacts"
	OpHelp              = "help"
	OpSave              = "save"
	OpExit              = "exit"
)

// Spec describes one operation: its canonical name, every phrase that
// resolves to it, its arity class and its help line.
type Spec struct {
	Op      string
	Phrases []string // Phrases[0] is the canonical name
	Arity   ArityClass
	Usage   string
	Help    string
}

// Table is the static ordered command table. Resolution does not depend on
// the order here (the resolver sorts phrases longest-first); display does.
func Table() []Spec {
	return []Spec{
		{OpAddContact, []string{"add-contact", "add contact", "new contact", "create contact"}, ArityOneRest,
			"add-contact <name> [phone]", "Add a new contact, optionally with a first phone"},
		{OpShowContact, []string{"show-contact", "show contact"}, ArityOne,
			"show-contact <name>", "Show one contact"},
		{OpListContacts, []string{"list-contacts", "list contacts", "show all contacts", "all contacts"}, ArityNone,
			"list-contacts", "Show every contact"},
		{OpSearchContacts, []string{"search-contacts", "search contacts", "find contact", "find contacts"}, ArityOne,
			"search-contacts <query>", "Search contacts across every field"},
		{OpDeleteContact, []string{"delete-contact", "delete contact", "remove contact"}, ArityOne,
			"delete-contact <name>", "Delete a contact"},
		{OpBirthdays, []string{"birthdays", "upcoming birthdays"}, ArityOne,
			"birthdays <days>", "Contacts with a birthday within the next N days"},
		{OpAddPhone, []string{"add-phone", "add phone"}, ArityTwo,
			"add-phone <name> <phone>", "Add a phone to a contact"},
		{OpEditPhone, []string{"edit-phone", "edit phone", "change phone"}, ArityThree,
			"edit-phone <name> <old> <new>", "Replace one phone with another"},
		{OpRemovePhone, []string{"remove-phone", "remove phone", "delete phone"}, ArityTwo,
			"remove-phone <name> <phone>", "Remove a phone from a contact"},
		{OpSetEmail, []string{"set-email", "set email", "add email"}, ArityTwo,
			"set-email <name> <email>", "Set a contact's email"},
		{OpSetAddress, []string{"set-address", "set address", "add address"}, ArityOneRest,
			"set-address <name> <address...>", "Set a contact's address"},
		{OpSetBirthday, []string{"set-birthday", "set birthday", "add birthday"}, ArityTwo,
			"set-birthday <name> <date>", "Set a contact's birthday (DD.MM.YYYY)"},
		{OpAddTag, []string{"add-tag", "add tag", "tag contact"}, ArityTwo,
			"add-tag <name> <tag>", "Tag a contact"},
		{OpRemoveTag, []string{"remove-tag", "remove tag", "untag contact"}, ArityTwo,
			"remove-tag <name> <tag>", "Remove a tag from a contact"},
		{OpAddContactNote, []string{"add-contact-note", "add contact note"}, ArityOneRest,
			"add-contact-note <name> <text...>", "Attach a free-text note to a contact"},
		{OpRemoveContactNote, []string{"remove-contact-note", "remove contact note"}, ArityTwo,
			"remove-contact-note <name> <index>", "Remove a contact note by its number"},
		{OpAddNote, []string{"add-note", "add note", "new note", "create note"}, ArityOneRest,
			"add-note <title> [content...]", "Add a note"},
		{OpShowNote, []string{"show-note", "show note"}, ArityOne,
			"show-note <title>", "Show one note"},
		{OpListNotes, []string{"list-notes", "list notes", "show all notes", "all notes"}, ArityNone,
			"list-notes", "Show every note"},
		{OpEditNote, []string{"edit-note", "edit note", "change note"}, ArityOneRest,
			"edit-note <title> [content...]", "Replace a note's content"},
		{OpDeleteNote, []string{"delete-note", "delete note", "remove note"}, ArityOne,
			"delete-note <title>", "Delete a note"},
		{OpSearchNotes, []string{"search-notes", "search notes", "find note", "find notes"}, ArityOne,
			"search-notes <query>", "Search notes by title, content and tags"},
		{OpAddNoteTag, []string{"add-note-tag", "add note tag", "tag note"}, ArityTwo,
			"add-note-tag <title> <tag>", "Tag a note"},
		{OpRemoveNoteTag, []string{"remove-note-tag", "remove note tag", "untag note"}, ArityTwo,
			"remove-note-tag <title> <tag>", "Remove a tag from a note"},
		{OpSearchNotesByTag, []string{"search-notes-by-tag", "search notes by tag", "notes by tag"}, ArityOne,
			"search-notes-by-tag <tag>", "Notes carrying exactly this tag"},
		{OpSortNotes, []string{"sort-notes", "sort notes", "group notes"}, ArityNone,
			"sort-notes", "Group the note list by tag"},
		{OpExportContacts, []string{"export-contacts", "export contacts"}, ArityOne,
			"export-contacts <path.xlsx>", "Write the address book to a spreadsheet"},
		{OpHelp, []string{"help", "commands"}, ArityNone,
			"help", "Show this help"},
		{OpSave, []string{"save"}, ArityNone,
			"save", "Flush both books to disk now"},
		{OpExit, []string{"exit", "quit", "bye", "close"}, ArityNone,
			"exit", "Save and leave"},
	}
}
