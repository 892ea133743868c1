package note

import (
	"sort"
	"strings"

	"github.com/jeanpaul/attache/internal/apperr"
)

// NoteBook holds notes in display order. Titles are the lookup key and are
// unique under case-insensitive comparison; SortByTags is the only operation
// that reorders the backing slice, and it never changes identity.
type NoteBook struct {
	notes []*Note
}

func NewNoteBook() *NoteBook {
	return &NoteBook{}
}

// Add creates and stores a note, rejecting blank and duplicate titles.
func (b *NoteBook) Add(title, content string) (*Note, error) {
	if existing := b.Find(title); existing != nil {
		return nil, apperr.Duplicatef("note %q already exists", existing.Title())
	}
	n, err := New(title, content)
	if err != nil {
		return nil, err
	}
	b.notes = append(b.notes, n)
	return n, nil
}

// Put stores an already-built note (used when loading from disk).
func (b *NoteBook) Put(n *Note) error {
	if existing := b.Find(n.Title()); existing != nil {
		return apperr.Duplicatef("note %q already exists", existing.Title())
	}
	b.notes = append(b.notes, n)
	return nil
}

// Find returns the note with the given title, matched case-insensitively.
func (b *NoteBook) Find(title string) *Note {
	for _, n := range b.notes {
		if strings.EqualFold(n.Title(), title) {
			return n
		}
	}
	return nil
}

// Edit replaces a note's content and bumps its modification timestamp.
func (b *NoteBook) Edit(title, content string) (*Note, error) {
	n := b.Find(title)
	if n == nil {
		return nil, apperr.NotFoundf("note %q not found", title)
	}
	n.SetContent(content)
	return n, nil
}

// Delete removes a note by title.
func (b *NoteBook) Delete(title string) error {
	for i, n := range b.notes {
		if strings.EqualFold(n.Title(), title) {
			b.notes = append(b.notes[:i], b.notes[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("note %q not found", title)
}

// All returns the notes in display order.
func (b *NoteBook) All() []*Note {
	return append([]*Note(nil), b.notes...)
}

func (b *NoteBook) Len() int { return len(b.notes) }

// Search returns notes whose title, content or any tag contains the query,
// case-insensitively. This is substring search; tag lookup by exact name is
// SearchByTag. Results are sorted by title.
func (b *NoteBook) Search(query string) []*Note {
	q := strings.ToLower(query)
	var out []*Note
	for _, n := range b.notes {
		if noteMatches(n, q) {
			out = append(out, n)
		}
	}
	sortByTitle(out)
	return out
}

func noteMatches(n *Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title()), q) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content()), q) {
		return true
	}
	for _, t := range n.Tags() {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// SearchByTag returns notes carrying the tag, exact case-insensitive
// membership, sorted by title.
func (b *NoteBook) SearchByTag(tag string) []*Note {
	var out []*Note
	for _, n := range b.notes {
		if n.HasTag(tag) {
			out = append(out, n)
		}
	}
	sortByTitle(out)
	return out
}

// SortByTags reorders the display sequence into tag buckets: one bucket per
// given tag (in the given order), each internally sorted by title, untagged
// and unmatched notes trailing, also sorted by title. A note lands in the
// bucket of the first grouped tag it carries, never in two. With no tags
// given, every distinct tag in the book forms a bucket, alphabetically.
func (b *NoteBook) SortByTags(tags ...string) {
	if len(tags) == 0 {
		tags = b.distinctTags()
	}
	seen := make(map[string]bool, len(b.notes))
	var ordered []*Note
	for _, tag := range tags {
		var bucket []*Note
		for _, n := range b.notes {
			if !seen[n.ID()] && n.HasTag(tag) {
				bucket = append(bucket, n)
				seen[n.ID()] = true
			}
		}
		sortByTitle(bucket)
		ordered = append(ordered, bucket...)
	}
	var rest []*Note
	for _, n := range b.notes {
		if !seen[n.ID()] {
			rest = append(rest, n)
		}
	}
	sortByTitle(rest)
	b.notes = append(ordered, rest...)
}

func (b *NoteBook) distinctTags() []string {
	seen := make(map[string]string)
	for _, n := range b.notes {
		for _, t := range n.Tags() {
			key := strings.ToLower(t)
			if _, ok := seen[key]; !ok {
				seen[key] = t
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func sortByTitle(notes []*Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return strings.ToLower(notes[i].Title()) < strings.ToLower(notes[j].Title())
	})
}
