// Package note implements the notebook: free-text notes with tags,
// title-keyed lookup and tag-based grouping.
package note

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jeanpaul/attache/internal/apperr"
)

// Note is one free-text note. Titles identify notes on the command surface;
// the uuid is the stable identity that survives renames and reordering, so
// nothing ever addresses a note by position.
type Note struct {
	id         string
	title      string
	content    string
	tags       []string
	createdAt  time.Time
	modifiedAt time.Time
}

// New creates a note with a generated id and both timestamps set to now.
func New(title, content string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.Validationf("note title must not be empty")
	}
	now := time.Now()
	return &Note{
		id:         uuid.NewString(),
		title:      title,
		content:    content,
		createdAt:  now,
		modifiedAt: now,
	}, nil
}

// Restore rebuilds a note from persisted state, keeping its id and timestamps.
func Restore(id, title, content string, tags []string, createdAt, modifiedAt time.Time) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperr.Validationf("note title must not be empty")
	}
	if id == "" {
		id = uuid.NewString()
	}
	n := &Note{
		id:         id,
		title:      title,
		content:    content,
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
	}
	for _, t := range tags {
		// Tolerate duplicates in old files; AddTag folds them away.
		_ = n.addTagNoTouch(t)
	}
	return n, nil
}

func (n *Note) ID() string            { return n.id }
func (n *Note) Title() string         { return n.title }
func (n *Note) Content() string       { return n.content }
func (n *Note) CreatedAt() time.Time  { return n.createdAt }
func (n *Note) ModifiedAt() time.Time { return n.modifiedAt }

func (n *Note) Tags() []string { return append([]string(nil), n.tags...) }

func (n *Note) touch() { n.modifiedAt = time.Now() }

// SetContent replaces the text and bumps the modification timestamp.
func (n *Note) SetContent(content string) {
	n.content = content
	n.touch()
}

// AddTag adds a tag, unique case-insensitively with original casing kept.
func (n *Note) AddTag(tag string) error {
	if err := n.addTagNoTouch(tag); err != nil {
		return err
	}
	n.touch()
	return nil
}

func (n *Note) addTagNoTouch(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return apperr.Validationf("tag must not be empty")
	}
	for _, t := range n.tags {
		if strings.EqualFold(t, tag) {
			return apperr.Duplicatef("tag %q already exists on note %q", tag, n.title)
		}
	}
	n.tags = append(n.tags, tag)
	return nil
}

// RemoveTag removes a tag matched case-insensitively.
func (n *Note) RemoveTag(tag string) error {
	for i, t := range n.tags {
		if strings.EqualFold(t, tag) {
			n.tags = append(n.tags[:i], n.tags[i+1:]...)
			n.touch()
			return nil
		}
	}
	return apperr.NotFoundf("tag %q not found on note %q", tag, n.title)
}

// HasTag reports exact case-insensitive tag membership. "work" never matches
// a note tagged only "homework".
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// String renders the note the way show-note prints it.
func (n *Note) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s", n.title)
	if len(n.tags) > 0 {
		fmt.Fprintf(&b, " [Tags: %s]", strings.Join(n.tags, ", "))
	}
	fmt.Fprintf(&b, "\nCreated: %s", n.createdAt.Format("2006-01-02 15:04:05"))
	if !n.modifiedAt.Equal(n.createdAt) {
		fmt.Fprintf(&b, ", modified: %s", n.modifiedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "\n%s", n.content)
	return b.String()
}
