package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/attache/internal/apperr"
)

func titles(notes []*Note) []string {
	var out []string
	for _, n := range notes {
		out = append(out, n.Title())
	}
	return out
}

func TestAddRejectsBlankAndDuplicateTitles(t *testing.T) {
	b := NewNoteBook()

	_, err := b.Add("   ", "content")
	assert.True(t, apperr.Is(err, apperr.KindValidation), "blank title: %v", err)

	_, err = b.Add("Groceries", "milk")
	require.NoError(t, err)

	_, err = b.Add("groceries", "eggs")
	assert.True(t, apperr.Is(err, apperr.KindDuplicate), "case-insensitive duplicate title: %v", err)
	assert.Equal(t, 1, b.Len())
}

func TestFindEditDelete(t *testing.T) {
	b := NewNoteBook()
	n, err := b.Add("Plan", "v1")
	require.NoError(t, err)

	assert.Same(t, n, b.Find("PLAN"))
	assert.Nil(t, b.Find("missing"))

	created := n.CreatedAt()
	time.Sleep(5 * time.Millisecond)
	_, err = b.Edit("plan", "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", n.Content())
	assert.True(t, n.ModifiedAt().After(created), "edit must bump modified_at")

	_, err = b.Edit("missing", "x")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	require.NoError(t, b.Delete("plan"))
	assert.True(t, apperr.Is(b.Delete("plan"), apperr.KindNotFound))
}

func TestSearchSubstringVsTagExact(t *testing.T) {
	b := NewNoteBook()
	hw, err := b.Add("School", "algebra assignment")
	require.NoError(t, err)
	require.NoError(t, hw.AddTag("homework"))

	wk, err := b.Add("Office", "quarterly report")
	require.NoError(t, err)
	require.NoError(t, wk.AddTag("Work"))

	// general search is substring: "work" hits both the "homework" tag and
	// the "Work" tag
	assert.Equal(t, []string{"Office", "School"}, titles(b.Search("work")))

	// tag search is exact membership: "work" must not match "homework"
	assert.Equal(t, []string{"Office"}, titles(b.SearchByTag("work")))
	assert.Empty(t, b.SearchByTag("home"))
}

func TestSearchByContentAndTitle(t *testing.T) {
	b := NewNoteBook()
	_, err := b.Add("Zulu", "shared keyword here")
	require.NoError(t, err)
	_, err = b.Add("Alpha keyword", "unrelated")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha keyword", "Zulu"}, titles(b.Search("KEYWORD")), "sorted by title")
}

func TestSortByTags(t *testing.T) {
	b := NewNoteBook()
	add := func(title string, tags ...string) {
		n, err := b.Add(title, "")
		require.NoError(t, err)
		for _, tag := range tags {
			require.NoError(t, n.AddTag(tag))
		}
	}
	add("Delta", "work")
	add("Charlie")               // untagged, trails
	add("Bravo", "home", "work") // carries both grouped tags, appears once
	add("Alpha", "home")

	b.SortByTags("work", "home")

	got := titles(b.All())
	assert.Equal(t, []string{"Bravo", "Delta", "Alpha", "Charlie"}, got)
}

func TestSortByTagsDefaultsToAllTags(t *testing.T) {
	b := NewNoteBook()
	n1, err := b.Add("One", "")
	require.NoError(t, err)
	require.NoError(t, n1.AddTag("zeta"))
	n2, err := b.Add("Two", "")
	require.NoError(t, err)
	require.NoError(t, n2.AddTag("alpha"))

	b.SortByTags()

	assert.Equal(t, []string{"Two", "One"}, titles(b.All()), "buckets in alphabetical tag order")
}

func TestRestoreKeepsIdentity(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	modified := created.Add(time.Hour)
	n, err := Restore("abc-123", "Saved", "body", []string{"x", "X"}, created, modified)
	require.NoError(t, err)

	assert.Equal(t, "abc-123", n.ID())
	assert.Equal(t, created, n.CreatedAt())
	assert.Equal(t, modified, n.ModifiedAt())
	assert.Equal(t, []string{"x"}, n.Tags(), "duplicate tags in old files fold away")
}
