package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/attache/internal/apperr"
)

func addContact(t *testing.T, b *AddressBook, name string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	require.NoError(t, b.Add(r))
	return r
}

func TestBookCaseInsensitiveKeys(t *testing.T) {
	b := NewAddressBook()
	r := addContact(t, b, "Ann")

	assert.Same(t, r, b.Find("ann"))
	assert.Same(t, r, b.Find("ANN"))
	assert.Same(t, r, b.Find("Ann"))

	dup, err := NewRecord("aNN")
	require.NoError(t, err)
	err = b.Add(dup)
	assert.True(t, apperr.Is(err, apperr.KindDuplicate), "case-insensitive collision must be rejected: %v", err)
}

func TestBookDeleteReturnsOriginalCasing(t *testing.T) {
	b := NewAddressBook()
	addContact(t, b, "Oleh")

	name, err := b.Delete("OLEH")
	require.NoError(t, err)
	assert.Equal(t, "Oleh", name)
	assert.Nil(t, b.Find("Oleh"))

	_, err = b.Delete("Oleh")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestSearchMultiField(t *testing.T) {
	b := NewAddressBook()

	ann := addContact(t, b, "Ann")
	require.NoError(t, ann.AddPhone("0991234567"))
	require.NoError(t, ann.SetEmail("ann@example.com"))

	bob := addContact(t, b, "Bob")
	require.NoError(t, bob.SetAddress("14 Khreshchatyk St, Kyiv"))
	require.NoError(t, bob.AddTag("Work"))

	zoe := addContact(t, b, "Zoe")
	require.NoError(t, zoe.AddNote("met at the kyiv conference"))

	names := func(rs []*Record) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Name())
		}
		return out
	}

	assert.Equal(t, []string{"Ann"}, names(b.Search("1234")), "phone substring")
	assert.Equal(t, []string{"Ann"}, names(b.Search("EXAMPLE.COM")), "email, case folded")
	assert.Equal(t, []string{"Bob"}, names(b.Search("work")), "tag substring")
	assert.Equal(t, []string{"Bob", "Zoe"}, names(b.Search("kyiv")), "address and note, sorted by name")
	assert.Empty(t, b.Search("nothing-here"))
}

func TestBirthdaysWithin(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	b := NewAddressBook()

	soon := addContact(t, b, "Soon")
	require.NoError(t, soon.SetBirthday("31.08.1990")) // 2 days

	today := addContact(t, b, "Today")
	require.NoError(t, today.SetBirthday("29.08.1985")) // 0 days

	far := addContact(t, b, "Far")
	require.NoError(t, far.SetBirthday("01.12.1999"))

	addContact(t, b, "NoBirthday")

	got, err := b.BirthdaysWithin(now, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Today", got[0].Record.Name())
	assert.Equal(t, 0, got[0].Days)
	assert.Equal(t, "Soon", got[1].Record.Name())
	assert.Equal(t, 2, got[1].Days)

	// zero window: today only
	got, err = b.BirthdaysWithin(now, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Today", got[0].Record.Name())

	// negative window is an argument-range error, never a silent empty
	_, err = b.BirthdaysWithin(now, -1)
	assert.True(t, apperr.Is(err, apperr.KindValidation), "got %v", err)
}

func TestBirthdaysWithinStableTies(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	b := NewAddressBook()
	for _, name := range []string{"Zed", "Ada", "Mia"} {
		r := addContact(t, b, name)
		require.NoError(t, r.SetBirthday("30.08.1990"))
	}
	got, err := b.BirthdaysWithin(now, 30)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Zed", got[0].Record.Name(), "ties keep insertion order")
	assert.Equal(t, "Ada", got[1].Record.Name())
	assert.Equal(t, "Mia", got[2].Record.Name())
}
