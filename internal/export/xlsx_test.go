package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/attache/internal/apperr"
	"github.com/jeanpaul/attache/internal/contact"
)

func TestContactsXLSX(t *testing.T) {
	book := contact.NewAddressBook()
	r, err := contact.NewRecord("Ann")
	require.NoError(t, err)
	require.NoError(t, r.AddPhone("0991234567"))
	require.NoError(t, r.AddPhone("0997654321"))
	require.NoError(t, r.SetEmail("ann@example.com"))
	require.NoError(t, book.Add(r))

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	n, err := ContactsXLSX(book, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Ann", rows[1][0])
	assert.Equal(t, "0991234567, 0997654321", rows[1][1])
	assert.Equal(t, "ann@example.com", rows[1][2])
}

func TestContactsXLSXRejectsWrongExtension(t *testing.T) {
	_, err := ContactsXLSX(contact.NewAddressBook(), "contacts.csv")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
