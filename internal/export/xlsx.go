// Package export writes the address book to spreadsheet files.
package export

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/attache/internal/apperr"
	"github.com/jeanpaul/attache/internal/contact"
)

var contactColumns = []string{"Name", "Phones", "Email", "Address", "Birthday", "Tags", "Notes"}

// ContactsXLSX writes every contact to an .xlsx workbook at path, one row
// per contact in the book's display order. Returns the number of rows
// written.
func ContactsXLSX(book *contact.AddressBook, path string) (int, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return 0, apperr.Validationf("export path must end in .xlsx, got %q", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Contacts"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, col := range contactColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return 0, err
		}
	}

	records := book.All()
	for row, r := range records {
		values := []string{
			r.Name(),
			strings.Join(r.Phones(), ", "),
			r.Email(),
			r.Address(),
			r.Birthday(),
			strings.Join(r.Tags(), ", "),
			strings.Join(r.Notes(), "; "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return 0, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return 0, err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return 0, err
	}
	return len(records), nil
}
