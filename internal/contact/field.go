// Package contact implements the address book: validated field values,
// contact records and the case-insensitive store around them.
package contact

import (
	"regexp"
	"strings"
	"time"

	"github.com/jeanpaul/attache/internal/apperr"
)

// FieldKind tags a raw string with the format rule it must satisfy.
type FieldKind int

const (
	KindName FieldKind = iota
	KindPhone
	KindEmail
	KindAddress
	KindDate
)

// DateLayout is the external birthday format, DD.MM.YYYY.
const DateLayout = "02.01.2006"

var (
	// Ukrainian national convention: +380XXXXXXXXX or 0XXXXXXXXX.
	// The bare 10-digit alternate is deliberately rejected.
	phoneRe = regexp.MustCompile(`^(\+380\d{9}|0\d{9})$`)

	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Validate reports whether raw is acceptable for the given kind.
// It never panics and has no side effects.
func Validate(kind FieldKind, raw string) bool {
	switch kind {
	case KindName:
		return strings.TrimSpace(raw) != ""
	case KindPhone:
		return phoneRe.MatchString(raw)
	case KindEmail:
		return emailRe.MatchString(raw)
	case KindAddress:
		return strings.TrimSpace(raw) != ""
	case KindDate:
		return ValidateDateAt(raw, time.Now())
	}
	return false
}

// ValidateDateAt checks a DD.MM.YYYY birthday against a reference date.
// Parsing goes through real calendar construction, so 31.02.2024 is
// rejected and leap years are handled for free. A year after now's is
// not a birthday anyone has had yet.
func ValidateDateAt(raw string, now time.Time) bool {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return false
	}
	return d.Year() <= now.Year()
}

// Field is a validated immutable value. The only way to change it is Set,
// which re-validates.
type Field struct {
	kind  FieldKind
	value string
}

// NewField validates raw and wraps it. Construction fails with a
// validation error describing the expected format.
func NewField(kind FieldKind, raw string) (Field, error) {
	if !Validate(kind, raw) {
		return Field{}, validationErr(kind, raw)
	}
	return Field{kind: kind, value: raw}, nil
}

func (f Field) String() string { return f.value }

// Set replaces the value, re-validating against the field's kind.
func (f *Field) Set(raw string) error {
	if !Validate(f.kind, raw) {
		return validationErr(f.kind, raw)
	}
	f.value = raw
	return nil
}

func validationErr(kind FieldKind, raw string) error {
	switch kind {
	case KindName:
		return apperr.Validationf("name must not be empty")
	case KindPhone:
		return apperr.Validationf("invalid phone number %q: use +380XXXXXXXXX or 0XXXXXXXXX", raw)
	case KindEmail:
		return apperr.Validationf("invalid email address %q", raw)
	case KindAddress:
		return apperr.Validationf("address must not be empty")
	case KindDate:
		return apperr.Validationf("invalid birthday %q: use DD.MM.YYYY, a real calendar date, year not in the future", raw)
	}
	return apperr.Validationf("invalid value %q", raw)
}
