package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeanpaul/attache/internal/apperr"
)

// Record is a single contact. All mutation goes through the methods below so
// every stored value has passed its field validator. The address book owns
// records exclusively; nothing else holds one across calls.
type Record struct {
	name     string
	phones   []string // ordered, unique
	email    string   // at most one
	address  string   // at most one
	birthday string   // DD.MM.YYYY, at most one
	tags     []string // original casing, unique case-insensitively
	notes    []string // ordered free-text annotations
}

// NewRecord creates a contact with a mandatory, validated name.
func NewRecord(name string) (*Record, error) {
	f, err := NewField(KindName, name)
	if err != nil {
		return nil, err
	}
	return &Record{name: f.String()}, nil
}

func (r *Record) Name() string     { return r.name }
func (r *Record) Email() string    { return r.email }
func (r *Record) Address() string  { return r.address }
func (r *Record) Birthday() string { return r.birthday }

func (r *Record) Phones() []string { return append([]string(nil), r.phones...) }
func (r *Record) Tags() []string   { return append([]string(nil), r.tags...) }
func (r *Record) Notes() []string  { return append([]string(nil), r.notes...) }

// AddPhone appends a validated phone. Adding a number the record already has
// is reported as a duplicate, not a fault; the record keeps exactly one copy.
func (r *Record) AddPhone(phone string) error {
	f, err := NewField(KindPhone, phone)
	if err != nil {
		return err
	}
	for _, p := range r.phones {
		if p == f.String() {
			return apperr.Duplicatef("phone %s already exists for contact %s", phone, r.name)
		}
	}
	r.phones = append(r.phones, f.String())
	return nil
}

// RemovePhone deletes an exact phone value.
func (r *Record) RemovePhone(phone string) error {
	for i, p := range r.phones {
		if p == phone {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("phone %s not found for contact %s", phone, r.name)
}

// EditPhone replaces old with new in place. The new value must validate and
// must not collide with another phone on the same record (old itself is fine).
func (r *Record) EditPhone(old, new string) error {
	f, err := NewField(KindPhone, new)
	if err != nil {
		return err
	}
	idx := -1
	for i, p := range r.phones {
		if p == old {
			idx = i
		} else if p == f.String() {
			return apperr.Duplicatef("phone %s already exists for contact %s", new, r.name)
		}
	}
	if idx < 0 {
		return apperr.NotFoundf("phone %s not found for contact %s", old, r.name)
	}
	r.phones[idx] = f.String()
	return nil
}

// SetEmail replaces the single email, re-validating.
func (r *Record) SetEmail(email string) error {
	f, err := NewField(KindEmail, email)
	if err != nil {
		return err
	}
	r.email = f.String()
	return nil
}

// SetAddress replaces the single address.
func (r *Record) SetAddress(address string) error {
	f, err := NewField(KindAddress, address)
	if err != nil {
		return err
	}
	r.address = f.String()
	return nil
}

// SetBirthday replaces the single birthday.
func (r *Record) SetBirthday(date string) error {
	f, err := NewField(KindDate, date)
	if err != nil {
		return err
	}
	r.birthday = f.String()
	return nil
}

// AddTag adds a tag. Uniqueness is case-insensitive but the original casing
// is what gets displayed.
func (r *Record) AddTag(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return apperr.Validationf("tag must not be empty")
	}
	for _, t := range r.tags {
		if strings.EqualFold(t, tag) {
			return apperr.Duplicatef("tag %q already exists for contact %s", tag, r.name)
		}
	}
	r.tags = append(r.tags, tag)
	return nil
}

// RemoveTag removes a tag, matched case-insensitively.
func (r *Record) RemoveTag(tag string) error {
	for i, t := range r.tags {
		if strings.EqualFold(t, tag) {
			r.tags = append(r.tags[:i], r.tags[i+1:]...)
			return nil
		}
	}
	return apperr.NotFoundf("tag %q not found for contact %s", tag, r.name)
}

// AddNote appends a free-text annotation.
func (r *Record) AddNote(text string) error {
	if strings.TrimSpace(text) == "" {
		return apperr.Validationf("note text must not be empty")
	}
	r.notes = append(r.notes, text)
	return nil
}

// RemoveNoteAt removes the annotation at a 1-based index, the numbering the
// command surface shows.
func (r *Record) RemoveNoteAt(index int) error {
	if index < 1 || index > len(r.notes) {
		return apperr.NotFoundf("contact %s has no note #%d", r.name, index)
	}
	r.notes = append(r.notes[:index-1], r.notes[index:]...)
	return nil
}

// DaysToNextBirthday returns the day count until the next occurrence of the
// stored birthday relative to now, and false when no birthday is stored or it
// fails to parse.
//
// A 29.02 birthday in a non-leap target year is observed on 01.03: time.Date
// normalizes the nonexistent date to exactly that, so the policy falls out of
// the construction.
func (r *Record) DaysToNextBirthday(now time.Time) (int, bool) {
	if r.birthday == "" {
		return 0, false
	}
	born, err := time.Parse(DateLayout, r.birthday)
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	next := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(today).Hours() / 24), true
}

// NextBirthdayDate returns the observed date of the next occurrence.
func (r *Record) NextBirthdayDate(now time.Time) (time.Time, bool) {
	days, ok := r.DaysToNextBirthday(now)
	if !ok {
		return time.Time{}, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, days), true
}

// String renders the record the way show-contact and list-contacts print it.
func (r *Record) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contact: %s", r.name)
	if len(r.phones) > 0 {
		fmt.Fprintf(&b, ", Phones: %s", strings.Join(r.phones, ", "))
	}
	if r.email != "" {
		fmt.Fprintf(&b, ", Email: %s", r.email)
	}
	if r.address != "" {
		fmt.Fprintf(&b, ", Address: %s", r.address)
	}
	if r.birthday != "" {
		fmt.Fprintf(&b, ", Birthday: %s", r.birthday)
		if days, ok := r.DaysToNextBirthday(time.Now()); ok {
			fmt.Fprintf(&b, " (%d days away)", days)
		}
	}
	if len(r.tags) > 0 {
		fmt.Fprintf(&b, " [Tags: %s]", strings.Join(r.tags, ", "))
	}
	for i, n := range r.notes {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, n)
	}
	return b.String()
}
