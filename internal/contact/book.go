package contact

import (
	"sort"
	"strings"
	"time"

	"github.com/jeanpaul/attache/internal/apperr"
)

// AddressBook maps contact names to records. Keys keep their original casing
// but are unique under case-insensitive comparison, and every lookup folds
// case. Only the vetted methods below touch the backing map.
type AddressBook struct {
	records map[string]*Record // folded name -> record
	order   []string           // folded names in insertion order
}

func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

func fold(s string) string { return strings.ToLower(s) }

// Add stores a record, rejecting names that collide case-insensitively.
func (b *AddressBook) Add(r *Record) error {
	key := fold(r.Name())
	if existing, ok := b.records[key]; ok {
		return apperr.Duplicatef("contact %s already exists", existing.Name())
	}
	b.records[key] = r
	b.order = append(b.order, key)
	return nil
}

// Find returns the record for name, matched case-insensitively, or nil.
func (b *AddressBook) Find(name string) *Record {
	return b.records[fold(name)]
}

// Delete removes a contact and returns the original casing of the removed key.
func (b *AddressBook) Delete(name string) (string, error) {
	key := fold(name)
	r, ok := b.records[key]
	if !ok {
		return "", apperr.NotFoundf("contact %s not found", name)
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return r.Name(), nil
}

// All returns the records in insertion order.
func (b *AddressBook) All() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

func (b *AddressBook) Len() int { return len(b.records) }

// Search returns records where the query occurs, case-insensitively, in the
// name, any phone, the email, the address, any tag or any annotation. The
// first hit settles a record. Results are sorted by name, case-insensitive.
func (b *AddressBook) Search(query string) []*Record {
	q := fold(query)
	var out []*Record
	for _, r := range b.All() {
		if recordMatches(r, q) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return fold(out[i].Name()) < fold(out[j].Name())
	})
	return out
}

func recordMatches(r *Record, q string) bool {
	if strings.Contains(fold(r.Name()), q) {
		return true
	}
	for _, p := range r.Phones() {
		if strings.Contains(p, q) {
			return true
		}
	}
	if r.Email() != "" && strings.Contains(fold(r.Email()), q) {
		return true
	}
	if r.Address() != "" && strings.Contains(fold(r.Address()), q) {
		return true
	}
	for _, t := range r.Tags() {
		if strings.Contains(fold(t), q) {
			return true
		}
	}
	for _, n := range r.Notes() {
		if strings.Contains(fold(n), q) {
			return true
		}
	}
	return false
}

// Upcoming pairs a record with its next birthday occurrence.
type Upcoming struct {
	Record *Record
	Days   int
	Date   time.Time
}

// BirthdaysWithin returns contacts whose next birthday falls within days of
// now, inclusive on both ends. Zero means today only. A negative window is an
// argument-range error, not an empty result. Output is ascending by day
// count; ties keep insertion order.
func (b *AddressBook) BirthdaysWithin(now time.Time, days int) ([]Upcoming, error) {
	if days < 0 {
		return nil, apperr.Validationf("number of days must not be negative, got %d", days)
	}
	var out []Upcoming
	for _, r := range b.All() {
		d, ok := r.DaysToNextBirthday(now)
		if !ok || d > days {
			continue
		}
		date, _ := r.NextBirthdayDate(now)
		out = append(out, Upcoming{Record: r, Days: d, Date: date})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out, nil
}
