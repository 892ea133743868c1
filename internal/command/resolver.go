package command

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"github.com/jeanpaul/attache/internal/apperr"
)

// DefaultMinFuzzyScore is the similarity cutoff for the fuzzy fallback.
// Matches scoring below it are rejected as "no match". Tunable via config.
const DefaultMinFuzzyScore = 0

// Resolution is the outcome of resolving one input line.
type Resolution struct {
	Spec   Spec
	Rest   string // argument text still to be split by arity class
	Phrase string // the phrase that matched
	// Inferred marks heuristic or fuzzy resolution. For those the whole
	// input line is the remainder; the front-end tells the user which
	// command was inferred.
	Inferred bool
}

type phraseBinding struct {
	phrase string
	op     string
}

// heuristicRule fires when every keyword occurs in the lower-cased input.
// Rules are evaluated top to bottom, first match wins, so the more specific
// combinations sit above the general ones.
type heuristicRule struct {
	keywords []string
	op       string
}

var heuristics = []heuristicRule{
	{[]string{"show", "all", "contact"}, OpListContacts},
	{[]string{"all", "contact"}, OpListContacts},
	{[]string{"add", "contact"}, OpAddContact},
	{[]string{"show", "contact"}, OpShowContact},
	{[]string{"search", "contact"}, OpSearchContacts},
	{[]string{"find", "contact"}, OpSearchContacts},
	{[]string{"delete", "contact"}, OpDeleteContact},
	{[]string{"remove", "contact"}, OpDeleteContact},
	{[]string{"set", "birthday"}, OpSetBirthday},
	{[]string{"add", "birthday"}, OpSetBirthday},
	{[]string{"birthday"}, OpBirthdays},
	{[]string{"add", "phone"}, OpAddPhone},
	{[]string{"edit", "phone"}, OpEditPhone},
	{[]string{"change", "phone"}, OpEditPhone},
	{[]string{"remove", "phone"}, OpRemovePhone},
	{[]string{"delete", "phone"}, OpRemovePhone},
	{[]string{"set", "email"}, OpSetEmail},
	{[]string{"add", "email"}, OpSetEmail},
	{[]string{"set", "address"}, OpSetAddress},
	{[]string{"add", "address"}, OpSetAddress},
	{[]string{"show", "all", "note"}, OpListNotes},
	{[]string{"all", "note"}, OpListNotes},
	{[]string{"add", "tag", "note"}, OpAddNoteTag},
	{[]string{"remove", "tag", "note"}, OpRemoveNoteTag},
	{[]string{"by", "tag"}, OpSearchNotesByTag},
	{[]string{"search", "tag"}, OpSearchNotesByTag},
	{[]string{"add", "tag"}, OpAddTag},
	{[]string{"remove", "tag"}, OpRemoveTag},
	{[]string{"delete", "tag"}, OpRemoveTag},
	{[]string{"add", "note"}, OpAddNote},
	{[]string{"show", "note"}, OpShowNote},
	{[]string{"edit", "note"}, OpEditNote},
	{[]string{"change", "note"}, OpEditNote},
	{[]string{"delete", "note"}, OpDeleteNote},
	{[]string{"remove", "note"}, OpDeleteNote},
	{[]string{"search", "note"}, OpSearchNotes},
	{[]string{"find", "note"}, OpSearchNotes},
	{[]string{"sort", "note"}, OpSortNotes},
	{[]string{"group", "note"}, OpSortNotes},
	{[]string{"export"}, OpExportContacts},
	{[]string{"help"}, OpHelp},
	{[]string{"command"}, OpHelp},
}

// Resolver maps raw input lines to operations. It is built once from the
// static command table; nothing mutates it afterwards.
type Resolver struct {
	byOp     map[string]Spec
	phrases  []phraseBinding // sorted longest-first
	targets  []string        // phrase list for the fuzzy stage
	minScore int
}

// NewResolver builds a resolver over specs with the given fuzzy cutoff.
func NewResolver(specs []Spec, minScore int) *Resolver {
	r := &Resolver{
		byOp:     make(map[string]Spec, len(specs)),
		minScore: minScore,
	}
	for _, s := range specs {
		r.byOp[s.Op] = s
		for _, p := range s.Phrases {
			r.phrases = append(r.phrases, phraseBinding{phrase: strings.ToLower(p), op: s.Op})
		}
	}
	// Longest phrase wins, so "add contact" beats "add".
	sort.SliceStable(r.phrases, func(i, j int) bool {
		return len(r.phrases[i].phrase) > len(r.phrases[j].phrase)
	})
	for _, pb := range r.phrases {
		r.targets = append(r.targets, pb.phrase)
	}
	return r
}

// Spec returns the table entry for an op id.
func (r *Resolver) Spec(op string) (Spec, bool) {
	s, ok := r.byOp[op]
	return s, ok
}

// Resolve runs the three stages in order: longest phrase prefix, keyword
// heuristics, fuzzy similarity. It fails with an ambiguous-input error when
// nothing clears the bar; that failure is recoverable by design.
func (r *Resolver) Resolve(line string) (Resolution, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Resolution{}, apperr.Ambiguousf("empty input")
	}
	lower := strings.ToLower(trimmed)

	// Stage 1: longest matching phrase. The character after the phrase must
	// be whitespace so "addcontact" never matches "add contact"'s shorter
	// cousins.
	for _, pb := range r.phrases {
		if !strings.HasPrefix(lower, pb.phrase) {
			continue
		}
		if len(lower) > len(pb.phrase) && !isSpace(lower[len(pb.phrase)]) {
			continue
		}
		return Resolution{
			Spec:   r.byOp[pb.op],
			Rest:   strings.TrimSpace(trimmed[len(pb.phrase):]),
			Phrase: pb.phrase,
		}, nil
	}

	// Stage 2: keyword-combination heuristics, first match wins.
	for _, rule := range heuristics {
		if containsAll(lower, rule.keywords) {
			return Resolution{
				Spec:     r.byOp[rule.op],
				Rest:     trimmed,
				Phrase:   r.byOp[rule.op].Phrases[0],
				Inferred: true,
			}, nil
		}
	}

	// Stage 3: fuzzy similarity against every known phrase.
	matches := fuzzy.Find(lower, r.targets)
	if len(matches) > 0 && matches[0].Score >= r.minScore {
		pb := r.phrases[matches[0].Index]
		return Resolution{
			Spec:     r.byOp[pb.op],
			Rest:     trimmed,
			Phrase:   pb.phrase,
			Inferred: true,
		}, nil
	}

	return Resolution{}, apperr.Ambiguousf("I don't understand %q. Type 'help' to see available commands", trimmed)
}

func containsAll(s string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || unicode.IsSpace(rune(b))
}
