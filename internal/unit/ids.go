package unit

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlug is used when a title has no sluggable characters.
const fallbackSlug = "section"

// IDSet records ids already handed out within one Document.
type IDSet map[string]struct{}

// Has reports whether id is taken.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Page-level ids the renderer emits outside any section.
const (
	ObjectivesTitleID = "unit-objectives-title"
	ResourcesTitleID  = "unit-resources-title"
	FlashcardsTitleID = "unit-flashcards-title"
)

// Prefixes of per-item ids in the resource and flashcard grids. Slugs never
// contain a double hyphen, so these ids stay clear of section ids.
const (
	ResourceIDPrefix  = "resource--"
	FlashcardIDPrefix = "flashcard--"
)

// ReservedIDs returns a fresh set holding the page-level ids, used to seed
// the id scan of a Document.
func ReservedIDs() IDSet {
	return IDSet{
		ObjectivesTitleID: {},
		ResourcesTitleID:  {},
		FlashcardsTitleID: {},
	}
}

// UniqueID returns base, or base suffixed -2, -3, ... when taken, together
// with the set updated to include the returned id. A nil set is allocated.
func UniqueID(base string, used IDSet) (string, IDSet) {
	if used == nil {
		used = IDSet{}
	}
	if base == "" {
		base = fallbackSlug
	}

	id := base
	for n := 2; used.Has(id); n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	used[id] = struct{}{}
	return id, used
}

// Slugify lowercases s, folds diacritics and joins ASCII letter/digit runs
// with single hyphens. Returns "section" when nothing survives.
func Slugify(s string) string {
	// Transformers keep state, so build a fresh chain per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	if b.Len() == 0 {
		return fallbackSlug
	}
	return b.String()
}

// TitleFromSlug turns "intro-to_loops" into "Intro To Loops".
func TitleFromSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
