package unit

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSlugify - title to id conversion
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Intro", "intro"},
		{"spaces", "Getting Started", "getting-started"},
		{"punctuation collapses", "What's new?! (v2)", "what-s-new-v2"},
		{"diacritics fold", "Élan Vital à Paris", "elan-vital-a-paris"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"digits kept", "Step 10", "step-10"},
		{"nothing sluggable", "!!!", "section"},
		{"empty", "", "section"},
		{"non latin", "日本語", "section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUniqueID - collision suffixes
// ---------------------------------------------------------------------------

func TestUniqueID(t *testing.T) {
	t.Parallel()

	var used IDSet
	var got []string
	for _, base := range []string{"intro", "intro", "intro", "", "other"} {
		var id string
		id, used = UniqueID(base, used)
		got = append(got, id)
	}

	want := []string{"intro", "intro-2", "intro-3", "section", "other"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("id %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(used) != len(want) {
		t.Errorf("used has %d entries, want %d", len(used), len(want))
	}
}

func TestUniqueID_SkipsTakenSuffix(t *testing.T) {
	t.Parallel()

	used := IDSet{"a": {}, "a-2": {}}
	id, _ := UniqueID("a", used)
	if id != "a-3" {
		t.Errorf("UniqueID() = %q, want %q", id, "a-3")
	}
}

// ---------------------------------------------------------------------------
// TestTitleFromSlug - fallback titles
// ---------------------------------------------------------------------------

func TestTitleFromSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"intro-to_loops", "Intro To Loops"},
		{"unit1", "Unit1"},
		{"", ""},
		{"--", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := TitleFromSlug(tt.input); got != tt.want {
				t.Errorf("TitleFromSlug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReservedIDs - page-level ids
// ---------------------------------------------------------------------------

func TestReservedIDs(t *testing.T) {
	t.Parallel()

	used := ReservedIDs()
	for _, id := range []string{ObjectivesTitleID, ResourcesTitleID, FlashcardsTitleID} {
		if !used.Has(id) {
			t.Errorf("ReservedIDs() missing %q", id)
		}
		if got, _ := UniqueID(Slugify(id), ReservedIDs()); got != id+"-2" {
			t.Errorf("UniqueID(%q) = %q, want %q", id, got, id+"-2")
		}
	}

	used["extra"] = struct{}{}
	if ReservedIDs().Has("extra") {
		t.Error("ReservedIDs() shares state between calls")
	}
}

func TestSlugify_NeverProducesItemPrefixes(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"Resource -- guide", "Flashcard--card 1", "resource--x", "--flashcard--"} {
		got := Slugify(title)
		if strings.HasPrefix(got, ResourceIDPrefix) || strings.HasPrefix(got, FlashcardIDPrefix) {
			t.Errorf("Slugify(%q) = %q, collides with an item id prefix", title, got)
		}
	}
}
