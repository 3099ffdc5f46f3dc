package resources

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-unitc/internal/unit"
)

// ---------------------------------------------------------------------------
// TestParseFlashcards - tabular parsing
// ---------------------------------------------------------------------------

func TestParseFlashcards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []unit.Flashcard
	}{
		{
			name:  "single row",
			input: "front,back,tag\nQ1,A1,core\n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "Q1", Back: "A1", Tag: "core"}},
		},
		{
			name:  "whitespace trimmed",
			input: "front,back,tag\n  Q1 ,  A1  , core \n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "Q1", Back: "A1", Tag: "core"}},
		},
		{
			name:  "rows without front or back dropped and ids renumbered",
			input: "front,back,tag\n,A0,x\nQ1,A1,\nQ2,,y\nQ3,A3,z\n",
			want: []unit.Flashcard{
				{ID: "card-1", Front: "Q1", Back: "A1"},
				{ID: "card-2", Front: "Q3", Back: "A3", Tag: "z"},
			},
		},
		{
			name:  "header case and order",
			input: "Tag,BACK,Front\ncore,A1,Q1\n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "Q1", Back: "A1", Tag: "core"}},
		},
		{
			name:  "tag column optional",
			input: "front,back\nQ1,A1\n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "Q1", Back: "A1"}},
		},
		{
			name:  "byte order mark",
			input: "\xEF\xBB\xBFfront,back,tag\nQ1,A1,core\n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "Q1", Back: "A1", Tag: "core"}},
		},
		{
			name:  "quoted commas",
			input: "front,back,tag\n\"What, exactly?\",\"This, that\",x\n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "What, exactly?", Back: "This, that", Tag: "x"}},
		},
		{
			name:  "short rows tolerated",
			input: "front,back,tag\nQ1\nQ2,A2\n",
			want:  []unit.Flashcard{{ID: "card-1", Front: "Q2", Back: "A2"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "header only",
			input: "front,back,tag\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFlashcards(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseFlashcards() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFlashcards() = %+v, want %+v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("card %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseFlashcards_BadHeader(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"question,answer\nQ,A\n", "front,tag\nQ,x\n"} {
		_, err := ParseFlashcards(strings.NewReader(input))
		if !errors.Is(err, ErrFlashcardHeader) {
			t.Errorf("ParseFlashcards(%q) error = %v, want ErrFlashcardHeader", input, err)
		}
	}
}

func TestParseFlashcards_TooLarge(t *testing.T) {
	t.Parallel()

	input := "front,back\n" + strings.Repeat("q,a\n", MaxFlashcardSize/4+1)
	_, err := ParseFlashcards(strings.NewReader(input))
	if !errors.Is(err, ErrFlashcardTooLarge) {
		t.Errorf("error = %v, want ErrFlashcardTooLarge", err)
	}
}

func TestParseFlashcards_Idempotent(t *testing.T) {
	t.Parallel()

	input := "front,back,tag\nQ1,A1,a\nQ2,A2,b\n,skip,c\nQ3,A3,\n"
	first, err := ParseFlashcards(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseFlashcards(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("card %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadFlashcards - file access
// ---------------------------------------------------------------------------

func TestLoadFlashcards(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "flashcards.csv")
	if err := os.WriteFile(path, []byte("front,back,tag\nQ1,A1,core\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFlashcards(path)
	if err != nil {
		t.Fatalf("LoadFlashcards() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "card-1" {
		t.Errorf("LoadFlashcards() = %+v", got)
	}
}

func TestLoadFlashcards_Missing(t *testing.T) {
	t.Parallel()

	got, err := LoadFlashcards(filepath.Join(t.TempDir(), "none.csv"))
	if err != nil {
		t.Errorf("LoadFlashcards() error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Errorf("LoadFlashcards() = %v, want empty", got)
	}
}
