package resources

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-unitc/internal/unit"
)

// MaxFlashcardSize bounds the flashcard table read into memory.
const MaxFlashcardSize = 1 << 20

// Column names recognised in the header row.
const (
	columnFront = "front"
	columnBack  = "back"
	columnTag   = "tag"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// LoadFlashcards reads the flashcard table at path.
// A missing file yields an empty list.
func LoadFlashcards(path string) ([]unit.Flashcard, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path) // #nosec G304 -- path comes from the unit directory
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening flashcards: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseFlashcards(f)
}

// ParseFlashcards parses a front,back,tag table. The header is matched
// case-insensitively and may list the columns in any order; tag is
// optional. Rows with an empty front or back are dropped and ids are
// numbered over the kept rows. Empty input yields no cards.
func ParseFlashcards(r io.Reader) ([]unit.Flashcard, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFlashcardSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading flashcards: %w", err)
	}
	if len(data) > MaxFlashcardSize {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFlashcardTooLarge, MaxFlashcardSize)
	}
	data = bytes.TrimPrefix(data, byteOrderMark)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFlashcardFormat, err)
	}

	cols, err := headerColumns(header)
	if err != nil {
		return nil, err
	}

	var cards []unit.Flashcard
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFlashcardFormat, err)
		}

		front := field(record, cols.front)
		back := field(record, cols.back)
		if front == "" || back == "" {
			continue
		}
		cards = append(cards, unit.Flashcard{
			ID:    "card-" + strconv.Itoa(len(cards)+1),
			Front: front,
			Back:  back,
			Tag:   field(record, cols.tag),
		})
	}
	return cards, nil
}

// columns holds header positions; -1 means absent.
type columns struct {
	front, back, tag int
}

func headerColumns(header []string) (columns, error) {
	cols := columns{front: -1, back: -1, tag: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case columnFront:
			if cols.front < 0 {
				cols.front = i
			}
		case columnBack:
			if cols.back < 0 {
				cols.back = i
			}
		case columnTag:
			if cols.tag < 0 {
				cols.tag = i
			}
		}
	}
	if cols.front < 0 || cols.back < 0 {
		return cols, fmt.Errorf("%w: got %q", ErrFlashcardHeader, strings.Join(header, ","))
	}
	return cols, nil
}

// field returns the trimmed cell at i, or "" when the row is short.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
