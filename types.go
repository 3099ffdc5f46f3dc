package unitc

import (
	"github.com/alnah/go-unitc/internal/assets"
	"github.com/alnah/go-unitc/internal/guardrail"
	"github.com/alnah/go-unitc/internal/parity"
	"github.com/alnah/go-unitc/internal/score"
	"github.com/alnah/go-unitc/internal/unit"
)

// Mode selects the build entry point.
type Mode = assets.Mode

// Build modes.
const (
	ModePreview = assets.ModePreview
	ModeExport  = assets.ModeExport
)

// Document is the assembled, in-memory unit.
type Document = unit.Document

// ValidationReport lists guardrail errors and size warnings.
type ValidationReport = guardrail.Report

// ScoreReport is the quality rubric outcome.
type ScoreReport = score.Report

// ParityReport lists the files that differ between preview and export.
type ParityReport = parity.Diff

// Input describes one compile run.
type Input struct {
	UnitDir    string // required; directory holding content.md
	CourseSlug string // defaults to the base name of UnitDir's parent
	OutDir     string // defaults to <UnitDir>/dist
	Mode       Mode   // defaults to ModeExport
}

// Result is the outcome of a successful compile.
type Result struct {
	OutDir     string
	Document   *Document
	Validation *ValidationReport
	Score      *ScoreReport
}

// Source files looked up in a unit directory.
const (
	ContentFile    = "content.md"
	MetadataFile   = "unit.yaml"
	FlashcardsFile = "flashcards.csv"
	ResourcesDir   = "resources"
	IndexFile      = "index.html"
	DefaultOutDir  = "dist"
)
