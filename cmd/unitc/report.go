package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	unitc "github.com/alnah/go-unitc"
	"github.com/alnah/go-unitc/internal/fileutil"
	"github.com/alnah/go-unitc/internal/yamlutil"
)

// unitSummary describes the compiled Document in reports.
type unitSummary struct {
	Course     string `json:"course" yaml:"course"`
	Unit       string `json:"unit" yaml:"unit"`
	Title      string `json:"title" yaml:"title"`
	Output     string `json:"output" yaml:"output"`
	Sections   int    `json:"sections" yaml:"sections"`
	Resources  int    `json:"resources" yaml:"resources"`
	Flashcards int    `json:"flashcards" yaml:"flashcards"`
}

// buildReport is the --report payload of the build command.
type buildReport struct {
	Unit       unitSummary             `json:"unit" yaml:"unit"`
	Validation *unitc.ValidationReport `json:"validation" yaml:"validation"`
	Score      *unitc.ScoreReport      `json:"score" yaml:"score"`
	Gate       []string                `json:"gateFailures" yaml:"gateFailures"`
}

// validateReport is the --report payload of the validate command.
type validateReport struct {
	Output     string                  `json:"output" yaml:"output"`
	Validation *unitc.ValidationReport `json:"validation" yaml:"validation"`
}

func newBuildReport(r *unitc.Result, failures []string) buildReport {
	doc := r.Document
	if failures == nil {
		failures = []string{}
	}
	return buildReport{
		Unit: unitSummary{
			Course:     doc.CourseSlug,
			Unit:       doc.UnitSlug,
			Title:      doc.Title,
			Output:     r.OutDir,
			Sections:   len(doc.Sections),
			Resources:  len(doc.Resources),
			Flashcards: len(doc.Flashcards),
		},
		Validation: r.Validation,
		Score:      r.Score,
		Gate:       failures,
	}
}

// encodeReport serializes v as JSON or YAML depending on the file extension.
func encodeReport(path string, v any) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		return yamlutil.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %q (use .json, .yaml or .yml)", ErrReportFormat, filepath.Ext(path))
	}
}

// writeReport encodes v and writes it to path.
func writeReport(path string, v any) error {
	data, err := encodeReport(path, v)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteReport, err)
	}
	return nil
}
