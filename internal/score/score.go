package score

import (
	"math"

	"github.com/alnah/go-unitc/internal/guardrail"
	"github.com/alnah/go-unitc/internal/unit"
)

// Verdict is the coarse ship recommendation.
type Verdict string

// Verdicts.
const (
	VerdictShipReady   Verdict = "Ship Ready"
	VerdictConditional Verdict = "Conditional"
	VerdictNotReady    Verdict = "Not Ready"
)

// Dimension names, in report order.
const (
	DimObjectives  = "objectives"
	DimStructure   = "structure"
	DimScaffolding = "scaffolding"
	DimEngagement  = "engagement"
	DimAssessment  = "assessment"
	DimCompliance  = "compliance"
)

// recommendationThreshold gates one advisory per weak dimension.
const recommendationThreshold = 3.0

var recommendations = map[string]string{
	DimObjectives:  "Add three to seven measurable learning objectives to unit.yaml.",
	DimStructure:   "Split the content into more titled sections with ## headings.",
	DimScaffolding: "Give most sections a callout or accordion to scaffold the reading.",
	DimEngagement:  "Add interactive elements such as accordions or flashcards, and mix more than one kind.",
	DimAssessment:  "Add knowledge checks: example callouts, accordions or flashcards.",
	DimCompliance:  "Fix guardrail errors and warnings and keep the page header, navigation and section cards.",
}

// Dimensions holds the six 0-5 ratings.
type Dimensions struct {
	Objectives  float64 `json:"objectives" yaml:"objectives"`
	Structure   float64 `json:"structure" yaml:"structure"`
	Scaffolding float64 `json:"scaffolding" yaml:"scaffolding"`
	Engagement  float64 `json:"engagement" yaml:"engagement"`
	Assessment  float64 `json:"assessment" yaml:"assessment"`
	Compliance  float64 `json:"compliance" yaml:"compliance"`
}

// Dimension is one named rating.
type Dimension struct {
	Name  string
	Score float64
}

// List returns the ratings in report order.
func (d Dimensions) List() []Dimension {
	return []Dimension{
		{DimObjectives, d.Objectives},
		{DimStructure, d.Structure},
		{DimScaffolding, d.Scaffolding},
		{DimEngagement, d.Engagement},
		{DimAssessment, d.Assessment},
		{DimCompliance, d.Compliance},
	}
}

// Interactions are the counts reported alongside the score.
type Interactions struct {
	Callouts           int `json:"callouts" yaml:"callouts"`
	Accordions         int `json:"accordions" yaml:"accordions"`
	Flashcards         int `json:"flashcards" yaml:"flashcards"`
	Resources          int `json:"resources" yaml:"resources"`
	InteractiveMarkers int `json:"interactiveMarkers" yaml:"interactiveMarkers"`
}

// Report is the full scoring result.
type Report struct {
	Overall           float64          `json:"overall" yaml:"overall"`
	MinDimensionScore float64          `json:"minDimensionScore" yaml:"minDimensionScore"`
	Verdict           Verdict          `json:"verdict" yaml:"verdict"`
	Dimensions        Dimensions       `json:"dimensions" yaml:"dimensions"`
	Recommendations   []string         `json:"recommendations" yaml:"recommendations"`
	Interactions      Interactions     `json:"interactions" yaml:"interactions"`
	Validation        guardrail.Report `json:"validation" yaml:"validation"`
}

// Score rates a rendered unit. The same arguments always give the same
// Report.
func Score(doc *unit.Document, markup string, validation *guardrail.Report) *Report {
	return FromSignals(Collect(doc, markup, validation), validation)
}

// FromSignals rates precomputed Signals. validation is copied into the
// Report and may be nil.
func FromSignals(s Signals, validation *guardrail.Report) *Report {
	dims := Dimensions{
		Objectives:  round2(ObjectivesScore(s.Objectives)),
		Structure:   round2(StructureScore(s.Sections)),
		Scaffolding: round2(ScaffoldingScore(s.Callouts+s.Accordions, s.Sections)),
		Engagement:  round2(EngagementScore(s.InteractiveMarkers, s.InteractionKinds())),
		Assessment:  round2(AssessmentScore(s.ExampleCallouts + s.Accordions + s.Flashcards)),
		Compliance:  round2(ComplianceScore(s.Errors, s.Warnings, s.MissingMarkers(), s.HasLang)),
	}

	list := dims.List()
	sum, lowest := 0.0, math.Inf(1)
	recs := []string{}
	for _, d := range list {
		sum += d.Score
		lowest = math.Min(lowest, d.Score)
		if d.Score < recommendationThreshold {
			recs = append(recs, recommendations[d.Name])
		}
	}
	overall := round2(sum / float64(len(list)))

	report := &Report{
		Overall:           overall,
		MinDimensionScore: lowest,
		Verdict:           verdictFor(overall, lowest),
		Dimensions:        dims,
		Recommendations:   recs,
		Interactions: Interactions{
			Callouts:           s.Callouts,
			Accordions:         s.Accordions,
			Flashcards:         s.Flashcards,
			Resources:          s.Resources,
			InteractiveMarkers: s.InteractiveMarkers,
		},
		Validation: guardrail.Report{Errors: []string{}, Warnings: []string{}},
	}
	if validation != nil {
		report.Validation.Errors = append(report.Validation.Errors, validation.Errors...)
		report.Validation.Warnings = append(report.Validation.Warnings, validation.Warnings...)
	}
	return report
}

func verdictFor(overall, lowest float64) Verdict {
	switch {
	case lowest >= 3 && overall >= 4:
		return VerdictShipReady
	case lowest >= 2 && overall >= 3:
		return VerdictConditional
	default:
		return VerdictNotReady
	}
}
