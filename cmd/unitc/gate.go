package main

import (
	"fmt"

	unitc "github.com/alnah/go-unitc"
	"github.com/alnah/go-unitc/internal/config"
)

// gate holds the ship thresholds. Negative max values disable that check.
type gate struct {
	minOverall   float64
	minDimension float64
	maxErrors    int
	maxWarnings  int
}

// gateFromConfig starts from the config's thresholds and applies any flag
// the user set explicitly.
func gateFromConfig(cfg config.GateConfig, f gateFlags, changed func(string) bool) gate {
	g := gate{
		minOverall:   cfg.MinOverall,
		minDimension: cfg.MinDimension,
		maxErrors:    cfg.MaxErrors,
		maxWarnings:  cfg.MaxWarnings,
	}
	if changed("min-overall") {
		g.minOverall = f.minOverall
	}
	if changed("min-dimension") {
		g.minDimension = f.minDimension
	}
	if changed("max-errors") {
		g.maxErrors = f.maxErrors
	}
	if changed("max-warnings") {
		g.maxWarnings = f.maxWarnings
	}
	return g
}

// evaluate returns one message per failed threshold, in a fixed order.
func (g gate) evaluate(sc *unitc.ScoreReport, v *unitc.ValidationReport) []string {
	var failures []string

	if v != nil {
		if g.maxErrors >= 0 && len(v.Errors) > g.maxErrors {
			failures = append(failures, fmt.Sprintf("%d guardrail errors (max %d)", len(v.Errors), g.maxErrors))
		}
		if g.maxWarnings >= 0 && len(v.Warnings) > g.maxWarnings {
			failures = append(failures, fmt.Sprintf("%d warnings (max %d)", len(v.Warnings), g.maxWarnings))
		}
	}

	if sc != nil {
		if sc.Overall < g.minOverall {
			failures = append(failures, fmt.Sprintf("overall score %.2f below %.2f", sc.Overall, g.minOverall))
		}
		for _, d := range sc.Dimensions.List() {
			if d.Score < g.minDimension {
				failures = append(failures, fmt.Sprintf("%s score %.2f below %.2f", d.Name, d.Score, g.minDimension))
			}
		}
	}

	return failures
}
