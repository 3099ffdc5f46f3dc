//go:build property

package dsl

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/alnah/go-unitc/internal/unit"
)

// TestParseProperties checks structural guarantees over generated documents.
func TestParseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	lineGen := gen.OneGenOf(
		gen.AlphaString().Map(func(s string) string { return "## " + s }),
		gen.AlphaString().Map(func(s string) string { return "### " + s }),
		gen.OneConstOf(":::info", ":::warning", ":::example", ":::accordion", ":::", "```", ""),
		gen.AlphaString().Map(func(s string) string { return "- " + s + ": body" }),
		gen.AlphaString(),
	)

	properties.Property("ids are unique and nav resolves", prop.ForAll(
		func(lines []string) bool {
			content := Parse(strings.Join(lines, "\n"), nil)
			if len(content.Sections) == 0 {
				return false
			}

			seen := unit.IDSet{}
			for _, s := range content.Sections {
				if s.ID == "" || seen.Has(s.ID) || len(s.Blocks) == 0 && len(content.Sections) > 1 {
					return false
				}
				seen[s.ID] = struct{}{}
				for _, b := range s.Blocks {
					switch v := b.(type) {
					case unit.Subheading:
						if seen.Has(v.ID) {
							return false
						}
						seen[v.ID] = struct{}{}
					case unit.Accordion:
						if len(v.Items) == 0 || seen.Has(v.ID) {
							return false
						}
						seen[v.ID] = struct{}{}
					}
				}
			}

			for _, e := range content.Nav {
				if !seen.Has(e.ID) {
					return false
				}
				if e.Depth != unit.DepthSection && e.Depth != unit.DepthSubheading {
					return false
				}
			}
			return true
		},
		gen.SliceOf(lineGen),
	))

	properties.Property("parse is deterministic", prop.ForAll(
		func(lines []string) bool {
			text := strings.Join(lines, "\n")
			a, b := Parse(text, nil), Parse(text, nil)
			if len(a.Nav) != len(b.Nav) {
				return false
			}
			for i := range a.Nav {
				if a.Nav[i] != b.Nav[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(lineGen),
	))

	properties.TestingRun(t)
}
