//go:build bench

package dsl

import (
	"strings"
	"testing"
)

// BenchmarkParse measures the line scanner on growing units.
func BenchmarkParse(b *testing.B) {
	section := `## Section

Some paragraph text with **emphasis**.

:::info
A callout body.
:::

:::accordion
- First: Answer one.
- Second: Answer two.
:::

` + "```go\nfunc main() {}\n```\n\n"

	inputs := []struct {
		name string
		text string
	}{
		{"single_section", section},
		{"ten_sections", strings.Repeat(section, 10)},
		{"hundred_sections", strings.Repeat(section, 100)},
		{"no_headings", strings.Repeat("plain line\n", 1000)},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				content := Parse(input.text, PlainRenderer{})
				_ = content
			}
		})
	}
}
