// Package unitc compiles authored course units into self-contained HTML
// artifacts and reports how ready they are to ship.
//
// # Quick Start
//
// Create a compiler and compile a unit directory:
//
//	c, err := unitc.NewCompiler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := c.Compile(ctx, unitc.Input{
//	    UnitDir: "units/goroutines",
//	    OutDir:  "dist/goroutines",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Score.Verdict)
//
// # Unit Layout
//
// A unit directory holds content.md (required), unit.yaml, flashcards.csv
// and a resources/ tree (all optional). content.md uses Markdown with
// "##" sections, "###" subheadings and ":::kind ... :::" directives for
// info, warning and example callouts and accordions.
//
// # Compilation Pipeline
//
//  1. Content preprocessing (BOM, line endings) and DSL parsing
//  2. Resource and flashcard indexing
//  3. Assembly into one Document
//  4. Asset build and page rendering into a staging directory
//  5. Guardrail validation and quality scoring of the staged output
//  6. Swap of the staging directory into the output directory
//
// A failed compile leaves the output directory untouched.
//
// # Modes
//
// Export builds are the distributable artifact. Preview builds add a
// sandbox banner marked data-sandbox-only; VerifyParity checks that the two
// modes differ only in that markup.
//
// # Configuration
//
// Use functional options to customize the compiler:
//
//	c, err := unitc.NewCompiler(
//	    unitc.WithExternalAllowlist("https://cdn.example.com/"),
//	    unitc.WithSizeBudget(2<<20, 20<<20),
//	    unitc.WithAssetPath("/path/to/theme"),
//	)
package unitc
