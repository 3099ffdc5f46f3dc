// Package assets provides the stylesheet, runtime script and page template
// of a compiled unit, and writes the built assets into an output directory.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    EmbeddedLoader    loads from the go:embed filesystem (defaults)
//	    FilesystemLoader  loads from a custom directory on disk
//	    AssetResolver     combines both with custom-first fallback
//
// AssetResolver is the loader used by the compiler. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a course can override the stylesheet and keep the rest.
//
// # Directory Structure
//
//	{basePath}/
//	    styles/{name}.css
//	    scripts/{name}.js
//	    templates/{name}.html
//
// # Build
//
// Builder writes assets/unit.css (base style plus generated syntax
// highlighting classes) and assets/runtime.js. The emitted paths are the
// same for preview and export so both modes produce identical files.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
