// Package assets provides CSS stylesheets for standalone HTML export.
//
// The package implements a layered loading system:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── StyleResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in stylesheets compiled into the binary.
// FilesystemLoader lets users supply their own stylesheets from a directory,
// with path traversal protection and symlink resolution. StyleResolver is
// the loader used by the exporter: it tries the custom directory first and
// falls back to the embedded set when a style is not found there, so users
// can override individual styles while keeping the defaults.
//
// Custom directories use the layout {basePath}/styles/{name}.css.
package assets
