// Package assets provides the book style sheet and the HTML templates used to
// generate the cover, copyright page, table of contents and document shell.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in book style)
//	    ├── FilesystemLoader  - loads from a project-local directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// A book project may ship an assets/ directory next to its chapters to
// override the style or any template set; missing assets fall back to the
// embedded ones.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── cover.html
//	        ├── copyright.html
//	        ├── toc.html
//	        └── document.html
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
