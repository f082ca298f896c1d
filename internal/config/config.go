// Package config loads and validates the book file (book.yaml) that
// describes one book project: metadata, chapter manifest, display titles,
// directory layout and style.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2book/internal/dateutil"
	"github.com/alnah/go-md2book/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("book file not found")
	ErrConfigParse     = errors.New("failed to parse book file")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrMissingField    = errors.New("required field missing")
	ErrInvalidManifest = errors.New("invalid chapter manifest")
)

// Field length limits.
const (
	MaxTitleLength      = 200
	MaxSubtitleLength   = 200
	MaxAuthorLength     = 100
	MaxPublisherLength  = 100
	MaxYearLength       = 10
	MaxVersionLength    = 50
	MaxChapterIDLength  = 255 // common file name limit
	MaxChapterTitle     = 200
	MaxPathLength       = 4096
	MaxManifestEntries  = 500
	MaxLangLength       = 35 // BCP 47 upper bound in practice
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// ConfigFileNames are the names searched in a project root, in order.
var ConfigFileNames = []string{"book.yaml", "book.yml"}

// Config holds the whole description of a book project.
type Config struct {
	Book      BookConfig        `yaml:"book"`
	Chapters  []string          `yaml:"chapters"`
	Titles    map[string]string `yaml:"titles"`
	Paths     PathsConfig       `yaml:"paths"`
	Style     string            `yaml:"style"`     // style name or CSS file path
	Templates string            `yaml:"templates"` // template set name
	Lang      string            `yaml:"lang"`      // <html lang>
	Copyright CopyrightConfig   `yaml:"copyright"`
	Output    OutputConfig      `yaml:"output"`
}

// BookConfig is the book metadata shown on the copyright page.
type BookConfig struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Author    string `yaml:"author"`
	Publisher string `yaml:"publisher"`
	Year      string `yaml:"year"`
	Version   string `yaml:"version"`
}

// PathsConfig locates inputs and outputs. Relative paths are resolved
// against the project root.
type PathsConfig struct {
	Chapters   string `yaml:"chapters"`
	Images     string `yaml:"images"`
	Output     string `yaml:"output"`
	Assets     string `yaml:"assets"`     // optional style/template overrides
	CoverImage string `yaml:"coverImage"` // file name inside Images
}

// CopyrightConfig controls the copyright page.
type CopyrightConfig struct {
	DateFormat string `yaml:"dateFormat"` // dateutil pattern or preset
}

// OutputConfig names the generated files.
type OutputConfig struct {
	Slug      string `yaml:"slug"`      // PDF name prefix; empty = derived from title
	DebugFile string `yaml:"debugFile"` // HTML dump name inside Paths.Output
}

// Structural defaults applied to fields a book file leaves empty.
const (
	DefaultChaptersDir = "chapters"
	DefaultImagesDir   = "images"
	DefaultOutputDir   = "output"
	DefaultAssetsDir   = "assets"
	DefaultCoverImage  = "book-cover.png"
	DefaultDebugFile   = "book.html"
	DefaultStyle       = "book"
	DefaultTemplates   = "default"
	DefaultLang        = "ko"
	DefaultDateFormat  = "YYYY년 MM월 DD일"
)

// DefaultConfig returns the built-in book: used when the project root has
// no book file.
func DefaultConfig() *Config {
	cfg := &Config{
		Book: BookConfig{
			Title:     "바로 써먹는 Spring AI",
			Subtitle:  "실전 AI 애플리케이션 개발 가이드",
			Author:    "황민호(Robin)",
			Publisher: "RevFactory",
			Year:      "2026",
			Version:   "최신 판",
		},
		Chapters: []string{
			"part1-foundation.md",
			"part2-prompt-engineering.md",
			"part3-function-calling.md",
			"part4-agentic-patterns.md",
			"part5-mcp.md",
		},
		Titles: map[string]string{
			"part1-foundation.md":         "Part 1: Spring AI 입문",
			"part2-prompt-engineering.md": "Part 2: 프롬프트 엔지니어링",
			"part3-function-calling.md":   "Part 3: Function Calling과 도구 통합",
			"part4-agentic-patterns.md":   "Part 4: Agentic Patterns",
			"part5-mcp.md":                "Part 5: Model Context Protocol (MCP)",
		},
		Output: OutputConfig{Slug: "바로_써먹는_Spring_AI"},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty structural fields. Metadata, manifest and
// titles are never defaulted: they belong to the book.
func (c *Config) ApplyDefaults() {
	setDefault(&c.Paths.Chapters, DefaultChaptersDir)
	setDefault(&c.Paths.Images, DefaultImagesDir)
	setDefault(&c.Paths.Output, DefaultOutputDir)
	setDefault(&c.Paths.Assets, DefaultAssetsDir)
	setDefault(&c.Paths.CoverImage, DefaultCoverImage)
	setDefault(&c.Output.DebugFile, DefaultDebugFile)
	setDefault(&c.Style, DefaultStyle)
	setDefault(&c.Templates, DefaultTemplates)
	setDefault(&c.Lang, DefaultLang)
	setDefault(&c.Copyright.DateFormat, DefaultDateFormat)
	if c.Titles == nil {
		c.Titles = map[string]string{}
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks required fields, field lengths and the manifest.
// Called by LoadConfig; available for callers that build a Config in code.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Book.Title) == "" {
		return fmt.Errorf("%w: book.title", ErrMissingField)
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"book.title", c.Book.Title, MaxTitleLength},
		{"book.subtitle", c.Book.Subtitle, MaxSubtitleLength},
		{"book.author", c.Book.Author, MaxAuthorLength},
		{"book.publisher", c.Book.Publisher, MaxPublisherLength},
		{"book.year", c.Book.Year, MaxYearLength},
		{"book.version", c.Book.Version, MaxVersionLength},
		{"paths.chapters", c.Paths.Chapters, MaxPathLength},
		{"paths.images", c.Paths.Images, MaxPathLength},
		{"paths.output", c.Paths.Output, MaxPathLength},
		{"paths.assets", c.Paths.Assets, MaxPathLength},
		{"paths.coverImage", c.Paths.CoverImage, MaxChapterIDLength},
		{"output.slug", c.Output.Slug, MaxTitleLength},
		{"output.debugFile", c.Output.DebugFile, MaxChapterIDLength},
		{"style", c.Style, MaxPathLength},
		{"lang", c.Lang, MaxLangLength},
		{"copyright.dateFormat", c.Copyright.DateFormat, MaxDateFormatLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Copyright.DateFormat != "" {
		if _, err := dateutil.Layout(c.Copyright.DateFormat); err != nil {
			return fmt.Errorf("copyright.dateFormat: %w", err)
		}
	}

	if err := validateFileName("output.debugFile", c.Output.DebugFile); err != nil {
		return err
	}

	return c.validateManifest()
}

// validateManifest checks the chapter list (non-empty, bounded, unique plain
// file names) and the length of display titles.
func (c *Config) validateManifest() error {
	if len(c.Chapters) == 0 {
		return fmt.Errorf("%w: chapters: at least one chapter is required", ErrInvalidManifest)
	}
	if len(c.Chapters) > MaxManifestEntries {
		return fmt.Errorf("%w: chapters: %d entries (max %d)", ErrInvalidManifest, len(c.Chapters), MaxManifestEntries)
	}

	seen := make(map[string]bool, len(c.Chapters))
	for i, id := range c.Chapters {
		field := fmt.Sprintf("chapters[%d]", i)
		if err := validateFieldLength(field, id, MaxChapterIDLength); err != nil {
			return err
		}
		if err := validateFileName(field, id); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidManifest, err)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s: duplicate chapter %q", ErrInvalidManifest, field, id)
		}
		seen[id] = true
	}

	for id, title := range c.Titles {
		if err := validateFieldLength("titles."+id, title, MaxChapterTitle); err != nil {
			return err
		}
	}
	return nil
}

// validateFileName rejects values that are not a bare file name. Chapter
// identifiers are joined to the chapter directory and used as element ids.
func validateFileName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s: empty name", field)
	}
	if strings.ContainsAny(name, "/\\\x00") || name == "." || name == ".." {
		return fmt.Errorf("%s: %q must be a file name without directories", field, name)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads, defaults and validates the book file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- book file path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading book file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindConfig returns the first book file present in root, trying
// ConfigFileNames in order.
func FindConfig(root string) (string, error) {
	tried := make([]string, 0, len(ConfigFileNames))
	for _, name := range ConfigFileNames {
		p := filepath.Join(root, name)
		if fileExists(p) {
			return p, nil
		}
		tried = append(tried, p)
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Resolve joins a configured path to root unless it is already absolute.
func Resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
