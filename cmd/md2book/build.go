package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"

	md2book "github.com/alnah/go-md2book"
	"github.com/alnah/go-md2book/internal/assets"
	"github.com/alnah/go-md2book/internal/config"
	"github.com/alnah/go-md2book/internal/fileutil"
	"github.com/alnah/go-md2book/internal/hints"
)

// bannerWidth is the width of the rule printed around the book title.
const bannerWidth = 50

// runBuild runs one build: renderer preflight, book file, build, report.
// The renderer is checked before any file is read or written.
func runBuild(ctx context.Context, opts *cliOptions, env *Environment) error {
	warnUnknownEnvVars(env.Stderr, env.Environ())

	envCfg, err := loadEnvConfig(env.Getenv)
	if err != nil {
		return err
	}

	if _, err := md2book.CheckRenderer(env.LookPath); err != nil {
		return withHint(err, hints.ForMissingRenderer(runtime.GOOS))
	}

	root := envCfg.Root
	if root == "" {
		if root, err = env.Getwd(); err != nil {
			return fmt.Errorf("resolving project root: %w", err)
		}
	}

	cfg, source, err := loadBookConfig(root, envCfg.ConfigPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return withHint(err, hints.ForConfigNotFound())
	}
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	book := bookFromConfig(cfg, root)
	builder, err := md2book.NewBuilder(book, builderOptions(cfg, envCfg, root, env)...)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return withHint(err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().ListStyles()))
		}
		return err
	}
	defer func() { _ = builder.Close() }()

	printBanner(env.Stderr, book.Metadata.Title, source)

	res, err := builder.Render(ctx, opts.output)
	if err != nil {
		return withHint(err, hintForRender(err, book.ChapterDir))
	}

	fmt.Fprintf(env.Stdout, "PDF created: %s (%s)\n", res.PDFPath, humanize.Bytes(uint64(res.PDFSize))) // #nosec G115 -- size is never negative
	return nil
}

// loadBookConfig loads the book file named by MD2BOOK_CONFIG, else the one
// found in root, else the built-in book. source names where it came from.
func loadBookConfig(root, explicit string) (cfg *config.Config, source string, err error) {
	if explicit != "" {
		path := config.Resolve(root, explicit)
		cfg, err := config.LoadConfig(path)
		return cfg, path, err
	}

	path, err := config.FindConfig(root)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), "built-in defaults", nil
	}
	if err != nil {
		return nil, "", err
	}
	cfg, err = config.LoadConfig(path)
	return cfg, path, err
}

// bookFromConfig maps the book file onto the library's Book, resolving
// paths against root.
func bookFromConfig(cfg *config.Config, root string) md2book.Book {
	return md2book.Book{
		Metadata: md2book.Metadata{
			Title:     cfg.Book.Title,
			Subtitle:  cfg.Book.Subtitle,
			Author:    cfg.Book.Author,
			Publisher: cfg.Book.Publisher,
			Year:      cfg.Book.Year,
			Version:   cfg.Book.Version,
		},
		Manifest:            md2book.Manifest(cfg.Chapters),
		Titles:              cfg.Titles,
		ChapterDir:          config.Resolve(root, cfg.Paths.Chapters),
		ImageDir:            config.Resolve(root, cfg.Paths.Images),
		OutputDir:           config.Resolve(root, cfg.Paths.Output),
		CoverImage:          cfg.Paths.CoverImage,
		DebugFileName:       cfg.Output.DebugFile,
		Slug:                cfg.Output.Slug,
		Lang:                cfg.Lang,
		CopyrightDateFormat: cfg.Copyright.DateFormat,
	}
}

// builderOptions translates config and environment into builder options.
func builderOptions(cfg *config.Config, envCfg *envConfig, root string, env *Environment) []md2book.Option {
	style := cfg.Style
	if fileutil.IsFilePath(style) {
		style = config.Resolve(root, style)
	}

	opts := []md2book.Option{
		md2book.WithProgress(env.Stderr),
		md2book.WithNow(env.Now),
		md2book.WithTimeout(envCfg.Timeout),
		md2book.WithStyle(style),
		md2book.WithTemplateSet(cfg.Templates),
	}
	if dir := config.Resolve(root, cfg.Paths.Assets); fileutil.DirExists(dir) {
		opts = append(opts, md2book.WithAssetPath(dir))
	}
	if env.Paginator != nil {
		opts = append(opts, md2book.WithPaginator(env.Paginator))
	}
	return opts
}

// hintForRender picks the hint matching a Render failure.
func hintForRender(err error, chapterDir string) string {
	switch {
	case errors.Is(err, md2book.ErrNoChapters):
		return hints.ForNoChapters(chapterDir)
	case errors.Is(err, md2book.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, md2book.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// withHint appends hint to the error text, keeping err in the chain.
func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// printBanner prints the title of the book being built and its book file.
func printBanner(w io.Writer, title, source string) {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "book file: %s\n", source)
}
