package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/alnah/go-md2book/internal/config"
)

// envPrefix starts every variable read by the CLI.
const envPrefix = "MD2BOOK_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string        // MD2BOOK_CONFIG: book file path
	Root       string        // MD2BOOK_ROOT: project root
	Style      string        // MD2BOOK_STYLE: style name or CSS path
	Timeout    time.Duration // MD2BOOK_TIMEOUT: render timeout
}

// knownEnvVars lists valid MD2BOOK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2BOOK_CONFIG":  true,
	"MD2BOOK_ROOT":    true,
	"MD2BOOK_STYLE":   true,
	"MD2BOOK_TIMEOUT": true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable or non-positive timeout is an error rather than ignored.
func loadEnvConfig(getenv func(string) string) (*envConfig, error) {
	cfg := &envConfig{
		ConfigPath: getenv("MD2BOOK_CONFIG"),
		Root:       getenv("MD2BOOK_ROOT"),
		Style:      getenv("MD2BOOK_STYLE"),
	}

	if raw := getenv("MD2BOOK_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: MD2BOOK_TIMEOUT=%q is not a positive duration", ErrUsage, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// warnUnknownEnvVars writes a warning for each unrecognized MD2BOOK_*
// variable, in name order.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment values that override the book file.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
}
