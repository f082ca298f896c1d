package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"
)

// ---------------------------------------------------------------------------
// TestParseArgs - Positional output path and help
// ---------------------------------------------------------------------------

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantOutput string
		wantErr    error
	}{
		{name: "no arguments", args: nil, wantOutput: ""},
		{name: "output path", args: []string{"dist/book.pdf"}, wantOutput: "dist/book.pdf"},
		{name: "after double dash", args: []string{"--", "-odd.pdf"}, wantOutput: "-odd.pdf"},
		{name: "two paths", args: []string{"a.pdf", "b.pdf"}, wantErr: ErrUsage},
		{name: "empty path", args: []string{""}, wantErr: ErrUsage},
		{name: "unknown long flag", args: []string{"--style", "x"}, wantErr: ErrUsage},
		{name: "unknown short flag", args: []string{"-o", "x.pdf"}, wantErr: ErrUsage},
		{name: "help long", args: []string{"--help"}, wantErr: flag.ErrHelp},
		{name: "help short", args: []string{"-h"}, wantErr: flag.ErrHelp},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, err := parseArgs(tt.args, &out)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseArgs(%q) error = %v, want %v", tt.args, err, tt.wantErr)
				}
				if errors.Is(tt.wantErr, flag.ErrHelp) && !strings.Contains(out.String(), "Usage: md2book") {
					t.Errorf("help did not print usage, got %q", out.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%q) unexpected error: %v", tt.args, err)
			}
			if got.output != tt.wantOutput {
				t.Errorf("output = %q, want %q", got.output, tt.wantOutput)
			}
		})
	}
}
