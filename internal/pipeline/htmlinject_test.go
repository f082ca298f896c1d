package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestSanitizeCSS - Style block escape
// ---------------------------------------------------------------------------

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain rule", input: "body { color: red; }", want: "body { color: red; }"},
		{name: "style close", input: "</style>", want: `<\/style>`},
		{name: "upper case close", input: "</STYLE>", want: `<\/STYLE>`},
		{name: "repeated", input: "</a></b>", want: `<\/a><\/b>`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.want {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInjectStyle - Placement of the style block
// ---------------------------------------------------------------------------

func TestInjectStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		css  string
		want string
	}{
		{
			name: "empty CSS returns document unchanged",
			doc:  "<html><head></head><body>x</body></html>",
			css:  "",
			want: "<html><head></head><body>x</body></html>",
		},
		{
			name: "before closing head",
			doc:  "<html><head><title>t</title></head><body>x</body></html>",
			css:  "p{}",
			want: "<html><head><title>t</title><style>p{}</style></head><body>x</body></html>",
		},
		{
			name: "mixed case head",
			doc:  "<html><HEAD></HEAD><body>x</body></html>",
			css:  "p{}",
			want: "<html><HEAD><style>p{}</style></HEAD><body>x</body></html>",
		},
		{
			name: "after body with attributes",
			doc:  `<html><body class="book">x</body></html>`,
			css:  "p{}",
			want: `<html><body class="book"><style>p{}</style>x</body></html>`,
		},
		{
			name: "bare fragment",
			doc:  "<p>x</p>",
			css:  "p{}",
			want: "<style>p{}</style><p>x</p>",
		},
		{
			name: "hostile CSS stays inside the block",
			doc:  "<head></head>",
			css:  "</style><script>alert(1)</script>",
			want: `<head><style><\/style><script>alert(1)<\/script></style></head>`,
		},
		{
			name: "korean content preserved",
			doc:  "<head></head><body>목차</body>",
			css:  `@page toc { @top-center { content: "목차"; } }`,
			want: `<head><style>@page toc { @top-center { content: "목차"; } }</style></head><body>목차</body>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := (CSSInjection{}).InjectStyle(tt.doc, tt.css); got != tt.want {
				t.Errorf("InjectStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}
