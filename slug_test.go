package md2book

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "korean and latin", title: "바로 써먹는 Spring AI", want: "바로_써먹는_Spring_AI"},
		{name: "whitespace runs", title: "  Go \t in\n Practice ", want: "Go_in_Practice"},
		{name: "reserved characters", title: `A/B: C?*"`, want: "AB_C"},
		{name: "decomposed hangul is composed", title: "가", want: "가"},
		{name: "nothing usable", title: " ?/ ", want: fallbackSlug},
		{name: "leading dot trimmed", title: ".hidden", want: "hidden"},
		{name: "existing slug unchanged", title: "바로_써먹는_Spring_AI", want: "바로_써먹는_Spring_AI"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Slug(tt.title); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestDefaultPDFPath(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 10, 18, 23, 59, 0, 0, time.UTC)
	got := DefaultPDFPath("output", "바로_써먹는_Spring_AI", at)
	want := filepath.Join("output", "바로_써먹는_Spring_AI_20261018.pdf")
	if got != want {
		t.Errorf("DefaultPDFPath() = %q, want %q", got, want)
	}
}
