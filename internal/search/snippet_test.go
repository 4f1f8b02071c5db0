package search

import (
	"strings"
	"testing"
)

func TestExtractSnippet(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		query    string
		expected string
	}{
		{
			name:     "short text returns full text with highlight and no ellipses",
			text:     "The quick brown fox jumps over the lazy dog",
			query:    "fox",
			expected: "The quick brown <mark>fox</mark> jumps over the lazy dog",
		},
		{
			name:     "match is case-insensitive, original casing preserved",
			text:     "The quick brown FOX jumps over the lazy dog",
			query:    "fox",
			expected: "The quick brown <mark>FOX</mark> jumps over the lazy dog",
		},
		{
			name:     "repeated occurrences all highlighted left to right",
			text:     "fox and Fox and fOx",
			query:    "fox",
			expected: "<mark>fox</mark> and <mark>Fox</mark> and <mark>fOx</mark>",
		},
		{
			name:  "deep match truncates both sides",
			text:  strings.Repeat("a", 150) + "fox" + strings.Repeat("b", 147),
			query: "fox",
			// window [120, 223] out of 300: both edges cut
			expected: "..." + strings.Repeat("a", 30) + "<mark>fox</mark>" + strings.Repeat("b", 70) + "...",
		},
		{
			name:  "match at end truncates left side only",
			text:  strings.Repeat("a", 150) + "fox" + strings.Repeat("b", 47),
			query: "fox",
			// window end clamps to len(text): full right side kept, no trailing ellipsis
			expected: "..." + strings.Repeat("a", 30) + "<mark>fox</mark>" + strings.Repeat("b", 47),
		},
		{
			name:     "absent query falls back to plain head without highlight",
			text:     "short text without the term",
			query:    "zebra",
			expected: "short text without the term",
		},
		{
			name:     "absent query truncates long text at 100 characters",
			text:     strings.Repeat("x", 150),
			query:    "zebra",
			expected: strings.Repeat("x", 100) + "...",
		},
		{
			name:     "text is html-escaped",
			text:     "a <b> tag near fox & more",
			query:    "fox",
			expected: "a &lt;b&gt; tag near <mark>fox</mark> &amp; more",
		},
		{
			name:     "empty text yields empty snippet",
			text:     "",
			query:    "fox",
			expected: "",
		},
		{
			name:     "rune before the match grows when lowercased",
			text:     "Ⱥfox",
			query:    "fox",
			expected: "Ⱥ<mark>fox</mark>",
		},
		{
			name:     "matched span shrinks when lowercased",
			text:     "the KELVIN scale", // Kelvin sign U+212A, 3 bytes to its 1-byte lowercase
			query:    "kelvin",
			expected: "the <mark>KELVIN</mark> scale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSnippet(tt.text, tt.query)
			if got != tt.expected {
				t.Errorf("ExtractSnippet() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExtractSnippetWindowBounds(t *testing.T) {
	// Match at byte 150 of a 200-byte string: 30 bytes of context fit on the
	// left (cut, leading ellipsis), the right side runs to the end (no
	// trailing ellipsis).
	text := strings.Repeat("a", 150) + "fox" + strings.Repeat("b", 47)
	got := ExtractSnippet(text, "fox")

	if !strings.HasPrefix(got, "...") {
		t.Errorf("expected leading ellipsis, got %q", got)
	}
	if strings.HasSuffix(got, "...") {
		t.Errorf("expected no trailing ellipsis when window reaches end of text, got %q", got)
	}
	if !strings.Contains(got, "<mark>fox</mark>") {
		t.Errorf("expected highlighted match, got %q", got)
	}
}
