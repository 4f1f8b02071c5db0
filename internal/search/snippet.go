package search

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Window around the first match: up to 30 bytes of leading context and
	// 70 bytes after the end of the matched span.
	snippetContextBefore = 30
	snippetContextAfter  = 70

	// Fallback length when the query does not occur in the text at all.
	snippetMaxLength = 100
)

// ExtractSnippet returns an HTML fragment excerpting text around the first
// case-insensitive occurrence of query. The window is
// [max(0, i-30), min(len, i+matchLen+70)]; a clamped edge gets an ellipsis.
// Every occurrence of the query inside the window is wrapped in <mark>,
// non-overlapping and left to right, keeping the original casing. If the
// query is absent the first 100 characters are returned unhighlighted.
// All non-markup text is HTML-escaped.
//
// Matching folds case rune by rune, so every offset is an offset into the
// original string even when lowercasing changes a rune's byte length
// (Kelvin sign and friends).
func ExtractSnippet(text, query string) string {
	if text == "" || query == "" {
		return ""
	}

	queryRunes := []rune(strings.ToLower(query))

	i, n := indexFold(text, queryRunes, 0)
	if i < 0 {
		return truncatePlain(text, snippetMaxLength)
	}

	start := snapRuneStart(text, max(0, i-snippetContextBefore))
	end := snapRuneStart(text, min(len(text), i+n+snippetContextAfter))

	var b strings.Builder
	if start > 0 {
		b.WriteString("...")
	}
	b.WriteString(highlight(text[start:end], queryRunes))
	if end < len(text) {
		b.WriteString("...")
	}
	return b.String()
}

// highlight wraps every case-insensitive occurrence of the query in window
// with <mark>, escaping everything else.
func highlight(window string, queryRunes []rune) string {
	var b strings.Builder
	pos := 0
	for {
		hit, n := indexFold(window, queryRunes, pos)
		if hit < 0 {
			break
		}
		b.WriteString(html.EscapeString(window[pos:hit]))
		b.WriteString("<mark>")
		b.WriteString(html.EscapeString(window[hit : hit+n]))
		b.WriteString("</mark>")
		pos = hit + n
	}
	b.WriteString(html.EscapeString(window[pos:]))
	return b.String()
}

// indexFold finds the first case-insensitive occurrence of queryRunes in s at
// or after byte offset from. It returns the byte offset and byte length of
// the matched span in s, or (-1, 0). Offsets always refer to s itself, never
// to a lowered copy.
func indexFold(s string, queryRunes []rune, from int) (int, int) {
	for i := from; i < len(s); {
		if n := matchLenAt(s, i, queryRunes); n > 0 {
			return i, n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, 0
}

// matchLenAt reports the byte length of a case-folded match of queryRunes
// starting at byte offset i of s, or 0 when there is no match there.
func matchLenAt(s string, i int, queryRunes []rune) int {
	j := i
	for _, q := range queryRunes {
		if j >= len(s) {
			return 0
		}
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.ToLower(r) != q {
			return 0
		}
		j += size
	}
	return j - i
}

// truncatePlain returns the escaped head of text with a trailing ellipsis
// when something was cut off.
func truncatePlain(text string, maxLength int) string {
	if len(text) <= maxLength {
		return html.EscapeString(text)
	}
	cut := snapRuneStart(text, maxLength)
	return html.EscapeString(text[:cut]) + "..."
}

// snapRuneStart moves a byte offset left until it sits on a rune boundary,
// so window clamping never slices a multi-byte character in half.
func snapRuneStart(s string, i int) int {
	for i > 0 && i < len(s) && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}
