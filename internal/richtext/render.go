// Package richtext renders the small fixed markup grammar used in folder
// descriptions. The grammar is deliberately narrow: bold, italic, inline
// code, fenced code blocks, list items, blockquotes, and line breaks.
// It is not Markdown and must not grow toward it; stored text round-trips
// through this exact substitution set.
package richtext

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	codeBlockRe  = regexp.MustCompile("(?s)```(.*?)```")
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*\n]+)\*`)
	// These run after escaping, so ">" has already become "&gt;".
	listItemRe   = regexp.MustCompile(`(?m)^- (.+)$`)
	blockquoteRe = regexp.MustCompile(`(?m)^&gt; (.+)$`)
)

// policy allows exactly the tags this renderer produces and nothing else.
var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "em", "code", "pre", "li", "blockquote", "br")
	return p
}()

// Render converts markup to a sanitized HTML fragment. Input is escaped
// before any substitution, so user text can never inject tags; the final
// sanitizer pass is a second fence around the allowed element set.
func Render(markup string) string {
	if markup == "" {
		return ""
	}

	out := html.EscapeString(markup)

	// Order matters: fenced blocks first so their contents are not eaten by
	// the inline rules, block-level line rules before newlines collapse to
	// <br>.
	out = codeBlockRe.ReplaceAllString(out, "<pre><code>$1</code></pre>")
	out = inlineCodeRe.ReplaceAllString(out, "<code>$1</code>")
	out = boldRe.ReplaceAllString(out, "<strong>$1</strong>")
	out = italicRe.ReplaceAllString(out, "<em>$1</em>")
	out = listItemRe.ReplaceAllString(out, "<li>$1</li>")
	out = blockquoteRe.ReplaceAllString(out, "<blockquote>$1</blockquote>")
	out = strings.ReplaceAll(out, "\n", "<br>")

	return policy.Sanitize(out)
}
