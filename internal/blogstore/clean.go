package blogstore

import (
	"regexp"
	"strings"
)

var (
	styleAttrRe   = regexp.MustCompile(`(?i)\s+style\s*=\s*("[^"]*"|'[^']*')`)
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	extraBlanksRe = regexp.MustCompile(`\n{3,}`)
)

// CleanContent normalizes pasted rich-text content into plain text. Running it
// on already-clean content returns the input unchanged, so stored posts can be
// cleaned again on every save without drifting.
func CleanContent(content string) string {
	// Removing a tag or entity can splice the surrounding text into a new
	// strippable pattern (`style<b>="x"` becomes `style="x"`), so the
	// substitutions run to a fixpoint. Every pass shrinks the text, so the
	// loop terminates.
	cleaned := content
	for {
		next := styleAttrRe.ReplaceAllString(cleaned, "")
		next = htmlTagRe.ReplaceAllString(next, "")
		next = strings.ReplaceAll(next, "&nbsp;", " ")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	cleaned = extraBlanksRe.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
