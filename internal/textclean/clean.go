// Package textclean strips HTML-ish markup and URLs from raw corpus text.
package textclean

import (
	"regexp"
	"strings"
)

var (
	tagRe = regexp.MustCompile(`<[^>]+>`)
	urlRe = regexp.MustCompile(`https?://\S+`)
)

// Options control the cleaning heuristics. The zero value cleans
// unconditionally.
type Options struct {
	// TagCountThreshold skips tag removal entirely when the text contains
	// fewer tag-like matches than this. Plain text can legitimately contain
	// stray < and > (code samples, comparisons); stripping those would
	// corrupt it. 0 disables the check.
	TagCountThreshold int
}

// Cleaner removes markup and URL noise from text.
type Cleaner struct {
	opts Options
}

func New(opts Options) *Cleaner {
	return &Cleaner{opts: opts}
}

// Clean strips tag-like substrings and URLs, then collapses whitespace.
// When the tag count is below the configured threshold the text is returned
// untouched.
func (c *Cleaner) Clean(text string) string {
	if c.opts.TagCountThreshold > 0 {
		if len(tagRe.FindAllStringIndex(text, c.opts.TagCountThreshold)) < c.opts.TagCountThreshold {
			return text
		}
	}
	clean := tagRe.ReplaceAllString(text, "")
	clean = urlRe.ReplaceAllString(clean, "")
	clean = strings.Join(strings.Fields(clean), " ")
	return strings.TrimSpace(clean)
}
