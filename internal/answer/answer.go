// Package answer builds a canned, keyword-conditioned response from
// retrieved text. No language model is involved: this is filtering plus
// templating, and it must always produce something.
package answer

import (
	"strings"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/textclean"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/util"
)

// Options control which lines of the retrieved text count as meaningful.
type Options struct {
	// MinLineLength is the minimum character length of a meaningful line
	MinLineLength int

	// MinWordCount requires more than this many words per line; 0 disables
	MinWordCount int

	// MinMeaningfulLines is the count below which the templater falls back
	// to a raw prefix of the cleaned text
	MinMeaningfulLines int

	// MaxLines caps how many meaningful lines are joined into the candidate
	MaxLines int

	// FallbackLength is how much cleaned text the fallback keeps
	FallbackLength int
}

// PresetA is the looser heuristic set: short lines pass, but single-word
// noise (menu items, badges) is filtered by word count.
func PresetA() Options {
	return Options{MinLineLength: 10, MinWordCount: 3, MinMeaningfulLines: 1, MaxLines: 5, FallbackLength: 500}
}

// PresetB trades the word-count filter for a longer minimum line and
// requires at least two surviving lines before trusting them.
func PresetB() Options {
	return Options{MinLineLength: 20, MinWordCount: 0, MinMeaningfulLines: 2, MaxLines: 5, FallbackLength: 500}
}

// questionTemplate maps question keywords to a truncation length and a
// trailing marker. Evaluated in order; first match wins.
type questionTemplate struct {
	keywords []string
	limit    int
	suffix   string
}

var templates = []questionTemplate{
	{[]string{"nedir", "ne demek"}, 400, "... [Devamı için detaylı sonuçlara bakın]"},
	{[]string{"nasıl", "yapılır", "kurulur"}, 450, "... [Adımlar için detaylı sonuçları inceleyin]"},
	{[]string{"ne işe yarar", "kullanım"}, 400, "... [Kullanım detayları için yukarıdaki sonuçlara bakın]"},
	{[]string{"bileşen", "component"}, 380, "... [Bileşen listesi için detaylı sonuçları görün]"},
	{[]string{"rag"}, 350, "... [RAG mimarisi detayları için sonuçlara bakın]"},
	{[]string{"hangi dillerde", "dil desteği"}, 400, "... [Dil desteği detayları için sonuçlara bakın]"},
}

var defaultTemplate = questionTemplate{nil, 500, "... [Detaylı bilgi için yukarıdaki sonuçları okuyun]"}

// Templater synthesizes responses from retrieved chunks.
type Templater struct {
	cleaner *textclean.Cleaner
	opts    Options
}

func New(cleaner *textclean.Cleaner, opts Options) *Templater {
	if opts.MaxLines <= 0 {
		opts.MaxLines = 5
	}
	if opts.FallbackLength <= 0 {
		opts.FallbackLength = 500
	}
	return &Templater{cleaner: cleaner, opts: opts}
}

// Synthesize assembles a response from the retrieved chunks and the
// question. It never fails: any internal fault degrades to a truncated
// prefix of the cleaned input.
func (t *Templater) Synthesize(chunks []model.Chunk, question string) (out string) {
	var cleaned string
	defer func() {
		if r := recover(); r != nil {
			out = util.TruncateRunes(cleaned, 400)
			if out == "" {
				out = defaultTemplate.suffix
			}
		}
	}()

	parts := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		parts = append(parts, ch.Text)
	}
	cleaned = t.cleaner.Clean(strings.Join(parts, "\n"))

	candidate := t.meaningfulText(cleaned)
	tpl := classify(question)
	return util.TruncateRunes(candidate, tpl.limit) + tpl.suffix
}

// meaningfulText filters the cleaned context down to lines worth quoting
// and joins the first few of them. When too few survive, the raw cleaned
// prefix is used verbatim.
func (t *Templater) meaningfulText(cleaned string) string {
	var meaningful []string
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < t.opts.MinLineLength {
			continue
		}
		if strings.HasPrefix(line, "http") {
			continue
		}
		if strings.Contains(strings.ToLower(line), "badge") {
			continue
		}
		if t.opts.MinWordCount > 0 && len(strings.Fields(line)) <= t.opts.MinWordCount {
			continue
		}
		meaningful = append(meaningful, line)
	}

	if len(meaningful) < t.opts.MinMeaningfulLines {
		return util.TruncateRunes(cleaned, t.opts.FallbackLength)
	}
	if len(meaningful) > t.opts.MaxLines {
		meaningful = meaningful[:t.opts.MaxLines]
	}
	return strings.Join(meaningful, " ")
}

// classify picks the response template by case-insensitive keyword match,
// in fixed priority order.
func classify(question string) questionTemplate {
	q := strings.ToLower(question)
	for _, tpl := range templates {
		for _, kw := range tpl.keywords {
			if strings.Contains(q, kw) {
				return tpl
			}
		}
	}
	return defaultTemplate
}
