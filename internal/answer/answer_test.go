package answer

import (
	"strings"
	"testing"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/textclean"
)

func newTemplater(opts Options) *Templater {
	return New(textclean.New(textclean.Options{TagCountThreshold: 3}), opts)
}

func chunksOf(texts ...string) []model.Chunk {
	chunks := make([]model.Chunk, len(texts))
	for i, txt := range texts {
		chunks[i] = model.Chunk{Ordinal: i, Text: txt}
	}
	return chunks
}

func TestSynthesize_NedirTemplate(t *testing.T) {
	tp := newTemplater(PresetA())

	sentence := "LangChain uygulama geliştirme çerçevesidir."
	got := tp.Synthesize(chunksOf(sentence), "LangChain nedir?")

	if !strings.HasPrefix(got, "LangChain uygulama") {
		t.Errorf("expected answer to start with the meaningful sentence, got %q", got)
	}
	if !strings.HasSuffix(got, "[Devamı için detaylı sonuçlara bakın]") {
		t.Errorf("expected nedir suffix marker, got %q", got)
	}
}

func TestSynthesize_KeywordPriorityOrder(t *testing.T) {
	tp := newTemplater(PresetA())
	chunks := chunksOf("Kurulum adımları burada anlatılıyor detaylıca.")

	// "nedir" outranks "nasıl" even when both appear
	got := tp.Synthesize(chunks, "LangChain nedir ve nasıl kurulur?")
	if !strings.HasSuffix(got, "[Devamı için detaylı sonuçlara bakın]") {
		t.Errorf("expected first matching group to win, got %q", got)
	}

	got = tp.Synthesize(chunks, "LangChain nasıl kurulur?")
	if !strings.HasSuffix(got, "[Adımlar için detaylı sonuçları inceleyin]") {
		t.Errorf("expected nasıl template, got %q", got)
	}
}

func TestSynthesize_LanguageAvailabilityTemplate(t *testing.T) {
	tp := newTemplater(PresetA())

	got := tp.Synthesize(
		chunksOf("LangChain hem Python hem de JavaScript ekosisteminde kullanılabilir durumda."),
		"LangChain hangi dillerde kullanılabilir?",
	)
	if !strings.HasSuffix(got, "[Dil desteği detayları için sonuçlara bakın]") {
		t.Errorf("expected language availability suffix marker, got %q", got)
	}
}

func TestSynthesize_DefaultTemplate(t *testing.T) {
	tp := newTemplater(PresetA())

	got := tp.Synthesize(chunksOf("Bu metin herhangi bir anahtar kelimeyle eşleşmiyor."), "What is this project about?")
	if !strings.HasSuffix(got, "[Detaylı bilgi için yukarıdaki sonuçları okuyun]") {
		t.Errorf("expected default template for unmatched question, got %q", got)
	}
}

func TestSynthesize_FiltersNoiseLines(t *testing.T) {
	tp := newTemplater(PresetA())

	chunks := chunksOf(strings.Join([]string{
		"https://example.com/docs/intro",
		"build badge durumu yeşil gözüküyor",
		"kısa",
		"LangChain zincirleri birden fazla bileşeni birbirine bağlar.",
	}, "\n"))

	got := tp.Synthesize(chunks, "LangChain nedir?")
	if !strings.HasPrefix(got, "LangChain zincirleri") {
		t.Errorf("expected noise lines filtered out, got %q", got)
	}
	if strings.Contains(got, "badge") || strings.Contains(got, "https://") {
		t.Errorf("noise survived filtering: %q", got)
	}
}

func TestSynthesize_PresetA_WordCountFilter(t *testing.T) {
	tp := newTemplater(PresetA())

	// long enough but only three words: preset A drops such lines and falls
	// back to the raw cleaned prefix, preset B keeps them
	line := "uzunkelime uzunkelime uzunkelime"
	text := "kısa\n" + line + "\n" + line
	got := tp.Synthesize(chunksOf(text), "LangChain nedir?")
	if !strings.HasPrefix(got, "kısa\n") {
		t.Errorf("preset A should fall back to the raw prefix, got %q", got)
	}

	tpB := newTemplater(PresetB())
	got = tpB.Synthesize(chunksOf(text), "LangChain nedir?")
	if !strings.HasPrefix(got, "uzunkelime") {
		t.Errorf("preset B should keep the 3-word lines, got %q", got)
	}
}

func TestSynthesize_PresetB_FallbackBelowTwoLines(t *testing.T) {
	tp := newTemplater(PresetB())

	// a single meaningful line is below preset B's minimum of two, so the
	// raw cleaned prefix is used instead
	text := "Tek anlamlı satır burada duruyor uzunca.\nkısa"
	got := tp.Synthesize(chunksOf(text), "LangChain nedir?")
	if !strings.HasPrefix(got, "Tek anlamlı satır burada duruyor uzunca.\nkısa") {
		t.Errorf("expected verbatim fallback prefix, got %q", got)
	}
}

func TestSynthesize_TruncationLengths(t *testing.T) {
	long := strings.Repeat("çokuzun kelimeler burada akıyor ", 40) // ~1280 chars, one line
	cases := []struct {
		question string
		limit    int
	}{
		{"LangChain nedir?", 400},
		{"LangChain nasıl kurulur?", 450},
		{"LangChain ne işe yarar?", 400},
		{"Temel bileşenleri nelerdir?", 380},
		{"RAG mimarisi hakkında bilgi", 350},
		{"LangChain hangi dillerde kullanılabilir?", 400},
		{"başka bir şey", 500},
	}

	tp := newTemplater(PresetA())
	for _, tc := range cases {
		got := tp.Synthesize(chunksOf(long), tc.question)
		body := got[:strings.Index(got, "... [")]
		if n := len([]rune(body)); n != tc.limit {
			t.Errorf("%q: expected %d-rune body, got %d", tc.question, tc.limit, n)
		}
	}
}

func TestSynthesize_NeverEmpty(t *testing.T) {
	tp := newTemplater(PresetA())

	inputs := [][]model.Chunk{
		nil,
		chunksOf(""),
		chunksOf("   \n\t  \n"),
		chunksOf(string([]byte{0x01, 0x02, 0x03})),
		chunksOf(strings.Repeat("<>", 500)),
	}
	questions := []string{"", "nedir", "???", strings.Repeat("x", 10000)}

	for _, chunks := range inputs {
		for _, q := range questions {
			if got := tp.Synthesize(chunks, q); got == "" {
				t.Fatalf("Synthesize returned empty string for chunks=%v question=%q", chunks, q)
			}
		}
	}
}
