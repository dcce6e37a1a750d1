// Package chunker loads a source document and splits it into overlapping
// windows suitable for embedding.
package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/textclean"
)

// Config configures the splitter. Sizes count characters (runes), not
// bytes: Turkish text would otherwise get cut mid-rune.
type Config struct {
	// ChunkSize is the maximum characters per chunk
	ChunkSize int

	// Overlap is the character overlap between consecutive chunks
	Overlap int
}

// DefaultConfig returns the defaults the corpus was indexed with.
func DefaultConfig() Config {
	return Config{ChunkSize: 1000, Overlap: 200}
}

// Chunker cleans a document once and splits it into overlapping chunks.
type Chunker struct {
	cleaner *textclean.Cleaner
	cfg     Config
}

func New(cleaner *textclean.Cleaner, cfg Config) *Chunker {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 1000
	}
	if cfg.Overlap < 0 {
		cfg.Overlap = 0
	}
	if cfg.Overlap >= cfg.ChunkSize {
		cfg.Overlap = cfg.ChunkSize / 2
	}
	return &Chunker{cleaner: cleaner, cfg: cfg}
}

// ChunkFile loads path and returns its chunks.
func (c *Chunker) ChunkFile(path string) ([]model.Chunk, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return c.ChunkDocument(doc), nil
}

// ChunkDocument cleans the document content and splits it. Cleaning happens
// once per document, not per chunk, so chunk boundaries stay consistent.
// An empty document yields no chunks.
func (c *Chunker) ChunkDocument(doc model.Document) []model.Chunk {
	content := []rune(c.cleaner.Clean(doc.Text))
	if len(content) == 0 {
		return nil
	}

	var chunks []model.Chunk
	start := 0
	for start < len(content) {
		end := start + c.cfg.ChunkSize
		if end > len(content) {
			end = len(content)
		}
		if end < len(content) {
			if bp := findBreakPoint(content, start, end); bp > start {
				end = bp
			}
		}

		ord := len(chunks)
		chunks = append(chunks, model.Chunk{
			ID:      fmt.Sprintf("%s_chunk_%d", doc.Source, ord),
			Source:  doc.Source,
			Ordinal: ord,
			Text:    string(content[start:end]),
		})

		if end >= len(content) {
			break
		}
		next := end - c.cfg.Overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}
	return chunks
}

// findBreakPoint looks backwards from maxEnd for a natural boundary:
// paragraph first, then sentence, then word. Falls back to maxEnd.
// Offsets are rune indices.
func findBreakPoint(content []rune, start, maxEnd int) int {
	searchStart := maxEnd - 100
	if searchStart < start {
		searchStart = start
	}
	window := string(content[searchStart:maxEnd])

	if idx := strings.LastIndex(window, "\n\n"); idx != -1 {
		return searchStart + utf8.RuneCountInString(window[:idx]) + 2
	}

	enders := []string{". ", "! ", "? ", ".\n", "!\n", "?\n"}
	best := -1
	for _, e := range enders {
		if idx := strings.LastIndex(window, e); idx != -1 {
			if r := utf8.RuneCountInString(window[:idx+len(e)]); r > best {
				best = r
			}
		}
	}
	if best > 0 {
		return searchStart + best
	}

	if idx := strings.LastIndex(window, " "); idx != -1 {
		return searchStart + utf8.RuneCountInString(window[:idx]) + 1
	}
	return maxEnd
}
