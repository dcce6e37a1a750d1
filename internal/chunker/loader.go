package chunker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"rsc.io/pdf"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
)

// Load reads a source file into a Document. Plain text is read as-is;
// .pdf files go through text extraction. Unreadable or non-UTF-8 content
// surfaces as model.ErrLoad.
func Load(path string) (model.Document, error) {
	var text string
	var err error

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = extractPDFText(path)
	} else {
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
	}
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %s: %v", model.ErrLoad, path, err)
	}
	if !utf8.ValidString(text) {
		return model.Document{}, fmt.Errorf("%w: %s: not valid UTF-8", model.ErrLoad, path)
	}

	return model.Document{Source: filepath.Base(path), Text: text}, nil
}

func extractPDFText(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, t := range p.Content().Text {
			// strip null bytes some producers leave in
			sb.WriteString(strings.ReplaceAll(t.S, "\x00", ""))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
