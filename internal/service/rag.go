package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/answer"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/chunker"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/textclean"
)

// minPassageLength filters near-empty retrieved passages out of the
// response; shorter ones are noise after cleaning.
const minPassageLength = 50

// VectorStore is the retrieval backend: the on-disk index or pgvector.
type VectorStore interface {
	Ready() bool
	Rebuild(ctx context.Context, chunks []model.Chunk) error
	Search(ctx context.Context, text string, k int) ([]model.Match, error)
}

// RAGService wires chunking, indexing, retrieval and answer templating.
// Rebuilds and queries are serialized: a rebuild replaces the persisted
// index wholesale and must not race a search against the same location.
type RAGService struct {
	mu        sync.Mutex
	store     VectorStore
	chunker   *chunker.Chunker
	templater *answer.Templater
	cleaner   *textclean.Cleaner
	topK      int
}

func NewRAGService(store VectorStore, ch *chunker.Chunker, t *answer.Templater, cl *textclean.Cleaner, topK int) *RAGService {
	if topK <= 0 {
		topK = 3
	}
	return &RAGService{store: store, chunker: ch, templater: t, cleaner: cl, topK: topK}
}

// Ready reports whether an index has been built.
func (s *RAGService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Ready()
}

// RebuildIndex loads and chunks sourcePath, then replaces the index.
// Returns the number of chunks indexed. A failed rebuild leaves the
// system in the "no index" state, same as never having built one.
func (s *RAGService) RebuildIndex(ctx context.Context, sourcePath string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunks, err := s.chunker.ChunkFile(sourcePath)
	if err != nil {
		return 0, err
	}
	if err := s.store.Rebuild(ctx, chunks); err != nil {
		return 0, fmt.Errorf("rebuilding index: %w", err)
	}
	return len(chunks), nil
}

// AnswerQuestion retrieves the chunks nearest to question and synthesizes
// a templated answer from them. topK <= 0 uses the configured default.
func (s *RAGService) AnswerQuestion(ctx context.Context, question string, topK int) (model.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if topK <= 0 {
		topK = s.topK
	}
	matches, err := s.store.Search(ctx, question, topK)
	if err != nil {
		return model.Answer{}, err
	}

	chunks := make([]model.Chunk, 0, len(matches))
	passages := make([]string, 0, len(matches))
	for _, m := range matches {
		chunks = append(chunks, m.Chunk)
		if cleaned := s.cleaner.Clean(m.Chunk.Text); len(cleaned) > minPassageLength {
			passages = append(passages, cleaned)
		}
	}

	return model.Answer{
		Text:     s.templater.Synthesize(chunks, question),
		Passages: passages,
	}, nil
}
