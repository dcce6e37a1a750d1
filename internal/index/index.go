// Package index embeds chunks and persists them in a flat,
// nearest-neighbor-searchable structure on disk.
package index

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
)

const indexFile = "index.gob"

// Index holds chunks and their embeddings, co-indexed by ordinal.
type Index struct {
	Chunks    []model.Chunk
	Vectors   [][]float32
	Dimension int
	ModelInfo string
}

// Store owns the persisted index location and the embedder used both for
// building and for queries.
type Store struct {
	dir string
	emb Embedder
}

func NewStore(dir string, emb Embedder) *Store {
	return &Store{dir: dir, emb: emb}
}

// Dir returns the persisted index location.
func (s *Store) Dir() string { return s.dir }

// Exists reports whether a persisted index is present. Its existence is the
// "system is ready" signal; the file layout is private to this package.
func (s *Store) Exists() bool {
	_, err := os.Stat(filepath.Join(s.dir, indexFile))
	return err == nil
}

// Build embeds every chunk and replaces the persisted index wholesale.
// The old state is deleted up front, before any embedding happens: a
// failed or interrupted rebuild leaves "no index", never a stale or
// corrupt one that keeps answering from old data.
func (s *Store) Build(ctx context.Context, chunks []model.Chunk) (*Index, error) {
	if err := os.RemoveAll(s.dir); err != nil {
		return nil, fmt.Errorf("removing old index: %w", err)
	}

	idx := &Index{
		Chunks:    chunks,
		Vectors:   make([][]float32, 0, len(chunks)),
		Dimension: s.emb.Dimensions(),
		ModelInfo: s.emb.Model(),
	}
	for _, ch := range chunks {
		vec, err := s.emb.Embed(ctx, ch.Text)
		if err != nil {
			return nil, err
		}
		idx.Vectors = append(idx.Vectors, vec)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.dir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("creating index file: %w", err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(idx); err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing index: %w", err)
	}
	return idx, nil
}

// Load reads the persisted index. Returns model.ErrIndexNotFound when no
// index has been built at this location.
func (s *Store) Load() (*Index, error) {
	f, err := os.Open(filepath.Join(s.dir, indexFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", model.ErrIndexNotFound, s.dir)
		}
		return nil, fmt.Errorf("opening index: %w", err)
	}
	defer f.Close()

	var idx Index
	if err := gob.NewDecoder(f).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}
	return &idx, nil
}

// Query embeds text and returns the k nearest chunks by L2 distance,
// closest first. Ties go to the earlier ordinal.
func (s *Store) Query(ctx context.Context, idx *Index, text string, k int) ([]model.Match, error) {
	if len(idx.Chunks) == 0 {
		return nil, model.ErrEmptyIndex
	}
	if k <= 0 {
		k = 3
	}

	qv, err := s.emb.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	matches := make([]model.Match, 0, len(idx.Chunks))
	for i, ch := range idx.Chunks {
		matches = append(matches, model.Match{
			Chunk:    ch,
			Distance: l2distance(qv, idx.Vectors[i]),
		})
	}
	// stable sort keeps ordinal order among equal distances
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k], nil
}

// Ready reports whether a persisted index exists (see Exists).
func (s *Store) Ready() bool { return s.Exists() }

// Rebuild replaces the persisted index from chunks, discarding the
// in-memory handle.
func (s *Store) Rebuild(ctx context.Context, chunks []model.Chunk) error {
	_, err := s.Build(ctx, chunks)
	return err
}

// Search loads the persisted index and queries it.
func (s *Store) Search(ctx context.Context, text string, k int) ([]model.Match, error) {
	idx, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.Query(ctx, idx, text, k)
}

func l2distance(a, b []float32) float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float32
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return float32(math.Sqrt(float64(sum)))
}
