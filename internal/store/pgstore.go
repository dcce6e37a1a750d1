// Package store provides a pgvector-backed alternative to the on-disk
// index for deployments that already run Postgres.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/index"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
)

// PgStore keeps chunk embeddings in a pgvector table. Rebuild clears the
// previous state up front and inserts the replacement in one transaction,
// mirroring the on-disk backend's delete-then-write behavior: a failed
// rebuild leaves the not-built state, never a stale or partial one. The
// index_state row distinguishes a never-built index from one rebuilt with
// zero chunks.
type PgStore struct {
	db  *sql.DB
	emb index.Embedder
}

func NewPgStore(conn string, emb index.Embedder) (*PgStore, error) {
	db, err := sql.Open("postgres", conn)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db, emb.Dimensions()); err != nil {
		return nil, err
	}
	return &PgStore{db: db, emb: emb}, nil
}

// Ready reports whether a rebuild has completed at this location.
func (s *PgStore) Ready() bool {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM index_state`).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// Rebuild replaces the stored index wholesale. The old state is cleared
// and committed first, so a failure while embedding or inserting leaves
// zero rows — the not-built state — and the new index becomes visible
// atomically on commit.
func (s *PgStore) Rebuild(ctx context.Context, chunks []model.Chunk) error {
	if _, err := s.db.ExecContext(ctx, `TRUNCATE chunks, index_state`); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, ch := range chunks {
		vec, err := s.emb.Embed(ctx, ch.Text)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO chunks (doc_name, chunk_id, ordinal, text, embedding)
			VALUES ($1, $2, $3, $4, $5::vector)
		`, ch.Source, ch.ID, ch.Ordinal, ch.Text, floatsToPgVectorLiteral(vec))
		if err != nil {
			return fmt.Errorf("inserting %s: %w", ch.ID, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO index_state (id, chunk_count) VALUES (1, $1)
	`, len(chunks)); err != nil {
		return fmt.Errorf("recording rebuild: %w", err)
	}
	return tx.Commit()
}

// Search embeds text and returns the k nearest chunks by L2 distance.
func (s *PgStore) Search(ctx context.Context, text string, k int) ([]model.Match, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT chunk_count FROM index_state WHERE id = 1`).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrIndexNotFound
		}
		return nil, err
	}
	if count == 0 {
		return nil, model.ErrEmptyIndex
	}
	if k <= 0 {
		k = 3
	}

	qv, err := s.emb.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT chunk_id, doc_name, ordinal, text, embedding <-> $1::vector AS distance
		FROM chunks
		ORDER BY distance, ordinal
		LIMIT $2
	`, floatsToPgVectorLiteral(qv), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.Chunk.ID, &m.Chunk.Source, &m.Chunk.Ordinal, &m.Chunk.Text, &m.Distance); err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

func (s *PgStore) Close() error { return s.db.Close() }

func floatsToPgVectorLiteral(v []float32) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, f := range v {
		sb.WriteString(fmt.Sprintf("%.6f", float64(f)))
		if i < len(v)-1 {
			sb.WriteString(",")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
