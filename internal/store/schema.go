package store

import (
	"database/sql"
	"fmt"
)

// ensureSchema creates the pgvector extension, the chunks and index_state
// tables and the ivfflat index. The index_state row marks a completed
// rebuild; without it the store counts as never built.
func ensureSchema(db *sql.DB, dim int) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
			id SERIAL PRIMARY KEY,
			doc_name TEXT,
			chunk_id TEXT,
			ordinal INT,
			text TEXT,
			embedding vector(%d)
		)`, dim),
		`CREATE TABLE IF NOT EXISTS index_state (
			id INT PRIMARY KEY CHECK (id = 1),
			rebuilt_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			chunk_count INT NOT NULL
		)`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_class c
				JOIN pg_namespace n ON n.oid=c.relnamespace
				WHERE c.relname='chunks_embedding_ivfflat_idx'
			) THEN
				EXECUTE 'CREATE INDEX chunks_embedding_ivfflat_idx ON chunks USING ivfflat (embedding vector_l2_ops) WITH (lists=100)';
			END IF;
		END $$;`,
	}

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}

	// ANALYZE keeps the ivfflat planner honest
	_, _ = db.Exec(`ANALYZE chunks`)
	return nil
}
