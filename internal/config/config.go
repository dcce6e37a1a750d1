package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerAddr string

	// corpus and index locations
	DataPath string
	IndexDir string

	// embedding endpoint; empty EmbedBaseURL falls back to the offline
	// hash embedder
	EmbedBaseURL string
	EmbedModel   string
	EmbedAPIKey  string
	EmbedDim     int

	// chunking
	ChunkSize    int
	ChunkOverlap int

	// retrieval
	TopK int

	// "disk" or "postgres"
	StoreBackend string
	PgConn       string

	// text heuristics preset: "a" or "b"
	Heuristics string

	// tag-like matches below this count skip cleaning entirely
	TagCountThreshold int
}

func Load() *Config {
	return &Config{
		ServerAddr:        getenv("SERVER_ADDR", ":8080"),
		DataPath:          getenv("DATA_PATH", "data.txt"),
		IndexDir:          getenv("INDEX_DIR", "faiss_index"),
		EmbedBaseURL:      getenv("LMSTUDIO_BASE_URL", ""),
		EmbedModel:        getenv("EMBED_MODEL", "all-MiniLM-L6-v2"),
		EmbedAPIKey:       getenv("OPENAI_API_KEY", ""),
		EmbedDim:          getenvInt("EMBED_DIM", 384),
		ChunkSize:         getenvInt("CHUNK_SIZE", 1000),
		ChunkOverlap:      getenvInt("CHUNK_OVERLAP", 200),
		TopK:              getenvInt("TOP_K", 3),
		StoreBackend:      getenv("STORE_BACKEND", "disk"),
		PgConn:            getenv("PG_CONN", "host=localhost port=5432 user=postgres password=postgres dbname=ragchat sslmode=disable"),
		Heuristics:        getenv("HEURISTICS", "a"),
		TagCountThreshold: getenvInt("TAG_COUNT_THRESHOLD", 3),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
