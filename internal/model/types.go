package model

// Document is a loaded source file before splitting.
type Document struct {
	Source string `json:"source"`
	Text   string `json:"text"`
}

// Chunk is a bounded, overlapping piece of a document — the unit of retrieval.
type Chunk struct {
	ID      string `json:"id"`
	Source  string `json:"source"`
	Ordinal int    `json:"ordinal"`
	Text    string `json:"text"`
}

// Match pairs a chunk with its distance to the query (smaller is closer).
type Match struct {
	Chunk    Chunk   `json:"chunk"`
	Distance float32 `json:"distance"`
}

// Answer carries the synthesized response plus the passages worth displaying.
type Answer struct {
	Text     string   `json:"answer"`
	Passages []string `json:"passages"`
}

type AskRequest struct {
	Question string `json:"question"`
	TopK     int    `json:"topK,omitempty"`
}
