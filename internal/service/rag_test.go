package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/answer"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/chunker"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/index"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/model"
	"github.com/cihat-aslan/Akbank-GenAI-Projesi/internal/textclean"
)

const corpus = `LangChain büyük dil modelleriyle uygulama geliştirmek için kullanılan bir çerçevedir.
LangChain zincirler, ajanlar ve bellek gibi temel bileşenlerden oluşur.
RAG mimarisi, yanıt üretmeden önce ilgili belgeleri getirme fikrine dayanır.
Kurulum için paket yöneticinizle langchain paketini eklemeniz yeterlidir.
`

func newTestService(t *testing.T) (*RAGService, string) {
	t.Helper()
	dir := t.TempDir()

	cleaner := textclean.New(textclean.Options{TagCountThreshold: 3})
	emb := index.NewHashEmbedder(64)
	vs := index.NewStore(filepath.Join(dir, "faiss_index"), emb)
	ch := chunker.New(cleaner, chunker.DefaultConfig())
	tp := answer.New(cleaner, answer.PresetA())

	dataPath := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(dataPath, []byte(corpus), 0o644))

	return NewRAGService(vs, ch, tp, cleaner, 3), dataPath
}

func TestRAGService_AnswerBeforeRebuild(t *testing.T) {
	svc, _ := newTestService(t)

	require.False(t, svc.Ready())
	_, err := svc.AnswerQuestion(context.Background(), "LangChain nedir?", 0)
	require.ErrorIs(t, err, model.ErrIndexNotFound)
}

func TestRAGService_RebuildThenAnswer(t *testing.T) {
	svc, dataPath := newTestService(t)
	ctx := context.Background()

	n, err := svc.RebuildIndex(ctx, dataPath)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 1)
	require.True(t, svc.Ready())

	ans, err := svc.AnswerQuestion(ctx, "LangChain nedir?", 0)
	require.NoError(t, err)
	require.NotEmpty(t, ans.Text)
	require.Contains(t, ans.Text, "[")
	require.NotEmpty(t, ans.Passages)
	for _, p := range ans.Passages {
		require.Greater(t, len(p), 50)
	}
}

func TestRAGService_RebuildMissingSource(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RebuildIndex(context.Background(), filepath.Join(t.TempDir(), "yok.txt"))
	require.ErrorIs(t, err, model.ErrLoad)
	require.False(t, svc.Ready(), "failed rebuild must leave the no-index state")
}

func TestRAGService_EmptyCorpus(t *testing.T) {
	svc, dataPath := newTestService(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(dataPath, nil, 0o644))
	n, err := svc.RebuildIndex(ctx, dataPath)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = svc.AnswerQuestion(ctx, "LangChain nedir?", 0)
	require.ErrorIs(t, err, model.ErrEmptyIndex)
}
