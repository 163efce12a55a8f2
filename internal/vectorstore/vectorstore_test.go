package vectorstore

import (
	"context"
	"crypto/sha256"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"investbuddy/internal/knowledge"
)

// hashEmbedder derives a deterministic unit-free vector from the input
// text, so identical texts always embed identically.
type hashEmbedder struct {
	calls int
}

func (e *hashEmbedder) Embed(_ context.Context, inputs []string) ([][]float64, error) {
	e.calls++
	out := make([][]float64, len(inputs))
	for i, in := range inputs {
		sum := sha256.Sum256([]byte(in))
		vec := make([]float64, 8)
		for j := range vec {
			vec[j] = float64(sum[j]) + 1
		}
		out[i] = vec
	}
	return out, nil
}

func Test_NewIndex_BuildsAndReloads(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "embeddings.msgpack")
	embedder := &hashEmbedder{}

	idx, err := NewIndex(ctx, embedder, "test-model", path)
	require.NoError(t, err)
	require.Equal(t, len(knowledge.All()), idx.Size())
	require.Equal(t, 1, embedder.calls)

	// artifact on disk matches the content hash, so no re-embedding
	idx2, err := NewIndex(ctx, embedder, "test-model", path)
	require.NoError(t, err)
	require.Equal(t, idx.Size(), idx2.Size())
	require.Equal(t, 1, embedder.calls)

	// reloaded vectors and documents are byte-for-byte what was persisted
	require.Equal(t, idx.documents, idx2.documents)
	require.Equal(t, idx.embeddings, idx2.embeddings)

	// a different model name invalidates the hash and forces a rebuild
	_, err = NewIndex(ctx, embedder, "other-model", path)
	require.NoError(t, err)
	require.Equal(t, 2, embedder.calls)
}

func Test_Search_RanksExactMatchFirst(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "embeddings.msgpack")
	embedder := &hashEmbedder{}

	idx, err := NewIndex(ctx, embedder, "test-model", path)
	require.NoError(t, err)

	// querying with a document's exact text embeds to the same vector,
	// so that entry must rank first with similarity 1
	bnd, ok := knowledge.Get("BND")
	require.True(t, ok)

	hits, err := idx.Search(ctx, embedder, knowledge.Document(bnd), 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	require.Equal(t, "BND", hits[0].Symbol)
	require.InDelta(t, 1.0, hits[0].Score, 1e-9)
	require.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
	require.GreaterOrEqual(t, hits[1].Score, hits[2].Score)
	require.Equal(t, "Vanguard Total Bond Market ETF", hits[0].Metadata.Name)
}

func Test_Search_ClampsK(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "embeddings.msgpack")
	embedder := &hashEmbedder{}

	idx, err := NewIndex(ctx, embedder, "test-model", path)
	require.NoError(t, err)

	hits, err := idx.Search(ctx, embedder, "anything", 1000)
	require.NoError(t, err)
	require.Len(t, hits, idx.Size())

	// non-positive k falls back to the default of 3
	hits, err = idx.Search(ctx, embedder, "anything", 0)
	require.NoError(t, err)
	require.Len(t, hits, 3)
}

func Test_Search_EmptyIndex(t *testing.T) {
	idx := &Index{}
	hits, err := idx.Search(context.Background(), &hashEmbedder{}, "anything", 3)
	require.NoError(t, err)
	require.Nil(t, hits)
}

func Test_Cosine(t *testing.T) {
	require.InDelta(t, 1.0, cosine([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	require.InDelta(t, 0.0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	require.InDelta(t, -1.0, cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	require.Equal(t, 0.0, cosine([]float64{0, 0}, []float64{1, 1}))
	require.Equal(t, 0.0, cosine([]float64{1}, []float64{1, 2}))
	require.Equal(t, 0.0, cosine(nil, nil))
}
