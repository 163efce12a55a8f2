// Package vectorstore maintains the semantic index over the ETF knowledge
// base and assembles retrieval context for the chat model.
package vectorstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/floats"

	"investbuddy/internal/domain"
	"investbuddy/internal/knowledge"
	"investbuddy/internal/logger"
)

// Embedder is satisfied by repository.EmbeddingRepository.
type Embedder interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}

// Artifact is the on-disk index snapshot. ContentHash covers the model
// name and every document in order; a mismatch on load forces a rebuild.
type Artifact struct {
	Model       string                 `msgpack:"model"`
	ContentHash string                 `msgpack:"content_hash"`
	BuiltAt     time.Time              `msgpack:"built_at"`
	Documents   []string               `msgpack:"documents"`
	Embeddings  [][]float64            `msgpack:"embeddings"`
	Metadata    []domain.EntryMetadata `msgpack:"metadata"`
}

type Index struct {
	entries    []domain.KnowledgeEntry
	documents  []string
	embeddings [][]float64
}

func contentHash(model string, documents []string) string {
	h := sha256.New()
	h.Write([]byte(model))
	for _, d := range documents {
		h.Write([]byte{0})
		h.Write([]byte(d))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// NewIndex loads the persisted artifact when its content hash still
// matches the compiled-in knowledge base, otherwise it re-embeds every
// document and rewrites the artifact.
func NewIndex(ctx context.Context, embedder Embedder, model, artifactPath string) (*Index, error) {
	entries := knowledge.All()
	documents := make([]string, len(entries))
	for i, e := range entries {
		documents[i] = knowledge.Document(e)
	}
	wantHash := contentHash(model, documents)

	log := logger.FromContext(ctx)

	if artifact, err := loadArtifact(artifactPath); err == nil {
		if artifact.ContentHash == wantHash && len(artifact.Embeddings) == len(documents) {
			log.Infow("loaded embedding artifact", "path", artifactPath, "documents", len(documents))
			return &Index{
				entries:    entries,
				documents:  documents,
				embeddings: artifact.Embeddings,
			}, nil
		}
		log.Warnw("embedding artifact stale, rebuilding", "path", artifactPath)
	} else if !os.IsNotExist(err) {
		log.Warnw("failed to load embedding artifact, rebuilding", "path", artifactPath, "error", err)
	}

	embeddings, err := embedder.Embed(ctx, documents)
	if err != nil {
		return nil, fmt.Errorf("failed to embed knowledge base: %w", err)
	}
	if len(embeddings) != len(documents) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d documents", len(embeddings), len(documents))
	}

	metadata := make([]domain.EntryMetadata, len(entries))
	for i, e := range entries {
		metadata[i] = knowledge.Metadata(e)
	}
	artifact := Artifact{
		Model:       model,
		ContentHash: wantHash,
		BuiltAt:     time.Now().UTC(),
		Documents:   documents,
		Embeddings:  embeddings,
		Metadata:    metadata,
	}
	if err := saveArtifact(artifactPath, artifact); err != nil {
		// the in-memory index still works; persistence is best effort
		log.Warnw("failed to persist embedding artifact", "path", artifactPath, "error", err)
	} else {
		log.Infow("built embedding artifact", "path", artifactPath, "documents", len(documents))
	}

	return &Index{
		entries:    entries,
		documents:  documents,
		embeddings: embeddings,
	}, nil
}

func loadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var artifact Artifact
	if err := msgpack.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode embedding artifact: %w", err)
	}
	return &artifact, nil
}

func saveArtifact(path string, artifact Artifact) error {
	raw, err := msgpack.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to encode embedding artifact: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Search embeds the query and returns the k nearest entries by cosine
// similarity, best first. An empty index returns no results.
func (idx *Index) Search(ctx context.Context, embedder Embedder, query string, k int) ([]domain.SearchResult, error) {
	if len(idx.embeddings) == 0 {
		return nil, nil
	}
	if k <= 0 {
		k = 3
	}
	if k > len(idx.embeddings) {
		k = len(idx.embeddings)
	}

	vectors, err := embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	queryVec := vectors[0]

	results := make([]domain.SearchResult, len(idx.embeddings))
	for i, emb := range idx.embeddings {
		results[i] = domain.SearchResult{
			Symbol:   idx.entries[i].Symbol,
			Metadata: knowledge.Metadata(idx.entries[i]),
			Score:    cosine(queryVec, emb),
			Entry:    idx.entries[i],
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results[:k], nil
}

// Size reports how many documents the index holds.
func (idx *Index) Size() int {
	return len(idx.embeddings)
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
