package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"
)

const openAiEmbeddingsUrl = "https://api.openai.com/v1/embeddings"

// EmbeddingRepository turns text into vectors. Batched input returns one
// vector per input, in input order.
type EmbeddingRepository interface {
	Embed(ctx context.Context, inputs []string) ([][]float64, error)
}

type embeddingRepositoryHandler struct {
	ApiKey     string
	Model      string
	BaseUrl    string
	HttpClient *http.Client
}

func NewEmbeddingRepository(apiKey, model string) EmbeddingRepository {
	return embeddingRepositoryHandler{
		ApiKey:  apiKey,
		Model:   model,
		BaseUrl: openAiEmbeddingsUrl,
		HttpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Index     int       `json:"index"`
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (h embeddingRepositoryHandler) Embed(ctx context.Context, inputs []string) ([][]float64, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(embeddingRequest{
		Model: h.Model,
		Input: inputs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embeddings request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseUrl, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build embeddings request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.ApiKey)

	res, err := h.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embeddings response: %w", err)
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse embeddings response (status %d): %w", res.StatusCode, err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("embeddings api error (%s): %s", parsed.Error.Type, parsed.Error.Message)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embeddings api returned status %d", res.StatusCode)
	}
	if len(parsed.Data) != len(inputs) {
		return nil, fmt.Errorf("embeddings api returned %d vectors for %d inputs", len(parsed.Data), len(inputs))
	}

	// the api may reorder results; index restores input order
	sort.Slice(parsed.Data, func(i, j int) bool {
		return parsed.Data[i].Index < parsed.Data[j].Index
	})
	out := make([][]float64, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = d.Embedding
	}

	return out, nil
}
