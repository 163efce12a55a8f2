package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"

	"investbuddy/internal/domain"
)

type GptRepository interface {
	ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptRepositoryHandler) ChatCompletion(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	converted := make([]chatgpt.ChatMessage, 0, len(messages))
	for _, m := range messages {
		role, err := toChatGptRole(m.Role)
		if err != nil {
			return "", err
		}
		converted = append(converted, chatgpt.ChatMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model:       chatgpt.GPT35Turbo,
		Messages:    converted,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}

func toChatGptRole(role string) (chatgpt.ChatGPTModelRole, error) {
	switch role {
	case "system":
		return chatgpt.ChatGPTModelRoleSystem, nil
	case "user":
		return chatgpt.ChatGPTModelRoleUser, nil
	case "assistant":
		return chatgpt.ChatGPTModelRoleAssistant, nil
	}
	return "", fmt.Errorf("unknown chat role %q", role)
}
