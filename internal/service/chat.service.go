package service

import (
	"context"
	"fmt"
	"strings"

	"investbuddy/internal/domain"
	"investbuddy/internal/logger"
	"investbuddy/internal/platforms"
	"investbuddy/internal/repository"
	"investbuddy/internal/vectorstore"
)

const ragResultCount = 3

type ChatService interface {
	// Chat runs a full advisor turn over the caller-supplied transcript
	// and persists the exchange when sessionID is non-empty.
	Chat(ctx context.Context, sessionID string, messages []domain.ChatMessage) (string, error)
	// WebhookChat is the single-shot variant used by automation
	// integrations: base prompt only, no retrieval, no history.
	WebhookChat(ctx context.Context, message string) (string, error)
	History(ctx context.Context, sessionID string) ([]domain.StoredMessage, error)
}

type chatServiceHandler struct {
	Gpt            repository.GptRepository
	Messages       repository.MessageRepository
	Sessions       repository.SessionRepository
	ContextBuilder *vectorstore.ContextBuilder
}

func NewChatService(
	gpt repository.GptRepository,
	messages repository.MessageRepository,
	sessions repository.SessionRepository,
	contextBuilder *vectorstore.ContextBuilder,
) ChatService {
	return chatServiceHandler{
		Gpt:            gpt,
		Messages:       messages,
		Sessions:       sessions,
		ContextBuilder: contextBuilder,
	}
}

func (h chatServiceHandler) Chat(ctx context.Context, sessionID string, messages []domain.ChatMessage) (string, error) {
	// the frontend sends the user's intake form as a system message;
	// pull it out so it can be framed separately in the prompt
	userProfile := ""
	conversation := []domain.ChatMessage{}
	for _, m := range messages {
		switch {
		case m.Role == "system" && strings.Contains(m.Content, "User Profile:"):
			userProfile = m.Content
		case m.Role != "system":
			conversation = append(conversation, m)
		}
	}

	lastUserMessage := ""
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role == "user" {
			lastUserMessage = conversation[i].Content
			break
		}
	}

	systemPrompt := h.buildSystemPrompt(ctx, userProfile, lastUserMessage)

	prompt := make([]domain.ChatMessage, 0, len(conversation)+1)
	prompt = append(prompt, domain.ChatMessage{Role: "system", Content: systemPrompt})
	prompt = append(prompt, conversation...)

	reply, err := h.Gpt.ChatCompletion(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat reply: %w", err)
	}

	if sessionID != "" {
		h.persistExchange(ctx, sessionID, lastUserMessage, reply)
	}

	return reply, nil
}

func (h chatServiceHandler) buildSystemPrompt(ctx context.Context, userProfile, lastUserMessage string) string {
	var sb strings.Builder
	sb.WriteString(advisorSystemPrompt)

	if userProfile != "" {
		sb.WriteString("\n\n---\n**ABOUT THIS USER:**\n\n")
		sb.WriteString(userProfile)
		sb.WriteString("\n\n**Important:** Use this profile information to personalize your advice. Consider their age, income, family situation, goals, and risk tolerance when making recommendations.\n---\n")
	}

	sb.WriteString("\n\n---\n**INVESTMENT PLATFORMS** (Always mention these with links when user asks how to invest):\n\n")
	sb.WriteString(platforms.ForPrompt())
	sb.WriteString("\n\n---\n**PRACTICAL INVESTING GUIDE** (Use this to explain step-by-step how to invest):\n\n")
	sb.WriteString(platforms.BeginnersGuide)
	sb.WriteString("\n\n---\n")

	if lastUserMessage != "" {
		etfContext, err := h.ContextBuilder.BuildContext(ctx, lastUserMessage, ragResultCount, true)
		if err != nil {
			// retrieval is an enhancement, not a requirement
			logger.FromContext(ctx).Warnw("failed to build retrieval context", "error", err)
		} else if etfContext != "" {
			sb.WriteString("\n**RELEVANT ETF KNOWLEDGE WITH LIVE DATA** (Use this to provide better, more detailed answers):\n\n")
			sb.WriteString(etfContext)
			sb.WriteString("\n\n---\n")
		}
	}

	sb.WriteString(criticalReminders)
	return sb.String()
}

func (h chatServiceHandler) persistExchange(ctx context.Context, sessionID, userMessage, reply string) {
	log := logger.FromContext(ctx)
	if err := h.Sessions.EnsureExists(ctx, sessionID); err != nil {
		log.Errorw("failed to ensure chat session", "sessionId", sessionID, "error", err)
		return
	}
	if userMessage != "" {
		if err := h.Messages.Add(ctx, sessionID, "user", userMessage); err != nil {
			log.Errorw("failed to store user message", "sessionId", sessionID, "error", err)
		}
	}
	if err := h.Messages.Add(ctx, sessionID, "assistant", reply); err != nil {
		log.Errorw("failed to store assistant message", "sessionId", sessionID, "error", err)
	}
}

func (h chatServiceHandler) WebhookChat(ctx context.Context, message string) (string, error) {
	reply, err := h.Gpt.ChatCompletion(ctx, []domain.ChatMessage{
		{Role: "system", Content: advisorSystemPrompt},
		{Role: "user", Content: message},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate webhook reply: %w", err)
	}
	return reply, nil
}

func (h chatServiceHandler) History(ctx context.Context, sessionID string) ([]domain.StoredMessage, error) {
	return h.Messages.List(ctx, sessionID, 0)
}
