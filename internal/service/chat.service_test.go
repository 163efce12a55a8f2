package service

import (
	"context"
	"crypto/sha256"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"investbuddy/internal/database"
	"investbuddy/internal/domain"
	"investbuddy/internal/repository"
	"investbuddy/internal/vectorstore"
)

type fakeGpt struct {
	reply    string
	err      error
	lastSent []domain.ChatMessage
}

func (f *fakeGpt) ChatCompletion(_ context.Context, messages []domain.ChatMessage) (string, error) {
	f.lastSent = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type textEmbedder struct{}

func (textEmbedder) Embed(_ context.Context, inputs []string) ([][]float64, error) {
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

type noLiveData struct{}

func (noLiveData) GetLiveETFData(_ context.Context, symbol string) domain.LiveMetrics {
	return domain.LiveMetrics{Symbol: symbol, Err: "offline"}
}

func newTestChatService(t *testing.T, gpt *fakeGpt) (ChatService, repository.MessageRepository) {
	t.Helper()

	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	embedder := textEmbedder{}
	idx, err := vectorstore.NewIndex(context.Background(), embedder, "test-model",
		filepath.Join(t.TempDir(), "emb.msgpack"))
	require.NoError(t, err)

	messages := repository.NewMessageRepository(db)
	svc := NewChatService(
		gpt,
		messages,
		repository.NewSessionRepository(db),
		vectorstore.NewContextBuilder(idx, embedder, noLiveData{}),
	)
	return svc, messages
}

func Test_Chat_AssemblesPrompt(t *testing.T) {
	gpt := &fakeGpt{reply: "Hello! Tell me your monthly salary in AZN."}
	svc, _ := newTestChatService(t, gpt)

	reply, err := svc.Chat(context.Background(), "", []domain.ChatMessage{
		{Role: "system", Content: "User Profile: age 25, salary 2000 AZN"},
		{Role: "user", Content: "Hi, I want to start investing"},
	})
	require.NoError(t, err)
	require.Equal(t, gpt.reply, reply)

	// system prompt first, then only the conversation messages
	require.Len(t, gpt.lastSent, 2)
	require.Equal(t, "system", gpt.lastSent[0].Role)
	require.Equal(t, "user", gpt.lastSent[1].Role)

	system := gpt.lastSent[0].Content
	require.Contains(t, system, "You are InvestBuddy")
	require.Contains(t, system, "ABOUT THIS USER")
	require.Contains(t, system, "User Profile: age 25, salary 2000 AZN")
	require.Contains(t, system, "INVESTMENT PLATFORMS")
	require.Contains(t, system, "eToro")
	require.Contains(t, system, "PRACTICAL INVESTING GUIDE")
	require.Contains(t, system, "RELEVANT ETF KNOWLEDGE WITH LIVE DATA")
	require.Contains(t, system, "CRITICAL REMINDERS")
}

func Test_Chat_NoProfileNoUserMessage(t *testing.T) {
	gpt := &fakeGpt{reply: "Hi there!"}
	svc, _ := newTestChatService(t, gpt)

	_, err := svc.Chat(context.Background(), "", []domain.ChatMessage{
		{Role: "assistant", Content: "Welcome back!"},
	})
	require.NoError(t, err)

	system := gpt.lastSent[0].Content
	require.NotContains(t, system, "ABOUT THIS USER")
	require.NotContains(t, system, "RELEVANT ETF KNOWLEDGE")
}

func Test_Chat_PersistsExchange(t *testing.T) {
	gpt := &fakeGpt{reply: "Great, what are your monthly expenses?"}
	svc, messages := newTestChatService(t, gpt)
	ctx := context.Background()

	_, err := svc.Chat(ctx, "session-1", []domain.ChatMessage{
		{Role: "user", Content: "I make 3000 AZN per month"},
	})
	require.NoError(t, err)

	stored, err := messages.List(ctx, "session-1", 0)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, "user", stored[0].Role)
	require.Equal(t, "I make 3000 AZN per month", stored[0].Content)
	require.Equal(t, "assistant", stored[1].Role)
	require.Equal(t, gpt.reply, stored[1].Content)

	history, err := svc.History(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func Test_Chat_NoSessionSkipsPersistence(t *testing.T) {
	gpt := &fakeGpt{reply: "ok"}
	svc, messages := newTestChatService(t, gpt)
	ctx := context.Background()

	_, err := svc.Chat(ctx, "", []domain.ChatMessage{
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)

	stored, err := messages.List(ctx, "", 0)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func Test_WebhookChat(t *testing.T) {
	gpt := &fakeGpt{reply: "An ETF is like a basket of many investments."}
	svc, _ := newTestChatService(t, gpt)

	reply, err := svc.WebhookChat(context.Background(), "what is an ETF?")
	require.NoError(t, err)
	require.Equal(t, gpt.reply, reply)

	require.Len(t, gpt.lastSent, 2)
	require.Equal(t, "system", gpt.lastSent[0].Role)
	require.Contains(t, gpt.lastSent[0].Content, "You are InvestBuddy")
	require.NotContains(t, gpt.lastSent[0].Content, "INVESTMENT PLATFORMS")
	require.Equal(t, "what is an ETF?", gpt.lastSent[1].Content)
}
