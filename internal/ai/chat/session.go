package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	systemPrompt   = "You are a helpful assistant."
	maxHistory     = 50
	historyTTL     = 30 * time.Minute
	historyKeyBase = "chat:session:"
)

var (
	ErrEmptySession = errors.New("session id is required")
	ErrEmptyText    = errors.New("text is required")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryStore keeps per-session transcripts. Conversation state is always
// keyed by session id and never held in process scope, so concurrent callers
// cannot see each other's turns.
type HistoryStore interface {
	List(ctx context.Context, sessionID string) ([]Message, error)
	Save(ctx context.Context, sessionID string, msgs []Message) error
}

type jsonCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// RedisHistory stores transcripts as JSON values with a sliding TTL.
type RedisHistory struct {
	cache jsonCache
}

func NewRedisHistory(cache jsonCache) *RedisHistory {
	return &RedisHistory{cache: cache}
}

func (h *RedisHistory) List(ctx context.Context, sessionID string) ([]Message, error) {
	var msgs []Message
	if _, err := h.cache.GetJSON(ctx, historyKeyBase+sessionID, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (h *RedisHistory) Save(ctx context.Context, sessionID string, msgs []Message) error {
	if len(msgs) > maxHistory {
		msgs = msgs[len(msgs)-maxHistory:]
	}
	return h.cache.SetJSON(ctx, historyKeyBase+sessionID, msgs, historyTTL)
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service runs multi-turn chat completions with explicit per-session history.
type Service struct {
	generator contentGenerator
	history   HistoryStore
	logger    *zap.Logger
}

func NewService(generator contentGenerator, history HistoryStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{generator: generator, history: history, logger: logger}
}

// Complete appends the user's turn to the session transcript, renders the
// whole transcript as a prompt, and records the assistant's reply.
func (s *Service) Complete(ctx context.Context, sessionID, text string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrEmptySession
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	msgs, err := s.history.List(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if len(msgs) == 0 {
		msgs = []Message{{Role: RoleSystem, Content: systemPrompt}}
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: text})

	reply, err := s.generator.GenerateContent(ctx, renderTranscript(msgs))
	if err != nil {
		return "", err
	}

	msgs = append(msgs, Message{Role: RoleAssistant, Content: reply})
	if err := s.history.Save(ctx, sessionID, msgs); err != nil {
		s.logger.Warn("failed to persist chat history",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	return reply, nil
}

func renderTranscript(msgs []Message) string {
	var b strings.Builder
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.ToUpper(m.Role))
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}
