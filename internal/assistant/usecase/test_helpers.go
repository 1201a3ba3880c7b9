package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"campus-connect/internal/assistant"
	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"
	"campus-connect/pkg/llmprovider"
)

// mockRepo is an in-memory assistant repository.
type mockRepo struct {
	conversations map[string]model.Conversation
	messages      map[string][]model.ChatMessage
	touched       []string
	deleted       []string

	countSince   int
	countErr     error
	createMsgErr error

	nextID int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		conversations: make(map[string]model.Conversation),
		messages:      make(map[string][]model.ChatMessage),
	}
}

func (m *mockRepo) id(prefix string) string {
	m.nextID++
	return prefix + "-" + strconv.Itoa(m.nextID)
}

func (m *mockRepo) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (model.Conversation, error) {
	conv := model.Conversation{ID: m.id("conv"), UserID: opt.UserID, Title: opt.Title, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.conversations[conv.ID] = conv
	return conv, nil
}

func (m *mockRepo) GetConversation(ctx context.Context, userID, id string) (model.Conversation, error) {
	conv := m.conversations[id]
	if conv.UserID != userID {
		return model.Conversation{}, nil
	}
	return conv, nil
}

func (m *mockRepo) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	var out []model.Conversation
	for _, c := range m.conversations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepo) TouchConversation(ctx context.Context, id string) error {
	m.touched = append(m.touched, id)
	return nil
}

func (m *mockRepo) DeleteConversation(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.conversations, id)
	delete(m.messages, id)
	return nil
}

func (m *mockRepo) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.ChatMessage, error) {
	if m.createMsgErr != nil {
		return model.ChatMessage{}, m.createMsgErr
	}
	msg := model.ChatMessage{ID: m.id("msg"), ConversationID: opt.ConversationID, Role: opt.Role, Content: opt.Content, CreatedAt: time.Now()}
	m.messages[opt.ConversationID] = append(m.messages[opt.ConversationID], msg)
	return msg, nil
}

func (m *mockRepo) ListMessages(ctx context.Context, conversationID string) ([]model.ChatMessage, error) {
	return m.messages[conversationID], nil
}

func (m *mockRepo) GetRecentMessages(ctx context.Context, conversationID string, limit int) ([]model.ChatMessage, error) {
	msgs := m.messages[conversationID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (m *mockRepo) GetLastMessage(ctx context.Context, conversationID string) (model.ChatMessage, error) {
	msgs := m.messages[conversationID]
	if len(msgs) == 0 {
		return model.ChatMessage{}, nil
	}
	return msgs[len(msgs)-1], nil
}

func (m *mockRepo) CountUserMessagesSince(ctx context.Context, userID string, since time.Time) (int, error) {
	return m.countSince, m.countErr
}

func (m *mockRepo) CreateActionLog(ctx context.Context, entry model.ActionLogEntry) error {
	return nil
}

// messagesOf returns role/content pairs for assertions.
func (m *mockRepo) messagesOf(conversationID string) []model.ChatMessage {
	return m.messages[conversationID]
}

// scriptedModel replays a fixed sequence of turns. The last turn
// repeats if the orchestrator asks for more.
type scriptedModel struct {
	available bool
	turns     []assistant.ModelTurn
	err       error

	calls       int
	lastSystem  string
	lastHistory []model.ChatMessage
	lastResults []assistant.ToolResult
}

func (s *scriptedModel) IsAvailable() bool { return s.available }

func (s *scriptedModel) next() assistant.ModelTurn {
	i := s.calls
	if i >= len(s.turns) {
		i = len(s.turns) - 1
	}
	s.calls++
	return s.turns[i]
}

func (s *scriptedModel) Converse(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string) (assistant.ModelTurn, error) {
	s.lastSystem = systemPrompt
	s.lastHistory = history
	if s.err != nil {
		return assistant.ModelTurn{}, s.err
	}
	return s.next(), nil
}

func (s *scriptedModel) ContinueWithToolResults(ctx context.Context, systemPrompt string, history []model.ChatMessage, userText string, results []assistant.ToolResult) (assistant.ModelTurn, error) {
	s.lastSystem = systemPrompt
	s.lastHistory = history
	s.lastResults = results
	if s.err != nil {
		return assistant.ModelTurn{}, s.err
	}
	return s.next(), nil
}

// mockDispatcher records dispatches. Safe for concurrent use.
type mockDispatcher struct {
	mu      sync.Mutex
	results map[string]interface{}
	calls   []llmprovider.FunctionCall
	scopes  []model.Scope
	convIDs []string
}

func newMockDispatcher() *mockDispatcher {
	return &mockDispatcher{results: make(map[string]interface{})}
}

func (d *mockDispatcher) Dispatch(ctx context.Context, conversationID string, call llmprovider.FunctionCall) interface{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, call)
	d.scopes = append(d.scopes, model.ScopeFromContext(ctx))
	d.convIDs = append(d.convIDs, conversationID)
	if r, ok := d.results[call.Name]; ok {
		return r
	}
	return map[string]interface{}{"ok": true}
}

// mockProfiles returns a fixed profile per user.
type mockProfiles struct {
	profiles map[string]model.Profile
	err      error
}

func (m *mockProfiles) GetProfile(ctx context.Context, id string) (model.Profile, error) {
	if m.err != nil {
		return model.Profile{}, m.err
	}
	return m.profiles[id], nil
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func newTestUseCase(r *mockRepo, m assistant.ModelClient, d Dispatcher) *implUseCase {
	return New(r, m, d, nil, Config{}, noopLogger{})
}
