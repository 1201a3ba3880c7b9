package usecase

import (
	"context"
	"strings"
	"sync"

	"campus-connect/internal/assistant"
	"campus-connect/internal/assistant/llm"
	repo "campus-connect/internal/assistant/repository"
	"campus-connect/internal/model"
	"campus-connect/pkg/llmprovider"
)

const (
	titleLimit = 50

	// fallbackReply is persisted when the model ends a turn without text.
	fallbackReply = "No pude generar una respuesta. Intenta reformular tu mensaje."
)

// SendMessage drives one full user turn: rate check, conversation
// resolution, the bounded tool-use loop, and persistence of the final
// assistant reply.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input assistant.SendMessageInput) (assistant.SendMessageOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return assistant.SendMessageOutput{}, assistant.ErrEmptyMessage
	}

	if !uc.modelClient.IsAvailable() {
		return assistant.SendMessageOutput{}, assistant.ErrModelUnavailable
	}

	if err := uc.checkTurnLimit(ctx, sc); err != nil {
		return assistant.SendMessageOutput{}, err
	}

	conv, err := uc.resolveConversation(ctx, sc, input.ConversationID, content)
	if err != nil {
		return assistant.SendMessageOutput{}, err
	}

	// History is captured before the incoming message is appended, so
	// the model sees it once, as the new utterance.
	history, err := uc.repo.GetRecentMessages(ctx, conv.ID, uc.cfg.HistoryLimit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage GetRecentMessages: %v", err)
		return assistant.SendMessageOutput{}, err
	}

	if _, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ConversationID: conv.ID,
		Role:           model.RoleUser,
		Content:        content,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage: %v", err)
		return assistant.SendMessageOutput{}, err
	}

	systemPrompt := uc.systemPromptFor(ctx, sc)

	turnCtx := model.SetScopeToContext(ctx, sc)
	if uc.cfg.TurnTimeout > 0 {
		var cancel context.CancelFunc
		turnCtx, cancel = context.WithTimeout(turnCtx, uc.cfg.TurnTimeout)
		defer cancel()
	}

	text, actions, err := uc.runToolLoop(turnCtx, conv.ID, systemPrompt, history, content)
	if err != nil {
		// The user message stays persisted; a retried turn resumes from it.
		uc.l.Errorf(ctx, "uc.SendMessage model call failed: %v", err)
		return assistant.SendMessageOutput{}, assistant.ErrModelFailure
	}

	if text == "" {
		text = fallbackReply
	}

	msg, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ConversationID: conv.ID,
		Role:           model.RoleAssistant,
		Content:        text,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage assistant: %v", err)
		return assistant.SendMessageOutput{}, err
	}

	if err := uc.repo.TouchConversation(ctx, conv.ID); err != nil {
		uc.l.Warnf(ctx, "uc.SendMessage TouchConversation: %v", err)
	}

	return assistant.SendMessageOutput{
		ConversationID:  conv.ID,
		Message:         msg,
		ActionsExecuted: actions,
	}, nil
}

// runToolLoop performs at most MaxToolRounds tool-call rounds and
// returns the model's final text. If the cap is hit while the model
// still wants tools, whatever text it produced is returned instead of
// an error.
func (uc *implUseCase) runToolLoop(ctx context.Context, conversationID, systemPrompt string, history []model.ChatMessage, userText string) (string, int, error) {
	turn, err := uc.modelClient.Converse(ctx, systemPrompt, history, userText)
	if err != nil {
		return "", 0, err
	}

	var results []assistant.ToolResult
	actions := 0

	for round := 0; round < uc.cfg.MaxToolRounds && len(turn.ToolCalls) > 0; round++ {
		roundResults := uc.executeRound(ctx, conversationID, turn.ToolCalls)
		actions += len(roundResults)
		results = append(results, roundResults...)

		turn, err = uc.modelClient.ContinueWithToolResults(ctx, systemPrompt, history, userText, results)
		if err != nil {
			return "", actions, err
		}
	}

	if len(turn.ToolCalls) > 0 {
		uc.l.Warnf(ctx, "Tool-call cap reached for conversation %s, finalizing", conversationID)
	}

	return strings.TrimSpace(turn.Text), actions, nil
}

// executeRound dispatches every call of one round. Calls have no data
// dependency on each other, so they run concurrently; the dispatcher
// isolates each failure.
func (uc *implUseCase) executeRound(ctx context.Context, conversationID string, calls []llmprovider.FunctionCall) []assistant.ToolResult {
	results := make([]assistant.ToolResult, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call llmprovider.FunctionCall) {
			defer wg.Done()
			res := uc.dispatcher.Dispatch(ctx, conversationID, call)
			results[i] = assistant.ToolResult{Name: call.Name, Args: call.Args, Result: res}
		}(i, call)
	}
	wg.Wait()

	return results
}

func (uc *implUseCase) resolveConversation(ctx context.Context, sc model.Scope, id, firstMessage string) (model.Conversation, error) {
	if id != "" {
		conv, err := uc.repo.GetConversation(ctx, sc.UserID, id)
		if err != nil {
			uc.l.Errorf(ctx, "uc.SendMessage GetConversation: %v", err)
			return model.Conversation{}, err
		}
		if conv.ID == "" {
			return model.Conversation{}, assistant.ErrConversationNotFound
		}
		return conv, nil
	}

	conv, err := uc.repo.CreateConversation(ctx, repo.CreateConversationOptions{
		UserID: sc.UserID,
		Title:  makeTitle(firstMessage),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateConversation: %v", err)
		return model.Conversation{}, err
	}
	return conv, nil
}

// makeTitle derives the conversation title from the first message:
// the first 50 characters, with an ellipsis when truncated.
func makeTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleLimit {
		return content
	}
	return string(runes[:titleLimit]) + "..."
}

func (uc *implUseCase) systemPromptFor(ctx context.Context, sc model.Scope) string {
	career := ""
	if uc.profiles != nil {
		profile, err := uc.profiles.GetProfile(ctx, sc.UserID)
		if err != nil {
			uc.l.Warnf(ctx, "uc.SendMessage GetProfile: %v", err)
		} else {
			career = profile.Career
		}
	}
	return llm.BuildSystemPrompt(career)
}
