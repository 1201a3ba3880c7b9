package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-connect/internal/model"
	"campus-connect/pkg/llmprovider"
	pkgLog "campus-connect/pkg/log"

	"github.com/google/uuid"
)

// AuditLogger records every tool invocation made during a conversation.
type AuditLogger interface {
	CreateActionLog(ctx context.Context, entry model.ActionLogEntry) error
}

// Dispatcher resolves tool calls against the registry and executes them.
// A tool failure never escapes the dispatch: errors, panics and unknown
// tool names all come back as structured results the model can read.
type Dispatcher struct {
	registry *ToolRegistry
	audit    AuditLogger
	l        pkgLog.Logger
}

// NewDispatcher creates a new dispatcher. audit may be nil.
func NewDispatcher(registry *ToolRegistry, audit AuditLogger, l pkgLog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		audit:    audit,
		l:        l,
	}
}

// Dispatch executes a single tool call and returns its result payload.
func (d *Dispatcher) Dispatch(ctx context.Context, conversationID string, call llmprovider.FunctionCall) interface{} {
	tool, ok := d.registry.Get(call.Name)
	if !ok {
		d.l.Errorf(ctx, "Tool %s not found", call.Name)
		result := failureResult(fmt.Sprintf("unknown tool: %s", call.Name))
		d.record(ctx, conversationID, call, result, false)
		return result
	}

	d.l.Infof(ctx, "Dispatching tool: %s with args: %+v", call.Name, call.Args)

	result, success := d.execute(ctx, tool, call.Args)
	d.record(ctx, conversationID, call, result, success)
	return result
}

// failureResult is the shape every failed invocation comes back in.
func failureResult(msg string) map[string]interface{} {
	return map[string]interface{}{"success": false, "error": msg}
}

// normalizeResult guarantees a success flag on every result so the
// model and the audit log see a uniform shape. Tools may set the flag
// themselves to report a domain-level failure.
func normalizeResult(res interface{}) (interface{}, bool) {
	m, ok := res.(map[string]interface{})
	if !ok {
		return map[string]interface{}{"success": true, "data": res}, true
	}
	if flag, ok := m["success"].(bool); ok {
		return m, flag
	}
	m["success"] = true
	return m, true
}

func (d *Dispatcher) execute(ctx context.Context, tool Tool, args map[string]interface{}) (result interface{}, success bool) {
	defer func() {
		if r := recover(); r != nil {
			d.l.Errorf(ctx, "Tool %s panicked: %v", tool.Name(), r)
			result = failureResult(fmt.Sprintf("tool %s failed", tool.Name()))
			success = false
		}
	}()

	res, err := tool.Execute(ctx, args)
	if err != nil {
		d.l.Errorf(ctx, "Tool %s failed: %v", tool.Name(), err)
		return failureResult(err.Error()), false
	}
	return normalizeResult(res)
}

func (d *Dispatcher) record(ctx context.Context, conversationID string, call llmprovider.FunctionCall, result interface{}, success bool) {
	if d.audit == nil {
		return
	}

	entry := model.ActionLogEntry{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		ToolName:       call.Name,
		Arguments:      compactJSON(call.Args),
		Result:         compactJSON(result),
		Success:        success,
		CreatedAt:      time.Now(),
	}
	if err := d.audit.CreateActionLog(ctx, entry); err != nil {
		// Auditing is best-effort, the turn goes on.
		d.l.Warnf(ctx, "Failed to record action log for tool %s: %v", call.Name, err)
	}
}

func compactJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
