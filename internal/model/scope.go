package model

import "context"

// Scope carries the identity of the caller through use cases and tools.
// Every operation is executed on behalf of exactly one platform user.
type Scope struct {
	UserID string
}

type scopeCtxKey struct{}

// SetScopeToContext embeds the caller scope so tool handlers can
// recover it without widening the Tool interface.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// ScopeFromContext returns the embedded scope, or a zero Scope.
func ScopeFromContext(ctx context.Context) Scope {
	sc, _ := ctx.Value(scopeCtxKey{}).(Scope)
	return sc
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
