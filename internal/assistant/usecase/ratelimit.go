package usecase

import (
	"context"

	"campus-connect/internal/assistant"
	"campus-connect/internal/model"
)

// checkTurnLimit enforces the per-user turn ceiling. The count is
// derived from persisted messages, so there is no separate counter
// that can drift and an abandoned window resets itself.
func (uc *implUseCase) checkTurnLimit(ctx context.Context, sc model.Scope) error {
	since := uc.now().Add(-assistant.RateWindow)
	count, err := uc.repo.CountUserMessagesSince(ctx, sc.UserID, since)
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkTurnLimit CountUserMessagesSince: %v", err)
		return err
	}
	if count >= uc.cfg.RateLimitPerMin {
		return assistant.ErrRateLimited
	}
	return nil
}
