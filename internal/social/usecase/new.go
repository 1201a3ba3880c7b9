package usecase

import (
	"context"
	"time"

	"campus-connect/internal/model"
	"campus-connect/internal/social/repository"
	"campus-connect/pkg/gcalendar"
	"campus-connect/pkg/log"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CalendarClient mirrors event registrations into an external calendar.
// Implemented by pkg/gcalendar. May be nil when not configured.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// CalendarConfig holds the target calendar for mirrored registrations.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}

// implUseCase is the private implementation of social.UseCase.
type implUseCase struct {
	repo        repository.Repository
	calendar    CalendarClient
	calendarCfg CalendarConfig
	userCache   *expirable.LRU[string, []model.Profile]
	l           log.Logger
	now         func() time.Time
}

// New creates a new social UseCase implementation. calendar may be nil.
func New(repo repository.Repository, calendar CalendarClient, calendarCfg CalendarConfig, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		calendar:    calendar,
		calendarCfg: calendarCfg,
		userCache: expirable.NewLRU[string, []model.Profile](
			256,            // Max cached directory queries
			nil,            // No eviction callback
			30*time.Second, // TTL: directory data goes stale fast
		),
		l:   l,
		now: time.Now,
	}
}
