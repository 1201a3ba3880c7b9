package usecase

import (
	"context"
	"strings"

	"campus-connect/internal/model"
	"campus-connect/internal/social"
	repo "campus-connect/internal/social/repository"
)

// FindUsers searches the user directory. Results are cached briefly
// because the assistant tends to repeat the same lookup within a turn.
func (uc *implUseCase) FindUsers(ctx context.Context, sc model.Scope, input social.FindUsersInput) (social.FindUsersOutput, error) {
	if input.NamePart == "" && input.CareerPart == "" {
		return social.FindUsersOutput{}, social.ErrEmptyFilter
	}

	cacheKey := strings.ToLower(input.NamePart) + "|" + strings.ToLower(input.CareerPart)
	if cached, ok := uc.userCache.Get(cacheKey); ok {
		return social.FindUsersOutput{Users: cached, Count: len(cached)}, nil
	}

	users, err := uc.repo.ListProfiles(ctx, repo.ListProfilesOptions{
		NamePart:   input.NamePart,
		CareerPart: input.CareerPart,
		Limit:      social.MaxUserResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindUsers ListProfiles: %v", err)
		return social.FindUsersOutput{}, err
	}

	uc.userCache.Add(cacheKey, users)
	return social.FindUsersOutput{Users: users, Count: len(users)}, nil
}

// FindPosts searches the discussion feed.
func (uc *implUseCase) FindPosts(ctx context.Context, sc model.Scope, input social.FindPostsInput) (social.FindPostsOutput, error) {
	posts, err := uc.repo.ListPosts(ctx, repo.ListPostsOptions{
		Query:      input.Query,
		AuthorName: input.AuthorName,
		Limit:      social.MaxPostResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindPosts ListPosts: %v", err)
		return social.FindPostsOutput{}, err
	}
	return social.FindPostsOutput{Posts: posts, Count: len(posts)}, nil
}

// FindGroups searches interest groups.
func (uc *implUseCase) FindGroups(ctx context.Context, sc model.Scope, input social.FindGroupsInput) (social.FindGroupsOutput, error) {
	groups, err := uc.repo.ListGroups(ctx, repo.ListGroupsOptions{
		Query: input.Query,
		Limit: social.MaxGroupResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindGroups ListGroups: %v", err)
		return social.FindGroupsOutput{}, err
	}
	return social.FindGroupsOutput{Groups: groups, Count: len(groups)}, nil
}

// FindUpcomingEvents searches events that have not started yet.
func (uc *implUseCase) FindUpcomingEvents(ctx context.Context, sc model.Scope, input social.FindEventsInput) (social.FindEventsOutput, error) {
	events, err := uc.repo.ListUpcomingEvents(ctx, repo.ListEventsOptions{
		Query: input.Query,
		After: uc.now(),
		Limit: social.MaxEventResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindUpcomingEvents ListUpcomingEvents: %v", err)
		return social.FindEventsOutput{}, err
	}
	return social.FindEventsOutput{Events: events, Count: len(events)}, nil
}
