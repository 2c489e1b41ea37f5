package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
)

type GroupingStore interface {
	FindByActivity(ctx context.Context, activityID string) (*models.GroupActivity, error)
	Insert(ctx context.Context, ga models.GroupActivity) error
	ReplaceGroups(ctx context.Context, activityID string, groups []models.GroupItem, share bool) error
}

type EventAttacher interface {
	AttachActivity(ctx context.Context, eventID, activityID string) error
}

// GroupingService partitions an event's participants into pairs for one
// activity and fans the result out to reviews and connected clients.
type GroupingService struct {
	Users    UserStore
	Events   EventAttacher
	Groups   GroupingStore
	Reviews  *ReviewService
	Notifier *Notifier

	// Rand seeds the shuffle; nil uses the shared source. Tests inject a
	// fixed seed for a stable outcome.
	Rand *rand.Rand
}

// RunGrouping shuffles the event's participants and chunks them into groups
// of two (a trailing singleton when the count is odd). Re-running replaces
// the previous grouping in place; each run is a fresh shuffle. The second
// return value reports whether a new grouping document was created.
func (s *GroupingService) RunGrouping(ctx context.Context, eventID, activityID string, share *bool) (*models.GroupActivity, bool, error) {
	users, err := s.Users.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, false, err
	}
	if len(users) == 0 {
		return nil, false, ErrNoParticipants
	}

	existing, err := s.Groups.FindByActivity(ctx, activityID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	groups := s.pairUsers(users)

	shareVal := false
	if existing != nil {
		shareVal = existing.Share
	}
	if share != nil {
		shareVal = *share
	}

	var result models.GroupActivity
	created := existing == nil
	if existing != nil {
		if err := s.Groups.ReplaceGroups(ctx, activityID, groups, shareVal); err != nil {
			return nil, false, err
		}
		result = *existing
		result.Groups = groups
		result.Active = true
		result.Share = shareVal
	} else {
		result = models.NewGroupActivity(activityID, groups, shareVal)
		if err := s.Groups.Insert(ctx, result); err != nil {
			return nil, false, err
		}
	}

	if err := s.Events.AttachActivity(ctx, eventID, activityID); err != nil {
		return nil, false, fmt.Errorf("attach activity %s to event %s: %w", activityID, eventID, err)
	}

	s.Notifier.NotifyGroupsCreated(eventID, activityID)

	// Group membership feeds partner entries, so every fetched
	// participant's review is stale now.
	userIDs := make([]string, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.UserID)
	}
	s.Reviews.RefreshUsersLater(eventID, userIDs)

	return &result, created, nil
}

// pairUsers does a Fisher-Yates shuffle and chunks the result in order.
func (s *GroupingService) pairUsers(users []models.User) []models.GroupItem {
	shuffled := make([]models.User, len(users))
	copy(shuffled, users)

	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if s.Rand != nil {
		s.Rand.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}

	var groups []models.GroupItem
	for i := 0; i < len(shuffled); i += 2 {
		end := i + 2
		if end > len(shuffled) {
			end = len(shuffled)
		}

		participants := make([]models.Participant, 0, end-i)
		for _, u := range shuffled[i:end] {
			participants = append(participants, u.Participant())
		}

		number := len(groups) + 1
		groups = append(groups, models.GroupItem{
			GroupID:      uuid.NewString(),
			GroupNumber:  number,
			GroupColor:   models.GroupColors[(number-1)%len(models.GroupColors)],
			Participants: participants,
		})
	}
	return groups
}
