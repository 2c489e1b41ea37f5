package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
)

// Store slices consumed by the review service. The mongo repos satisfy them;
// tests swap in mocks.

type UserStore interface {
	FindInEvent(ctx context.Context, userID, eventID string) (*models.User, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.User, error)
}

type EventStore interface {
	FindByID(ctx context.Context, eventID string) (*models.Event, error)
}

type ActivityStore interface {
	FindByIDs(ctx context.Context, activityIDs []string) ([]models.Activity, error)
}

type AnswerStore interface {
	ListForUser(ctx context.Context, userID string, activityIDs []string) ([]models.UserActivity, error)
	ListForUsers(ctx context.Context, userIDs, activityIDs []string) ([]models.UserActivity, error)
}

type GroupStore interface {
	ListByActivities(ctx context.Context, activityIDs []string) ([]models.GroupActivity, error)
}

type ReviewStore interface {
	FindByUserAndEvent(ctx context.Context, userID, eventID string) (*models.Review, error)
	Upsert(ctx context.Context, review models.Review) error
}

// ReviewService assembles and maintains the denormalized per-(user, event)
// review documents.
type ReviewService struct {
	Users      UserStore
	Events     EventStore
	Activities ActivityStore
	Answers    AnswerStore
	Groups     GroupStore
	Reviews    ReviewStore
	Tasks      *TaskRunner
}

// BuildReview assembles a review from current source data without persisting
// it. Fails if the user is not registered to the event or the event is gone.
func (s *ReviewService) BuildReview(ctx context.Context, userID, eventID string) (*models.Review, error) {
	var (
		user  *models.User
		event *models.Event
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		u, err := s.Users.FindInEvent(egCtx, userID, eventID)
		if err != nil {
			return fmt.Errorf("user %s not found in event %s: %w", userID, eventID, err)
		}
		user = u
		return nil
	})
	eg.Go(func() error {
		e, err := s.Events.FindByID(egCtx, eventID)
		if err != nil {
			return fmt.Errorf("event %s not found: %w", eventID, err)
		}
		event = e
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	activityIDs := event.ActivityIDs
	if len(activityIDs) == 0 {
		review := models.NewReview(userID, eventID, event.Summary(), nil)
		return &review, nil
	}

	// Batch everything: one round trip per collection, never one per
	// activity.
	var (
		activities []models.Activity
		answers    []models.UserActivity
	)
	eg, egCtx = errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		activities, err = s.Activities.FindByIDs(egCtx, activityIDs)
		return err
	})
	eg.Go(func() error {
		var err error
		answers, err = s.Answers.ListForUser(egCtx, userID, activityIDs)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	activityByID := make(map[string]models.Activity, len(activities))
	pairedIDs := make([]string, 0, len(activities))
	for _, a := range activities {
		activityByID[a.ActivityID] = a
		if a.Paired() {
			pairedIDs = append(pairedIDs, a.ActivityID)
		}
	}

	answerByActivity := make(map[string]models.UserActivity, len(answers))
	for _, ua := range answers {
		answerByActivity[ua.ActivityID] = ua
	}

	groupByActivity := make(map[string]models.GroupActivity)
	if len(pairedIDs) > 0 {
		groupActivities, err := s.Groups.ListByActivities(ctx, pairedIDs)
		if err != nil {
			return nil, err
		}
		for _, ga := range groupActivities {
			groupByActivity[ga.ActivityID] = ga
		}
	}

	// First pass: entries in the event's activityIds order. Partner notes
	// and emails stay nil until the second batch pass below.
	entries := make([]models.ReviewActivity, 0, len(activityIDs))
	partnerByEntry := make(map[int]string) // entry index -> partner userId
	partnerIDSet := make(map[string]struct{})

	for _, activityID := range activityIDs {
		activity, ok := activityByID[activityID]
		if !ok {
			// Dangling id on the event; nothing to review.
			continue
		}

		entry := models.ReviewActivity{
			ActivityID: activity.ActivityID,
			Type:       activity.Kind(),
			Title:      activity.Title,
			Question:   activity.Question,
		}
		if ua, ok := answerByActivity[activity.ActivityID]; ok {
			notes := ua.Notes
			entry.SelfAnswer = &notes
		}

		if activity.Paired() {
			if ga, ok := groupByActivity[activity.ActivityID]; ok {
				if group := ga.GroupOf(user.UserID); group != nil {
					color := group.GroupColor
					number := group.GroupNumber
					entry.GroupColor = &color
					entry.GroupNumber = &number

					if partner := group.PartnerOf(user.UserID); partner != nil {
						entry.PartnerAnswer = &models.PartnerAnswer{
							Name:        partner.Name,
							Icon:        partner.Icon,
							Description: partner.Description,
						}
						partnerByEntry[len(entries)] = partner.UserID
						partnerIDSet[partner.UserID] = struct{}{}
					}
				}
			}
		}

		entries = append(entries, entry)
	}

	// Second pass: one batch fetch for every partner's answers and emails.
	if len(partnerIDSet) > 0 {
		partnerIDs := make([]string, 0, len(partnerIDSet))
		for id := range partnerIDSet {
			partnerIDs = append(partnerIDs, id)
		}

		var (
			partnerAnswers []models.UserActivity
			partnerUsers   []models.User
		)
		eg, egCtx = errgroup.WithContext(ctx)
		eg.Go(func() error {
			var err error
			partnerAnswers, err = s.Answers.ListForUsers(egCtx, partnerIDs, activityIDs)
			return err
		})
		eg.Go(func() error {
			var err error
			partnerUsers, err = s.Users.FindByIDs(egCtx, partnerIDs)
			return err
		})
		if err := eg.Wait(); err != nil {
			return nil, err
		}

		answerByUserActivity := make(map[string]models.UserActivity, len(partnerAnswers))
		for _, ua := range partnerAnswers {
			answerByUserActivity[ua.UserID+"_"+ua.ActivityID] = ua
		}
		userByID := make(map[string]models.User, len(partnerUsers))
		for _, u := range partnerUsers {
			userByID[u.UserID] = u
		}

		for i, partnerID := range partnerByEntry {
			pa := entries[i].PartnerAnswer
			if ua, ok := answerByUserActivity[partnerID+"_"+entries[i].ActivityID]; ok {
				notes := ua.Notes
				pa.Notes = &notes
			}
			if pu, ok := userByID[partnerID]; ok {
				email := pu.Email
				pa.Email = &email
			}
		}
	}

	review := models.NewReview(userID, eventID, event.Summary(), entries)
	return &review, nil
}

// RefreshReview rebuilds and upserts one user's review. Two concurrent
// refreshes may race; the later write wins, which is fine because a refresh
// is idempotent over a stable snapshot.
func (s *ReviewService) RefreshReview(ctx context.Context, userID, eventID string) error {
	review, err := s.BuildReview(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if err := s.Reviews.Upsert(ctx, *review); err != nil {
		return fmt.Errorf("upsert review for user %s in event %s: %w", userID, eventID, err)
	}
	return nil
}

// GetOrCreateReview reads the cached review and lazily populates it on a
// miss. First-request latency is the accepted cost.
func (s *ReviewService) GetOrCreateReview(ctx context.Context, userID, eventID string) (*models.Review, error) {
	review, err := s.Reviews.FindByUserAndEvent(ctx, userID, eventID)
	if err == nil {
		return review, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.RefreshReview(ctx, userID, eventID); err != nil {
		return nil, err
	}
	return s.Reviews.FindByUserAndEvent(ctx, userID, eventID)
}

// RefreshLater queues a single-user refresh off the request path.
func (s *ReviewService) RefreshLater(userID, eventID string) {
	s.Tasks.Go("refresh-review", func(ctx context.Context) error {
		return s.RefreshReview(ctx, userID, eventID)
	})
}

// RefreshUsersLater queues refreshes for a known set of users, one task per
// user since each targets a distinct document.
func (s *ReviewService) RefreshUsersLater(eventID string, userIDs []string) {
	for _, userID := range userIDs {
		s.RefreshLater(userID, eventID)
	}
}

// RefreshEventLater queues a refresh of every participant currently
// registered to the event; used when the event's activity roster or current
// activity changes.
func (s *ReviewService) RefreshEventLater(eventID string) {
	s.Tasks.Go("refresh-event-reviews", func(ctx context.Context) error {
		users, err := s.Users.ListByEvent(ctx, eventID)
		if err != nil {
			return err
		}
		for _, u := range users {
			if err := s.RefreshReview(ctx, u.UserID, eventID); err != nil {
				// Keep going; one broken review must not starve the rest.
				log.Printf("❌ refresh review for user %s in event %s: %v", u.UserID, eventID, err)
			}
		}
		return nil
	})
}
