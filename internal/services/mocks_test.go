package services

import (
	"context"
	"sync"
	"time"

	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
)

func newTestReviewService(store *memStore) *ReviewService {
	return &ReviewService{
		Users:      store,
		Events:     store,
		Activities: activityFinder{store},
		Answers:    store,
		Groups:     store,
		Reviews:    store,
		Tasks:      NewTaskRunner(time.Second),
	}
}

// memStore is an in-memory stand-in for every repo interface the services
// consume. One instance backs all of them so tests wire a whole world from a
// single fixture.
type memStore struct {
	mu sync.Mutex

	event      *models.Event
	users      []models.User
	activities map[string]models.Activity
	answers    map[string]models.UserActivity  // userId_activityId
	groups     map[string]models.GroupActivity // activityId
	reviews    map[string]models.Review        // userId_eventId

	attachedActivities []string
}

func newMemStore(event *models.Event) *memStore {
	return &memStore{
		event:      event,
		activities: make(map[string]models.Activity),
		answers:    make(map[string]models.UserActivity),
		groups:     make(map[string]models.GroupActivity),
		reviews:    make(map[string]models.Review),
	}
}

func (m *memStore) addUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

func (m *memStore) addActivity(a models.Activity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activities[a.ActivityID] = a
	m.event.ActivityIDs = append(m.event.ActivityIDs, a.ActivityID)
}

func (m *memStore) addAnswer(ua models.UserActivity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers[ua.UserID+"_"+ua.ActivityID] = ua
}

func (m *memStore) removeAnswer(userID, activityID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.answers, userID+"_"+activityID)
}

// UserStore

func (m *memStore) FindInEvent(ctx context.Context, userID, eventID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UserID == userID && u.EventID == eventID {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memStore) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}
	var out []models.User
	for _, u := range m.users {
		if _, ok := wanted[u.UserID]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memStore) ListByEvent(ctx context.Context, eventID string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		if u.EventID == eventID {
			out = append(out, u)
		}
	}
	return out, nil
}

// EventStore

func (m *memStore) FindByID(ctx context.Context, eventID string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.event == nil || m.event.EventID != eventID {
		return nil, repository.ErrNotFound
	}
	event := *m.event
	return &event, nil
}

// ActivityStore. FindByIDs would collide with the user lookup of the same
// name, so the activity side lives on a wrapper.

type activityFinder struct {
	m *memStore
}

func (f activityFinder) FindByIDs(ctx context.Context, activityIDs []string) ([]models.Activity, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	var out []models.Activity
	for _, aid := range activityIDs {
		if a, ok := f.m.activities[aid]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// AnswerStore

func (m *memStore) ListForUser(ctx context.Context, userID string, activityIDs []string) ([]models.UserActivity, error) {
	return m.ListForUsers(ctx, []string{userID}, activityIDs)
}

func (m *memStore) ListForUsers(ctx context.Context, userIDs, activityIDs []string) ([]models.UserActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.UserActivity
	for _, uid := range userIDs {
		for _, aid := range activityIDs {
			if ua, ok := m.answers[uid+"_"+aid]; ok {
				out = append(out, ua)
			}
		}
	}
	return out, nil
}

// GroupStore / GroupingStore

func (m *memStore) ListByActivities(ctx context.Context, activityIDs []string) ([]models.GroupActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.GroupActivity
	for _, aid := range activityIDs {
		if ga, ok := m.groups[aid]; ok {
			out = append(out, ga)
		}
	}
	return out, nil
}

func (m *memStore) FindByActivity(ctx context.Context, activityID string) (*models.GroupActivity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ga, ok := m.groups[activityID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ga, nil
}

func (m *memStore) Insert(ctx context.Context, ga models.GroupActivity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[ga.ActivityID] = ga
	return nil
}

func (m *memStore) ReplaceGroups(ctx context.Context, activityID string, groups []models.GroupItem, share bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ga, ok := m.groups[activityID]
	if !ok {
		return repository.ErrNotFound
	}
	ga.Groups = groups
	ga.Active = true
	ga.Share = share
	m.groups[activityID] = ga
	return nil
}

// EventAttacher

func (m *memStore) AttachActivity(ctx context.Context, eventID, activityID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attachedActivities = append(m.attachedActivities, activityID)
	return nil
}

// ReviewStore

func (m *memStore) FindByUserAndEvent(ctx context.Context, userID, eventID string) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.reviews[userID+"_"+eventID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

// Upsert mirrors the $setOnInsert behavior of the mongo repo: the id and
// createdAt of an existing document survive the rewrite.
func (m *memStore) Upsert(ctx context.Context, review models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := review.UserID + "_" + review.EventID
	if prev, ok := m.reviews[key]; ok {
		review.ReviewID = prev.ReviewID
		review.CreatedAt = prev.CreatedAt
	}
	m.reviews[key] = review
	return nil
}

// fakeBroadcaster records every room broadcast.
type fakeBroadcaster struct {
	mu    sync.Mutex
	calls []broadcastCall
}

type broadcastCall struct {
	Room  string
	Event string
}

func (f *fakeBroadcaster) BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, broadcastCall{Room: room, Event: event})
	return true
}

func (f *fakeBroadcaster) sent(room, event string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Room == room && c.Event == event {
			return true
		}
	}
	return false
}
