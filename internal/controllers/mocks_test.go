package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"icebreaker_server/internal/models"
	"icebreaker_server/internal/repository"
)

// fakeAnswers enforces the same (userId, activityId) uniqueness the mongo
// index does.
type fakeAnswers struct {
	mu      sync.Mutex
	answers map[string]models.UserActivity

	deleteByActivityErr error
}

func newFakeAnswers() *fakeAnswers {
	return &fakeAnswers{answers: make(map[string]models.UserActivity)}
}

func answerKey(userID, activityID string) string { return userID + "_" + activityID }

func (f *fakeAnswers) Insert(ctx context.Context, ua models.UserActivity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := answerKey(ua.UserID, ua.ActivityID)
	if _, ok := f.answers[k]; ok {
		return repository.ErrDuplicate
	}
	f.answers[k] = ua
	return nil
}

func (f *fakeAnswers) FindByUserAndActivity(ctx context.Context, userID, activityID string) (*models.UserActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ua, ok := f.answers[answerKey(userID, activityID)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ua, nil
}

func (f *fakeAnswers) ListAll(ctx context.Context) ([]models.UserActivity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.UserActivity
	for _, ua := range f.answers {
		all = append(all, ua)
	}
	return all, nil
}

func (f *fakeAnswers) UpdateNotes(ctx context.Context, userID, activityID, notes, groupID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := answerKey(userID, activityID)
	ua, ok := f.answers[k]
	if !ok {
		return repository.ErrNotFound
	}
	ua.Notes = notes
	if groupID != "" {
		ua.GroupID = groupID
	}
	f.answers[k] = ua
	return nil
}

func (f *fakeAnswers) Delete(ctx context.Context, userID, activityID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := answerKey(userID, activityID)
	if _, ok := f.answers[k]; !ok {
		return repository.ErrNotFound
	}
	delete(f.answers, k)
	return nil
}

func (f *fakeAnswers) DeleteByActivity(ctx context.Context, activityID string) error {
	if f.deleteByActivityErr != nil {
		return f.deleteByActivityErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, ua := range f.answers {
		if ua.ActivityID == activityID {
			delete(f.answers, k)
		}
	}
	return nil
}

// fakeActivities backs both the full store and the finder slice.
type fakeActivities struct {
	mu   sync.Mutex
	byID map[string]models.Activity
}

func newFakeActivities(activities ...models.Activity) *fakeActivities {
	f := &fakeActivities{byID: make(map[string]models.Activity)}
	for _, a := range activities {
		f.byID[a.ActivityID] = a
	}
	return f
}

func (f *fakeActivities) Insert(ctx context.Context, activity models.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[activity.ActivityID] = activity
	return nil
}

func (f *fakeActivities) FindByID(ctx context.Context, activityID string) (*models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[activityID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (f *fakeActivities) ListByEvent(ctx context.Context, eventID string) ([]models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Activity
	for _, a := range f.byID {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivities) Delete(ctx context.Context, activityID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[activityID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, activityID)
	return nil
}

// fakeCleaner is an activityCleaner with an injectable failure.
type fakeCleaner struct {
	err     error
	deleted []string
}

func (f *fakeCleaner) DeleteByActivity(ctx context.Context, activityID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, activityID)
	return nil
}

// fakeEvents serves both roster slices.
type fakeEvents struct {
	event *models.Event

	attached, detached   []string
	added, removed       []string
	removeParticipantErr error
}

func (f *fakeEvents) FindByID(ctx context.Context, eventID string) (*models.Event, error) {
	if f.event == nil || f.event.EventID != eventID {
		return nil, repository.ErrNotFound
	}
	event := *f.event
	return &event, nil
}

func (f *fakeEvents) AttachActivity(ctx context.Context, eventID, activityID string) error {
	f.attached = append(f.attached, activityID)
	return nil
}

func (f *fakeEvents) DetachActivity(ctx context.Context, eventID, activityID string) error {
	f.detached = append(f.detached, activityID)
	return nil
}

func (f *fakeEvents) AddParticipant(ctx context.Context, eventID, userID string) error {
	f.added = append(f.added, userID)
	return nil
}

func (f *fakeEvents) RemoveParticipant(ctx context.Context, eventID, userID string) error {
	if f.removeParticipantErr != nil {
		return f.removeParticipantErr
	}
	f.removed = append(f.removed, userID)
	return nil
}

type fakeUsers struct {
	mu   sync.Mutex
	byID map[string]models.User
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{byID: make(map[string]models.User)}
	for _, u := range users {
		f.byID[u.UserID] = u
	}
	return f
}

func (f *fakeUsers) Insert(ctx context.Context, user models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[user.UserID] = user
	return nil
}

func (f *fakeUsers) FindByID(ctx context.Context, userID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) Update(ctx context.Context, userID string, updates bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	if icon, ok := updates["icon"].(string); ok {
		u.Icon = icon
	}
	if desc, ok := updates["description"].(string); ok {
		u.Description = desc
	}
	f.byID[userID] = u
	return nil
}

func (f *fakeUsers) Delete(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, userID)
	return nil
}

// fakeRefresher records queued review refreshes.
type fakeRefresher struct {
	mu     sync.Mutex
	users  []string // "userId/eventId"
	events []string
}

func (f *fakeRefresher) RefreshLater(userID, eventID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID+"/"+eventID)
}

func (f *fakeRefresher) RefreshEventLater(eventID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, eventID)
}

type fakeReviewDeleter struct {
	err     error
	deleted []string
}

func (f *fakeReviewDeleter) Delete(ctx context.Context, userID, eventID string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID+"/"+eventID)
	return nil
}

// asUser plants the locals the JWT middleware would have set.
func asUser(uid, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", uid)
		c.Locals("role", role)
		return c.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}
