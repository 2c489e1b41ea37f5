package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"icebreaker_server/internal/models"
)

func newTestGroupingService(store *memStore, fake *fakeBroadcaster) *GroupingService {
	return &GroupingService{
		Users:    store,
		Events:   store,
		Groups:   store,
		Reviews:  newTestReviewService(store),
		Notifier: &Notifier{Server: fake},
		Rand:     rand.New(rand.NewSource(42)),
	}
}

func TestRunGroupingPairsEveryone(t *testing.T) {
	event := testEvent()
	store := newMemStore(event)
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("u%d", i)
		store.addUser(testUser(id, event.EventID, "User "+id, id+"@example.com"))
	}

	fake := &fakeBroadcaster{}
	svc := newTestGroupingService(store, fake)

	ga, created, err := svc.RunGrouping(context.Background(), event.EventID, "act-1", nil)
	if err != nil {
		t.Fatalf("RunGrouping: %v", err)
	}
	if !created {
		t.Error("first run should create the grouping document")
	}
	if len(ga.Groups) != 3 {
		t.Fatalf("5 participants should make 3 groups, got %d", len(ga.Groups))
	}

	seen := make(map[string]int)
	singletons := 0
	for i, g := range ga.Groups {
		if g.GroupNumber != i+1 {
			t.Errorf("group %d numbered %d", i, g.GroupNumber)
		}
		if want := models.GroupColors[i%len(models.GroupColors)]; g.GroupColor != want {
			t.Errorf("group %d color = %q, want %q", i+1, g.GroupColor, want)
		}
		if len(g.Participants) < 1 || len(g.Participants) > 2 {
			t.Errorf("group %d has %d participants", i+1, len(g.Participants))
		}
		if len(g.Participants) == 1 {
			singletons++
		}
		for _, p := range g.Participants {
			seen[p.UserID]++
		}
	}
	if len(seen) != 5 {
		t.Errorf("%d distinct participants grouped, want 5", len(seen))
	}
	for uid, n := range seen {
		if n != 1 {
			t.Errorf("user %s appears %d times", uid, n)
		}
	}
	if singletons != 1 {
		t.Errorf("odd count should leave exactly one singleton, got %d", singletons)
	}

	if len(store.attachedActivities) != 1 || store.attachedActivities[0] != "act-1" {
		t.Errorf("activity not attached to event: %v", store.attachedActivities)
	}
	if !fake.sent(event.EventID, "groupsCreated") {
		t.Error("groupsCreated was not broadcast to the event room")
	}

	// Pairing queues a review refresh for everyone fetched.
	svc.Reviews.Tasks.Drain()
	for uid := range seen {
		if _, err := store.FindByUserAndEvent(context.Background(), uid, event.EventID); err != nil {
			t.Errorf("review for %s not refreshed: %v", uid, err)
		}
	}
}

func TestRunGroupingEvenCount(t *testing.T) {
	event := testEvent()
	store := newMemStore(event)
	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("u%d", i)
		store.addUser(testUser(id, event.EventID, "User "+id, id+"@example.com"))
	}

	svc := newTestGroupingService(store, &fakeBroadcaster{})
	ga, _, err := svc.RunGrouping(context.Background(), event.EventID, "act-1", nil)
	if err != nil {
		t.Fatalf("RunGrouping: %v", err)
	}
	if len(ga.Groups) != 2 {
		t.Fatalf("4 participants should make 2 groups, got %d", len(ga.Groups))
	}
	for i, g := range ga.Groups {
		if len(g.Participants) != 2 {
			t.Errorf("group %d has %d participants, want 2", i+1, len(g.Participants))
		}
	}
	svc.Reviews.Tasks.Drain()
}

func TestRunGroupingSingleParticipant(t *testing.T) {
	event := testEvent()
	store := newMemStore(event)
	store.addUser(testUser("u1", event.EventID, "Ada", "ada@example.com"))

	svc := newTestGroupingService(store, &fakeBroadcaster{})
	ga, _, err := svc.RunGrouping(context.Background(), event.EventID, "act-1", nil)
	if err != nil {
		t.Fatalf("RunGrouping: %v", err)
	}
	if len(ga.Groups) != 1 || len(ga.Groups[0].Participants) != 1 {
		t.Fatalf("one participant should make one singleton group, got %+v", ga.Groups)
	}
	if ga.Groups[0].GroupColor != "red" {
		t.Errorf("first group color = %q, want red", ga.Groups[0].GroupColor)
	}
	svc.Reviews.Tasks.Drain()
}

func TestRunGroupingNoParticipants(t *testing.T) {
	event := testEvent()
	store := newMemStore(event)

	svc := newTestGroupingService(store, &fakeBroadcaster{})
	_, _, err := svc.RunGrouping(context.Background(), event.EventID, "act-1", nil)
	if !errors.Is(err, ErrNoParticipants) {
		t.Fatalf("err = %v, want ErrNoParticipants", err)
	}
	if len(store.groups) != 0 {
		t.Error("no grouping document may be written for an empty event")
	}
}

func TestRunGroupingRerunReplacesInPlace(t *testing.T) {
	event := testEvent()
	store := newMemStore(event)
	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("u%d", i)
		store.addUser(testUser(id, event.EventID, "User "+id, id+"@example.com"))
	}

	svc := newTestGroupingService(store, &fakeBroadcaster{})
	ctx := context.Background()

	share := true
	first, created, err := svc.RunGrouping(ctx, event.EventID, "act-1", &share)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if !created || !first.Share {
		t.Fatalf("first run: created=%v share=%v", created, first.Share)
	}

	second, created, err := svc.RunGrouping(ctx, event.EventID, "act-1", nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if created {
		t.Error("re-run must replace, not create")
	}
	if second.GroupActivityID != first.GroupActivityID {
		t.Errorf("grouping id changed on re-run: %s -> %s", first.GroupActivityID, second.GroupActivityID)
	}
	if !second.Share {
		t.Error("share flag must survive a re-run that does not set it")
	}

	stored, err := store.FindByActivity(ctx, "act-1")
	if err != nil {
		t.Fatalf("read stored grouping: %v", err)
	}
	if len(store.groups) != 1 {
		t.Errorf("expected one grouping document, got %d", len(store.groups))
	}
	if !stored.Active {
		t.Error("stored grouping should be active after a re-run")
	}
	svc.Reviews.Tasks.Drain()
}
