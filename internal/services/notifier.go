package services

import (
	"log"
	"time"
)

// Broadcaster is the slice of the socket.io server the notifier uses.
type Broadcaster interface {
	BroadcastToRoom(namespace string, room, event string, args ...interface{}) bool
}

// Notifier pushes lightweight change events to every client subscribed to an
// event's room. Delivery is best effort: no persistence, no replay, and a
// broadcast failure never reaches the request that triggered it. Late
// joiners re-fetch state over HTTP instead.
type Notifier struct {
	Server Broadcaster
}

func (n *Notifier) emit(eventID, name string, payload map[string]interface{}) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("❌ socket emit %q panicked: %v", name, rec)
		}
	}()

	if n == nil || n.Server == nil {
		log.Printf("⚠️ socket server not initialized, dropping %q for event %s", name, eventID)
		return
	}
	n.Server.BroadcastToRoom("/", eventID, name, payload)
	log.Printf("📡 emitted %q to event %s", name, eventID)
}

// NotifyActivityChanged tells clients the event's live activity moved.
func (n *Notifier) NotifyActivityChanged(eventID, activityID string) {
	n.emit(eventID, "activityUpdate", map[string]interface{}{
		"eventId":    eventID,
		"activityId": activityID,
	})
}

// NotifyGroupsCreated tells clients a pairing run finished for an activity.
func (n *Notifier) NotifyGroupsCreated(eventID, activityID string) {
	n.emit(eventID, "groupsCreated", map[string]interface{}{
		"eventId":    eventID,
		"activityId": activityID,
	})
}

// NotifyPartnerNoteUpdated tells clients a participant saved or edited an
// answer, so partner views can re-fetch.
func (n *Notifier) NotifyPartnerNoteUpdated(eventID, activityID, userID, notes string) {
	n.emit(eventID, "partnerNoteUpdated", map[string]interface{}{
		"activityId": activityID,
		"userId":     userID,
		"notes":      notes,
	})
}

// NotifyReviewVisibility announces the admin toggling review access.
func (n *Notifier) NotifyReviewVisibility(eventID string, show bool) {
	name := "reviewOff"
	message := "Reviews are now hidden"
	if show {
		name = "reviewOn"
		message = "Reviews are now available"
	}
	n.emit(eventID, name, map[string]interface{}{
		"eventId":   eventID,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
