package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer builds the socket.io server. Clients call joinEvent with
// their event id; the event id doubles as the room name that everything is
// broadcast to. There is no replay: a client that missed a notification
// re-fetches over HTTP.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("✅ Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "joinEvent", func(s socketio.Conn, eventID string) {
		if eventID == "" {
			log.Println("❌ joinEvent without an event id")
			return
		}
		s.Join(eventID)
		log.Printf("👥 Socket %s joined event %s\n", s.ID(), eventID)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", s.ID(), "reason:", reason)
	})

	return server
}
