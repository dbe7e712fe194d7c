package realtime

import (
	"log"

	"github.com/gofiber/websocket/v2"
)

// controlMessage adalah frame masuk dari klien:
// {"event":"join_chat","chat_id":"..."} / {"event":"leave_chat","chat_id":"..."}
type controlMessage struct {
	Event  string `json:"event"`
	ChatID string `json:"chat_id"`
}

// ServeClient menjalankan loop baca/tulis untuk satu koneksi yang sudah
// terautentikasi. Koneksi otomatis join room personalnya; room chat diatur
// lewat control message. Tidak ada presence list atau replay.
func ServeClient(hub *Hub, conn *websocket.Conn, userID string) {
	sub := hub.Subscribe(32)
	hub.Join(sub, UserRoom(userID))
	log.Printf("[REALTIME] user %s terhubung", userID)

	done := make(chan struct{})

	// Write loop: drain channel subscriber ke socket.
	go func() {
		defer close(done)
		for frame := range sub.Send() {
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		}
	}()

	// Read loop: hanya control message join/leave.
	for {
		var msg controlMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		switch msg.Event {
		case "join_chat":
			if msg.ChatID != "" {
				hub.Join(sub, ChatRoom(msg.ChatID))
				log.Printf("[REALTIME] user %s join chat %s", userID, msg.ChatID)
			}
		case "leave_chat":
			if msg.ChatID != "" {
				hub.Leave(sub, ChatRoom(msg.ChatID))
				log.Printf("[REALTIME] user %s leave chat %s", userID, msg.ChatID)
			}
		}
	}

	hub.Unsubscribe(sub)
	<-done
	log.Printf("[REALTIME] user %s terputus", userID)
}
