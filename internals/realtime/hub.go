package realtime

import (
	"log"
	"sync"

	"github.com/bytedance/sonic"
)

// Room keys: personal "user_<id>" dan bersama "chat_<id>".
func UserRoom(userID string) string { return "user_" + userID }
func ChatRoom(chatID string) string { return "chat_" + chatID }

// Event adalah frame keluar ke subscriber.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Subscriber adalah satu koneksi yang tergabung di beberapa room.
// Frame dikirim lewat channel buffered; subscriber lambat di-drop per frame,
// tidak pernah memblokir publisher.
type Subscriber struct {
	send  chan []byte
	rooms map[string]struct{}
}

// Send mengembalikan channel frame keluar untuk write loop koneksi.
// Channel ditutup saat Unsubscribe.
func (s *Subscriber) Send() <-chan []byte { return s.send }

// Hub adalah relay pub/sub in-process: registry room → subscribers.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Subscriber]struct{})}
}

// Subscribe membuat subscriber baru dengan buffer frame tertentu.
func (h *Hub) Subscribe(buffer int) *Subscriber {
	if buffer <= 0 {
		buffer = 32
	}
	return &Subscriber{
		send:  make(chan []byte, buffer),
		rooms: make(map[string]struct{}),
	}
}

func (h *Hub) Join(s *Subscriber, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.rooms[room]
	if !ok {
		subs = make(map[*Subscriber]struct{})
		h.rooms[room] = subs
	}
	subs[s] = struct{}{}
	s.rooms[room] = struct{}{}
}

func (h *Hub) Leave(s *Subscriber, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(s, room)
}

func (h *Hub) leaveLocked(s *Subscriber, room string) {
	if subs, ok := h.rooms[room]; ok {
		delete(subs, s)
		if len(subs) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(s.rooms, room)
}

// Unsubscribe mengeluarkan subscriber dari semua room dan menutup channel-nya.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	for room := range s.rooms {
		h.leaveLocked(s, room)
	}
	h.mu.Unlock()
	close(s.send)
}

// Publish mengirim event ke semua subscriber sebuah room.
// Fire-and-forget: tidak pernah mengembalikan error ke pemanggil; kegagalan
// (termasuk buffer penuh) hanya dicatat di log.
func (h *Hub) Publish(room, event string, payload interface{}) {
	frame, err := sonic.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		log.Printf("[REALTIME] gagal marshal event %s: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.rooms[room] {
		select {
		case s.send <- frame:
		default:
			log.Printf("[REALTIME] buffer penuh, frame %s ke room %s di-drop", event, room)
		}
	}
}

// RoomSize mengembalikan jumlah subscriber sebuah room (untuk log/inspeksi).
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
