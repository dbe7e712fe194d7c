package realtime

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

func recvFrame(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case frame, ok := <-sub.Send():
		if !ok {
			t.Fatal("channel sudah ditutup")
		}
		var ev Event
		if err := sonic.Unmarshal(frame, &ev); err != nil {
			t.Fatalf("unmarshal frame: %v", err)
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("tidak ada frame masuk")
		return Event{}
	}
}

func TestRoomKeys(t *testing.T) {
	if got := UserRoom("abc"); got != "user_abc" {
		t.Errorf("UserRoom = %q", got)
	}
	if got := ChatRoom("xyz"); got != "chat_xyz" {
		t.Errorf("ChatRoom = %q", got)
	}
}

func TestPublishReachesRoomMembers(t *testing.T) {
	hub := NewHub()
	member := hub.Subscribe(4)
	outsider := hub.Subscribe(4)
	hub.Join(member, ChatRoom("c1"))
	hub.Join(outsider, ChatRoom("c2"))

	hub.Publish(ChatRoom("c1"), "new_message", map[string]string{"content": "halo"})

	ev := recvFrame(t, member)
	if ev.Event != "new_message" {
		t.Errorf("event = %q, mau new_message", ev.Event)
	}

	select {
	case frame := <-outsider.Send():
		t.Errorf("outsider menerima frame: %s", frame)
	default:
	}
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(4)
	hub.Join(sub, ChatRoom("c1"))
	hub.Leave(sub, ChatRoom("c1"))

	hub.Publish(ChatRoom("c1"), "new_message", nil)

	select {
	case frame := <-sub.Send():
		t.Errorf("masih menerima frame setelah leave: %s", frame)
	default:
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(1)
	hub.Join(sub, UserRoom("u1"))

	done := make(chan struct{})
	go func() {
		// Buffer 1: frame kedua dan ketiga harus di-drop, bukan blok.
		hub.Publish(UserRoom("u1"), "grade_updated", 1)
		hub.Publish(UserRoom("u1"), "grade_updated", 2)
		hub.Publish(UserRoom("u1"), "grade_updated", 3)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish memblokir pada subscriber penuh")
	}

	ev := recvFrame(t, sub)
	if ev.Event != "grade_updated" {
		t.Errorf("event = %q", ev.Event)
	}
}

func TestUnsubscribeClosesChannelAndEmptiesRooms(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(4)
	hub.Join(sub, UserRoom("u1"))
	hub.Join(sub, ChatRoom("c1"))

	hub.Unsubscribe(sub)

	if n := hub.RoomSize(UserRoom("u1")); n != 0 {
		t.Errorf("room user masih berisi %d subscriber", n)
	}
	if n := hub.RoomSize(ChatRoom("c1")); n != 0 {
		t.Errorf("room chat masih berisi %d subscriber", n)
	}

	select {
	case _, ok := <-sub.Send():
		if ok {
			t.Error("masih ada frame setelah unsubscribe")
		}
	case <-time.After(time.Second):
		t.Error("channel tidak ditutup")
	}

	// Publish ke room kosong tidak boleh panic.
	hub.Publish(UserRoom("u1"), "grade_updated", nil)
}

func TestRoomSize(t *testing.T) {
	hub := NewHub()
	a := hub.Subscribe(4)
	b := hub.Subscribe(4)
	hub.Join(a, ChatRoom("c1"))
	hub.Join(b, ChatRoom("c1"))

	if n := hub.RoomSize(ChatRoom("c1")); n != 2 {
		t.Errorf("RoomSize = %d, mau 2", n)
	}
	hub.Leave(a, ChatRoom("c1"))
	if n := hub.RoomSize(ChatRoom("c1")); n != 1 {
		t.Errorf("RoomSize = %d, mau 1", n)
	}
}
