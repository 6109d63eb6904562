package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub, room string) *Client {
	return &Client{
		hub:  hub,
		conn: nil,
		room: room,
		send: make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub, "ev-1")
	c2 := mockClient(hub, "ev-1")

	hub.Register(c1)
	hub.Register(c2)

	if got := hub.RoomCount("ev-1"); got != 2 {
		t.Fatalf("expected 2 clients, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.RoomCount("ev-1"); got != 1 {
		t.Fatalf("expected 1 client after unregister, got %d", got)
	}

	hub.Unregister(c2)

	if got := hub.RoomCount("ev-1"); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(slog.Default())
	c := mockClient(hub, "ev-1")
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.RoomCount("ev-1"); got != 0 {
		t.Fatalf("expected 0 clients, got %d", got)
	}
}

func TestBroadcastScopedToRoom(t *testing.T) {
	hub := NewHub(slog.Default())

	c1 := mockClient(hub, "ev-1")
	c2 := mockClient(hub, "ev-1")
	other := mockClient(hub, "ev-2")
	hub.Register(c1)
	hub.Register(c2)
	hub.Register(other)

	hub.Broadcast(PreviewRefresh("ev-1", map[string]any{"panel": "data"}))

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.send:
			var got Message
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Type != "preview_refresh" {
				t.Errorf("expected type preview_refresh, got %s", got.Type)
			}
			if got.EventID != "ev-1" {
				t.Errorf("expected event ev-1, got %s", got.EventID)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}

	select {
	case <-other.send:
		t.Fatal("message leaked into another room")
	default:
	}

	hub.Unregister(c1)
	hub.Unregister(c2)
	hub.Unregister(other)
}

func TestBroadcastEmptyHub(t *testing.T) {
	hub := NewHub(slog.Default())
	// Should not panic
	hub.Broadcast(PreviewRefresh("ev-1", nil))
}

func TestBroadcastFullBuffer(t *testing.T) {
	hub := NewHub(slog.Default())

	c := mockClient(hub, "ev-1")
	hub.Register(c)

	// Fill the send buffer
	for i := 0; i < sendBufferSize; i++ {
		hub.Broadcast(CountdownTick("ev-1", 10, 0, 0, i))
	}

	// This should drop the message, not panic or block
	hub.Broadcast(PreviewRefresh("ev-1", nil))

	// Drain to verify buffer was full
	count := 0
	for {
		select {
		case <-c.send:
			count++
		default:
			goto done
		}
	}
done:
	if count != sendBufferSize {
		t.Errorf("expected %d messages, got %d", sendBufferSize, count)
	}

	hub.Unregister(c)
}

func TestCountdownTickMessage(t *testing.T) {
	msg := CountdownTick("ev-1", 42, 3, 15, 9)
	if msg.Type != "countdown_tick" {
		t.Errorf("expected type countdown_tick, got %s", msg.Type)
	}
	if msg.EventID != "ev-1" {
		t.Errorf("expected event ev-1, got %s", msg.EventID)
	}
	if msg.Extra["days"] != 42 || msg.Extra["seconds"] != 9 {
		t.Errorf("extra = %v", msg.Extra)
	}
}

func TestRoomHooks(t *testing.T) {
	hub := NewHub(slog.Default())

	var mu sync.Mutex
	var firsts, empties []string
	hub.SetRoomHooks(
		func(room string) { mu.Lock(); firsts = append(firsts, room); mu.Unlock() },
		func(room string) { mu.Lock(); empties = append(empties, room); mu.Unlock() },
	)

	c1 := mockClient(hub, "ev-1")
	c2 := mockClient(hub, "ev-1")
	hub.Register(c1)
	hub.Register(c2)
	hub.Unregister(c1)
	hub.Unregister(c2)

	mu.Lock()
	defer mu.Unlock()
	if len(firsts) != 1 || firsts[0] != "ev-1" {
		t.Errorf("onFirst calls = %v, want one for ev-1", firsts)
	}
	if len(empties) != 1 || empties[0] != "ev-1" {
		t.Errorf("onEmpty calls = %v, want one for ev-1", empties)
	}
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(slog.Default())
	var wg sync.WaitGroup

	// Register, broadcast, and unregister concurrently
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := mockClient(hub, "ev-1")
			hub.Register(c)
			hub.Broadcast(PreviewRefresh("ev-1", nil))
			// Drain any messages
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}()
	}

	wg.Wait()

	if got := hub.RoomCount("ev-1"); got != 0 {
		t.Errorf("expected 0 clients after concurrent test, got %d", got)
	}
}
