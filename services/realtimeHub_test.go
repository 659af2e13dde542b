package services

import (
	"encoding/json"
	"testing"
)

type fakeConn struct {
	messages [][]byte
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestBroadcastChangeReachesOnlyOwner(t *testing.T) {
	hub := NewRealtimeHub()

	alice := &fakeConn{}
	aliceSecond := &fakeConn{}
	bob := &fakeConn{}

	hub.Register(&WSClient{UserID: "alice", Conn: alice})
	hub.Register(&WSClient{UserID: "alice", Conn: aliceSecond})
	hub.Register(&WSClient{UserID: "bob", Conn: bob})

	hub.BroadcastChange("alice", ChangeEvent{Entity: "medications", Action: "created", ID: "m1"})

	if len(alice.messages) != 1 || len(aliceSecond.messages) != 1 {
		t.Fatalf("alice connections got %d/%d messages, want 1/1", len(alice.messages), len(aliceSecond.messages))
	}
	if len(bob.messages) != 0 {
		t.Fatalf("bob got %d messages, want 0", len(bob.messages))
	}

	var event ChangeEvent
	if err := json.Unmarshal(alice.messages[0], &event); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if event.Entity != "medications" || event.Action != "created" || event.ID != "m1" {
		t.Fatalf("event = %+v", event)
	}
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewRealtimeHub()

	conn := &fakeConn{}
	client := &WSClient{UserID: "alice", Conn: conn}
	hub.Register(client)
	hub.Unregister(client)

	if !conn.closed {
		t.Fatal("unregister must close the connection")
	}

	hub.BroadcastChange("alice", ChangeEvent{Entity: "medication_logs", Action: "deleted", ID: "l1"})
	if len(conn.messages) != 0 {
		t.Fatalf("got %d messages after unregister, want 0", len(conn.messages))
	}
}

func TestBroadcastToUnknownUserIsNoop(t *testing.T) {
	hub := NewRealtimeHub()
	hub.BroadcastChange("nobody", ChangeEvent{Entity: "medications", Action: "updated", ID: "x"})
}
