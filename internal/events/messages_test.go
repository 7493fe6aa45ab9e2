package events

import (
	"strings"
	"testing"
)

func TestChangeMessageJSON(t *testing.T) {
	msg := NewChangeMessage(ActionUpdated, "t1")
	if msg.Timestamp.IsZero() {
		t.Error("timestamp must be set")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	for _, field := range []string{`"action":"updated"`, `"transaction_id":"t1"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("payload %s missing %s", data, field)
		}
	}

	got, err := ChangeMessageFromJSON(data)
	if err != nil {
		t.Fatalf("ChangeMessageFromJSON: %v", err)
	}
	if got.Action != ActionUpdated || got.TransactionID != "t1" {
		t.Errorf("got = %+v", got)
	}
	if !got.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("timestamp = %s, want %s", got.Timestamp, msg.Timestamp)
	}
}

func TestChangeMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ChangeMessageFromJSON([]byte("{")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
