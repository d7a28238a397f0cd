package kafka

import (
	"encoding/json"
	"testing"
)

func TestMessageBuilder_Build(t *testing.T) {
	payload := struct {
		ID string `json:"id"`
	}{ID: "650000000000000000000001"}

	msg := NewMessage().
		WithKey("650000000000000000000001").
		WithValue(payload).
		WithEventType("reserva.created").
		WithSchemaVersion("1").
		WithSource("reservas").
		Build()

	if msg.Key != "650000000000000000000001" {
		t.Errorf("unexpected key: %s", msg.Key)
	}

	var decoded struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("value is not valid JSON: %v", err)
	}
	if decoded.ID != payload.ID {
		t.Errorf("expected payload id %s, got %s", payload.ID, decoded.ID)
	}

	if msg.Headers[HeaderEventType] != "reserva.created" {
		t.Errorf("unexpected event type header: %s", msg.Headers[HeaderEventType])
	}
	if msg.Headers[HeaderSchemaVersion] != "1" {
		t.Errorf("unexpected schema version header: %s", msg.Headers[HeaderSchemaVersion])
	}
	if msg.Headers[HeaderSource] != "reservas" {
		t.Errorf("unexpected source header: %s", msg.Headers[HeaderSource])
	}
	if msg.Headers[HeaderEventID] == "" {
		t.Error("expected a generated event id header")
	}
	if msg.Headers[HeaderTimestamp] == "" {
		t.Error("expected a timestamp header")
	}
}

func TestMessageBuilder_DistinctEventIDs(t *testing.T) {
	first := NewMessage().WithKey("a").WithValue("x").Build()
	second := NewMessage().WithKey("a").WithValue("x").Build()

	if first.Headers[HeaderEventID] == second.Headers[HeaderEventID] {
		t.Error("each built message must carry its own event id")
	}
}
