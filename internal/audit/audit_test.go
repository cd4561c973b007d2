package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type memoryOutput struct {
	topics   []string
	messages [][]byte
	closed   bool
}

func (m *memoryOutput) WriteMessage(topic string, msg []byte) error {
	m.topics = append(m.topics, topic)
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memoryOutput) Close() error {
	m.closed = true
	return nil
}

func TestRecorderEnvelope(t *testing.T) {
	out := &memoryOutput{}
	rec := NewRecorder(out)

	rec.Record(TopicOrders, EventOrderCreated, "ORD-006", map[string]string{"customer": "Nina"})

	if len(out.messages) != 1 || out.topics[0] != TopicOrders {
		t.Fatalf("messages = %d, topics = %v", len(out.messages), out.topics)
	}
	var event Event
	if err := json.Unmarshal(out.messages[0], &event); err != nil {
		t.Fatalf("decoding event: %v", err)
	}
	if event.ID == "" {
		t.Error("event has no id")
	}
	if event.Type != EventOrderCreated || event.EntityID != "ORD-006" {
		t.Errorf("event = %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Error("event has no timestamp")
	}
}

func TestRecorderClose(t *testing.T) {
	out := &memoryOutput{}
	rec := NewRecorder(out)
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !out.closed {
		t.Error("recorder did not close its output")
	}
}

func TestFileOutputWritesPerTopic(t *testing.T) {
	dir := t.TempDir()
	out := NewFileOutput(dir)

	if err := out.WriteMessage("orders", []byte(`{"event_type":"OrderCreated"}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if err := out.WriteMessage("orders", []byte(`{"event_type":"OrderDeleted"}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if err := out.WriteMessage("tables", []byte(`{"event_type":"TableCleared"}`)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "orders.jsonl"))
	if err != nil {
		t.Fatalf("opening orders file: %v", err)
	}
	defer f.Close()
	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var event Event
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Errorf("line %d is not valid JSON: %v", lines+1, err)
		}
		lines++
	}
	if lines != 2 {
		t.Errorf("orders file has %d lines, want 2", lines)
	}

	if _, err := os.Stat(filepath.Join(dir, "tables.jsonl")); err != nil {
		t.Errorf("tables file: %v", err)
	}
}
