// Package audit emits one JSON event per mutation applied to the entity
// collections. Events are written to an OutputDestination keyed by the
// entity's topic, so the stream can go to the console, per-topic files or
// a Kafka cluster without the caller caring which.
package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/lucsky/cuid"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderUpdated       = "OrderUpdated"
	EventOrderDeleted       = "OrderDeleted"
	EventOrderStatusSet     = "OrderStatusSet"
	EventDishCreated        = "DishCreated"
	EventDishUpdated        = "DishUpdated"
	EventDishDeleted        = "DishDeleted"
	EventDishToggled        = "DishAvailabilityToggled"
	EventInventoryCreated   = "InventoryItemCreated"
	EventInventoryUpdated   = "InventoryItemUpdated"
	EventInventoryDeleted   = "InventoryItemDeleted"
	EventInventoryAdjusted  = "InventoryQuantityAdjusted"
	EventStaffCreated       = "StaffMemberCreated"
	EventStaffUpdated       = "StaffMemberUpdated"
	EventStaffDeleted       = "StaffMemberDeleted"
	EventStaffStatusSet     = "StaffStatusSet"
	EventTableCreated       = "TableCreated"
	EventTableUpdated       = "TableUpdated"
	EventTableDeleted       = "TableDeleted"
	EventTableStatusSet     = "TableStatusSet"
	EventTableOrderAssigned = "TableOrderAssigned"
	EventTableCleared       = "TableCleared"
)

const (
	TopicOrders    = "orders"
	TopicDishes    = "dishes"
	TopicInventory = "inventory"
	TopicStaff     = "staff"
	TopicTables    = "tables"
)

// Event is the envelope written to the stream.
type Event struct {
	ID        string      `json:"event_id"`
	Type      string      `json:"event_type"`
	Timestamp time.Time   `json:"timestamp"`
	EntityID  string      `json:"entity_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// Recorder serializes events and hands them to the destination. Write
// failures are logged and swallowed: the mutation has already happened
// and the audit stream is best-effort.
type Recorder struct {
	out OutputDestination
}

func NewRecorder(out OutputDestination) *Recorder {
	return &Recorder{out: out}
}

func (r *Recorder) Record(topic, eventType, entityID string, data interface{}) {
	event := Event{
		ID:        cuid.New(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		EntityID:  entityID,
		Data:      data,
	}
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error serializing audit event %s: %v", eventType, err)
		return
	}
	if err := r.out.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to write audit event %s: %v", eventType, err)
	}
}

func (r *Recorder) Close() error {
	if r.out == nil {
		return nil
	}
	if err := r.out.Close(); err != nil {
		return fmt.Errorf("closing audit output: %w", err)
	}
	return nil
}
