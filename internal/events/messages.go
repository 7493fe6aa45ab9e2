package events

import (
	"encoding/json"
	"time"
)

// Change actions carried by a ChangeMessage.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeMessage tells a consumer that one transaction changed.
// Consumers fetch the current record themselves; the message carries no
// payload so a stale event can never overwrite fresher data.
type ChangeMessage struct {
	Action        string    `json:"action"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewChangeMessage(action, transactionID string) *ChangeMessage {
	return &ChangeMessage{
		Action:        action,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (m *ChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ChangeMessageFromJSON(data []byte) (*ChangeMessage, error) {
	var msg ChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
