package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Priority is the urgency tier shared by categories, phases and tasks.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Valid reports whether p is one of the known tiers.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TodoID identifies a todo. Clients send either a string or a number.
type TodoID string

// UnmarshalJSON accepts both JSON strings and numbers.
func (id *TodoID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TodoID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("todo id must be a string or number: %w", err)
	}
	*id = TodoID(n.String())
	return nil
}

// TodoItem is a task owned by the planning application. The timeline engine
// only reads Text and Completed.
type TodoItem struct {
	ID         TodoID   `json:"id"`
	Text       string   `json:"text"`
	Completed  bool     `json:"completed"`
	Cost       *float64 `json:"cost,omitempty"`
	VendorName string   `json:"vendor_name,omitempty"`
}
