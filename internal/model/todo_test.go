package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-timeline/internal/model"
)

func TestTodoIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    model.TodoID
		wantErr bool
	}{
		{name: "string id", payload: `{"id":"abc-1","text":"Book venue"}`, want: "abc-1"},
		{name: "integer id", payload: `{"id":42,"text":"Book venue"}`, want: "42"},
		{name: "null id", payload: `{"id":null,"text":"Book venue"}`, want: ""},
		{name: "missing id", payload: `{"text":"Book venue"}`, want: ""},
		{name: "object id", payload: `{"id":{},"text":"Book venue"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var todo model.TodoItem
			err := json.Unmarshal([]byte(tt.payload), &todo)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, todo.ID)
			assert.Equal(t, "Book venue", todo.Text)
		})
	}
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, model.PriorityCritical.Valid())
	assert.True(t, model.PriorityLow.Valid())
	assert.False(t, model.Priority("urgent").Valid())
}
