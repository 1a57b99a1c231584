package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"wedding-timeline/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	// 00:30 local is still the previous day in UTC; the date must not shift.
	tm := time.Date(2027, 6, 12, 0, 30, 0, 0, loc)

	b, err := json.Marshal(response.Date(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2027-06-12"` {
		t.Errorf("expected \"2027-06-12\", got %s", b)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}
