package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"todolist/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	t.Run("UTC", func(t *testing.T) {
		tm := time.Date(2019, 3, 17, 16, 6, 38, 445_000_000, time.UTC)

		b, err := json.Marshal(response.DateTime(tm))
		if err != nil {
			t.Fatalf("unexpected error marshaling DateTime: %v", err)
		}
		if string(b) != `"2019-03-17T16:06:38.445Z"` {
			t.Errorf("unexpected encoding %s", b)
		}
	})

	t.Run("Keeps Offset", func(t *testing.T) {
		tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("CET", 3600))

		b, err := json.Marshal(response.DateTime(tm))
		if err != nil {
			t.Fatalf("unexpected error marshaling DateTime: %v", err)
		}
		if string(b) != `"2024-05-01T15:30:00.000+01:00"` {
			t.Errorf("unexpected encoding %s", b)
		}
	})
}
