package json_types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateTimeUnmarshalVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{`"2026-09-07T10:00:00Z"`, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)},
		{`"2026-09-07T10:00:00+02:00"`, time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)},
		{`"2026-09-07T10:00:00"`, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)},
		{`"2026-09-07"`, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		var dt DateTime
		if err := json.Unmarshal([]byte(tc.raw), &dt); err != nil {
			t.Errorf("%s: unexpected error: %v", tc.raw, err)
			continue
		}
		if !dt.Date.Equal(tc.want) {
			t.Errorf("%s: got %v, want %v", tc.raw, dt.Date, tc.want)
		}
	}
}

func TestDateTimeUnmarshalRejectsGarbage(t *testing.T) {
	var dt DateTime
	if err := json.Unmarshal([]byte(`"next tuesday"`), &dt); err == nil {
		t.Fatal("expected error for unparseable datetime")
	}
}

func TestDateTimeMarshalRFC3339(t *testing.T) {
	dt := DateTime{Date: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)}
	raw, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `"2026-09-07T10:00:00Z"` {
		t.Errorf("got %s", raw)
	}
}
