package openweather

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

type stamped struct {
	At *UnixTime `json:"at,omitempty"`
}

func TestUnixTime_RoundTripTruncatesToSeconds(t *testing.T) {
	original := time.Date(2024, 2, 29, 13, 45, 12, 987654321, time.FixedZone("CET", 3600))

	data, err := json.Marshal(stamped{At: NewUnixTime(original)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"at":1709210712}` {
		t.Errorf("unexpected encoding %s", data)
	}

	var decoded stamped
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := original.Truncate(time.Second)
	if decoded.At == nil || !decoded.At.Equal(want) {
		t.Errorf("got %v, want %v", decoded.At, want)
	}
	if decoded.At.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", decoded.At.Location())
	}
}

func TestUnixTime_NullAndAbsentDecodeToNil(t *testing.T) {
	for _, in := range []string{`{"at":null}`, `{}`} {
		var s stamped
		if err := json.Unmarshal([]byte(in), &s); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", in, err)
		}
		if s.At != nil {
			t.Errorf("Unmarshal(%s) = %v, want nil", in, s.At)
		}
	}
}

func TestUnixTime_AbsentIsOmitted(t *testing.T) {
	data, err := json.Marshal(stamped{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("expected empty object, got %s", data)
	}
}

func TestUnixTime_ZeroValueEncodesNull(t *testing.T) {
	data, err := json.Marshal(UnixTime{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("got %s, want null", data)
	}
}

func TestUnixTime_DecodesISOString(t *testing.T) {
	var s stamped
	if err := json.Unmarshal([]byte(`{"at":"2018-08-17T13:02:45.327Z"}`), &s); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := time.Date(2018, 8, 17, 13, 2, 45, 327000000, time.UTC)
	if s.At == nil || !s.At.Equal(want) {
		t.Errorf("got %v, want %v", s.At, want)
	}
}

func TestUnixTime_RejectsGarbage(t *testing.T) {
	for _, in := range []string{`{"at":"yesterday"}`, `{"at":true}`} {
		var s stamped
		err := json.Unmarshal([]byte(in), &s)
		if err == nil {
			t.Errorf("Unmarshal(%s) should fail", in)
			continue
		}
		if !strings.Contains(err.Error(), "timestamp") {
			t.Errorf("unexpected error %v", err)
		}
	}
}
