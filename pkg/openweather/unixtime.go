package openweather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// UnixTime is a UTC instant carried on the wire as integer seconds since the epoch.
// Use *UnixTime with omitempty for fields that may be absent.
type UnixTime struct {
	time.Time
}

// NewUnixTime truncates t to whole seconds and converts it to UTC
func NewUnixTime(t time.Time) *UnixTime {
	return &UnixTime{Time: time.Unix(t.Unix(), 0).UTC()}
}

// MarshalJSON encodes the instant as Unix seconds, or null when zero
func (u UnixTime) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, u.Unix(), 10), nil
}

// UnmarshalJSON accepts Unix seconds, null, or an RFC 3339 string.
// The stations API reports its timestamps in the string form.
func (u *UnixTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		u.Time = time.Time{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("openweather: invalid timestamp %s: %w", data, err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("openweather: invalid timestamp %q: %w", s, err)
		}
		u.Time = t.UTC()
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("openweather: invalid timestamp %s: %w", data, err)
	}
	secs, err := n.Int64()
	if err != nil {
		// tolerate 1.6e9-style or fractional seconds
		f, ferr := n.Float64()
		if ferr != nil {
			return fmt.Errorf("openweather: invalid timestamp %s: %w", data, err)
		}
		secs = int64(f)
	}
	u.Time = time.Unix(secs, 0).UTC()
	return nil
}
