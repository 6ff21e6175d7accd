package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a stored time that may be missing or malformed. Decoding never fails:
// anything unusable becomes an invalid Timestamp.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// NewTimestamp wraps a known time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC(), Valid: !t.IsZero()}
}

// Ptr returns the time in UTC, or nil when absent.
func (ts Timestamp) Ptr() *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time.UTC()
	return &t
}

// UnmarshalJSON accepts RFC3339 and plain date-time strings, epoch milliseconds,
// and {"$date": ...} wrappers.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil
	}
	*ts = ParseTimestamp(raw)
	return nil
}

// MarshalJSON writes RFC3339 or null.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Time.UTC().Format(time.RFC3339Nano))
}

// ParseTimestamp converts a loosely typed value, as found in free-form meta maps.
func ParseTimestamp(v any) Timestamp {
	switch val := v.(type) {
	case string:
		return parseTimestampString(val)
	case json.Number:
		if ms, err := val.Int64(); err == nil {
			return fromEpochMillis(ms)
		}
		if f, err := val.Float64(); err == nil && f > 0 && f <= maxEpochMillis {
			return fromEpochMillis(int64(f))
		}
	case float64:
		if val > 0 && val <= maxEpochMillis {
			return fromEpochMillis(int64(val))
		}
	case int64:
		return fromEpochMillis(val)
	case int:
		return fromEpochMillis(int64(val))
	case time.Time:
		return NewTimestamp(val)
	case map[string]any:
		if inner, ok := val["$date"]; ok {
			return ParseTimestamp(inner)
		}
	}
	return Timestamp{}
}

func parseTimestampString(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t)
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromEpochMillis(ms)
	}
	return Timestamp{}
}

// maxEpochMillis bounds numeric timestamps to year 3000.
const maxEpochMillis = 32503680000000

func fromEpochMillis(ms int64) Timestamp {
	if ms <= 0 || ms > maxEpochMillis {
		return Timestamp{}
	}
	return NewTimestamp(time.UnixMilli(ms))
}
