package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		valid bool
		want  time.Time
	}{
		{"rfc3339", `"2024-03-05T10:30:00Z"`, true, want},
		{"rfc3339 offset", `"2024-03-05T16:00:00+05:30"`, true, want},
		{"space separated", `"2024-03-05 10:30:00"`, true, want},
		{"date only", `"2024-03-05"`, true, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"epoch millis", `1709634600000`, true, want},
		{"epoch millis string", `"1709634600000"`, true, want},
		{"mongo extended json", `{"$date":"2024-03-05T10:30:00Z"}`, true, want},
		{"null", `null`, false, time.Time{}},
		{"empty string", `""`, false, time.Time{}},
		{"garbage", `"yesterday-ish"`, false, time.Time{}},
		{"boolean", `true`, false, time.Time{}},
		{"zero epoch", `0`, false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.Equal(t, tt.valid, ts.Valid)
			if tt.valid {
				assert.True(t, tt.want.Equal(ts.Time), ts.Time.String())
				require.NotNil(t, ts.Ptr())
			} else {
				assert.Nil(t, ts.Ptr())
			}
		})
	}
}

func TestTimestamp_MalformedInsideDocument(t *testing.T) {
	var doc TrackingDocument
	err := json.Unmarshal([]byte(`{"consignmentNumber": 7, "bookingDate": "not a date", "delivered": {"deliveredAt": 12.5e99}}`), &doc)
	require.NoError(t, err)
	assert.False(t, doc.BookingDate.Valid)
	require.NotNil(t, doc.Delivered)
	assert.Equal(t, int64(7), doc.ConsignmentNumber)
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewTimestamp(time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05T10:30:00Z"`, string(data))

	data, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestParseTimestamp_MetaValues(t *testing.T) {
	assert.True(t, ParseTimestamp("2024-03-05T10:30:00Z").Valid)
	assert.True(t, ParseTimestamp(float64(1709634600000)).Valid)
	assert.False(t, ParseTimestamp(nil).Valid)
	assert.False(t, ParseTimestamp([]any{"2024"}).Valid)
}
