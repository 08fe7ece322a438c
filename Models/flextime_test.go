package Models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexTimeOfNativeTime(t *testing.T) {
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	ft := FlexTimeOf(now)
	assert.True(t, ft.Equal(now))
}

func TestFlexTimeOfEpochSeconds(t *testing.T) {
	ft := FlexTimeOf(int64(1704880800))
	assert.Equal(t, int64(1704880800), ft.Unix())

	ft = FlexTimeOf(float64(1704880800))
	assert.Equal(t, int64(1704880800), ft.Unix())
}

func TestFlexTimeOfStrings(t *testing.T) {
	cases := map[string]string{
		"rfc3339":   "2024-01-10T10:00:00Z",
		"date only": "2024-01-10",
		"legacy":    "2024/01/10 & 10:00 AM",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			ft := FlexTimeOf(raw)
			assert.False(t, ft.IsEpochZero(), "parsed %q", raw)
			assert.Equal(t, 2024, ft.Year())
			assert.Equal(t, time.January, ft.Month())
			assert.Equal(t, 10, ft.Day())
		})
	}
}

func TestFlexTimeOfNumericString(t *testing.T) {
	ft := FlexTimeOf("1704880800")
	assert.Equal(t, int64(1704880800), ft.Unix())
}

func TestFlexTimeOfUnparseable(t *testing.T) {
	for _, raw := range []interface{}{nil, "", "not a date", []byte("garbage"), struct{}{}} {
		ft := FlexTimeOf(raw)
		assert.True(t, ft.IsEpochZero(), "value %v should pin to epoch zero", raw)
		assert.Equal(t, int64(0), ft.Millis())
	}
}

func TestFlexTimeUnmarshalSecondsObject(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`{"seconds": 1704880800}`), &ft))
	assert.Equal(t, int64(1704880800), ft.Unix())
}

func TestFlexTimeUnmarshalString(t *testing.T) {
	var ft FlexTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-10T10:00:00Z"`), &ft))
	assert.Equal(t, 2024, ft.Year())
}

func TestFlexTimeJSONRoundTrip(t *testing.T) {
	original := NewFlexTime(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded FlexTime
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.Equal(original.Time))
}

func TestFlexTimeScanVariants(t *testing.T) {
	var ft FlexTime

	require.NoError(t, ft.Scan(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2024, ft.Year())

	require.NoError(t, ft.Scan("2024-01-10 10:00:00"))
	assert.Equal(t, 2024, ft.Year())

	require.NoError(t, ft.Scan(nil))
	assert.True(t, ft.IsEpochZero())
}
