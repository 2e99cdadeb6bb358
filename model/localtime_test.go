// model/localtime_test.go
package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalTimeMarshal(t *testing.T) {
	lt := NewLocalTime(time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC))
	b, err := json.Marshal(lt)
	require.NoError(t, err)
	require.Equal(t, `"2026-03-05T09:30:00"`, string(b))
}

func TestLocalTimeUnmarshal(t *testing.T) {
	var lt LocalTime
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-05T09:30:00"`), &lt))
	require.Equal(t, time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC), lt.Time)

	// Fractional seconds are optional.
	var frac LocalTime
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-05T09:30:00.123456"`), &frac))
	require.Equal(t, 9, frac.Hour())

	var null LocalTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	require.True(t, null.IsZero())

	var bad LocalTime
	require.Error(t, json.Unmarshal([]byte(`"05.03.2026 09:30"`), &bad))
}
