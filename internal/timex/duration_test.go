package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d struct {
		Interval Duration `json:"interval"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"interval":"3s"}`), &d))
	require.Equal(t, 3*time.Second, d.Interval.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"interval":1500000000}`), &d))
	require.Equal(t, 1500*time.Millisecond, d.Interval.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"interval":true}`), &d))
	require.Error(t, json.Unmarshal([]byte(`{"interval":"nope"}`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{2 * time.Minute})
	require.NoError(t, err)
	require.JSONEq(t, `"2m0s"`, string(b))
}
