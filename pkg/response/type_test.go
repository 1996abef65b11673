package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistente-gestao/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	lisbon, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC), `"2025-03-10 15:30:00"`},
		{"converted to utc", time.Date(2025, 7, 1, 9, 0, 0, 0, lisbon), `"2025-07-01 08:00:00"`},
		{"zero", time.Time{}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}
