package datemath_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistente-gestao/pkg/datemath"
)

// monday is 2025-03-10, a Monday.
var monday = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Lisbon")
	require.NoError(t, err)

	_, err = datemath.NewParser("Invalid/Timezone")
	assert.Error(t, err)
}

func TestTodayIn(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	lisbon, err := datemath.NewParser("Europe/Lisbon")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", datemath.Format(datemath.TodayIn(now, lisbon.Location())))

	tokyo, err := datemath.NewParser("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", datemath.Format(datemath.TodayIn(now, tokyo.Location())))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		today      time.Time
		want       string
	}{
		{name: "Terça from Monday", expression: "Terça", today: monday, want: "2025-03-11"},
		{name: "Next Thursday", expression: "próxima quinta", today: monday, want: "2025-03-13"},
		{name: "Wednesday", expression: "quarta-feira", today: monday, want: "2025-03-12"},
		{name: "Friday", expression: "sexta", today: monday, want: "2025-03-14"},
		{name: "Saturday", expression: "sábado", today: monday, want: "2025-03-15"},
		{name: "Sunday", expression: "domingo", today: monday, want: "2025-03-16"},
		{name: "Same weekday rolls a full week", expression: "segunda-feira", today: monday, want: "2025-03-17"},
		{name: "Unaccented weekday", expression: "terca", today: monday, want: "2025-03-11"},
		{name: "Tomorrow", expression: "amanhã", today: monday, want: "2025-03-11"},
		{name: "Today", expression: "hoje", today: monday, want: "2025-03-10"},
		{name: "Next week", expression: "próxima semana", today: monday, want: "2025-03-17"},
		{name: "ISO date", expression: "2025-03-10", today: monday, want: "2025-03-10"},
		{name: "Slash date", expression: "10/03/2025", today: monday, want: "2025-03-10"},
		{name: "Dash date", expression: "10-03-2025", today: monday, want: "2025-03-10"},
		{name: "Unpadded slash date", expression: "5/3/2025", today: monday, want: "2025-03-05"},
		{name: "Unpadded ISO date", expression: "2025-3-5", today: monday, want: "2025-03-05"},
		{name: "No range validation", expression: "15/13/2025", today: monday, want: "2025-13-15"},
		{name: "Date embedded in text", expression: "até 15/02/2025 sem falta", today: monday, want: "2025-02-15"},
		{name: "In two weeks", expression: "daqui a 2 semanas", today: monday, want: "2025-03-24"},
		{name: "In three days", expression: "em 3 dias", today: monday, want: "2025-03-13"},
		{name: "Number word weeks", expression: "duas semanas", today: monday, want: "2025-03-24"},
		{name: "One month", expression: "daqui a um mês", today: monday, want: "2025-04-10"},
		{name: "Ten years of days", expression: "daqui a 3650 dias", today: monday, want: "2035-03-08"},
		{name: "Huge day count falls back", expression: "daqui a 3000000 dias", today: monday, want: "2025-03-11"},
		{name: "Overflowing week count falls back", expression: "em 2000000000000000000 semanas", today: monday, want: "2025-03-11"},
		{name: "Huge month count falls back", expression: "em 99999999999 meses", today: monday, want: "2025-03-11"},
		{name: "Number beyond int falls back", expression: "em 99999999999999999999999 dias", today: monday, want: "2025-03-11"},
		{name: "Gibberish falls back to tomorrow", expression: "gibberish", today: monday, want: "2025-03-11"},
		{name: "Empty falls back to tomorrow", expression: "", today: monday, want: "2025-03-11"},
		{name: "Year boundary", expression: "amanhã", today: time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC), want: "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datemath.Resolve(tt.expression, tt.today))
		})
	}
}

func TestResolveExplicitDatesIgnoreToday(t *testing.T) {
	for _, today := range []time.Time{
		monday,
		time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 7, 4, 12, 0, 0, 0, time.FixedZone("X", -5*3600)),
	} {
		assert.Equal(t, "2025-03-10", datemath.Resolve("2025-03-10", today))
		assert.Equal(t, "2025-03-10", datemath.Resolve("10/03/2025", today))
		assert.Equal(t, "2025-03-10", datemath.Resolve("10-03-2025", today))
	}
}

func TestResolveWeekdayNeverToday(t *testing.T) {
	names := []string{"domingo", "segunda", "terça", "quarta", "quinta", "sexta", "sábado"}
	for offset := 0; offset < 7; offset++ {
		today := monday.AddDate(0, 0, offset)
		name := names[today.Weekday()]

		got := datemath.Resolve(name, today)
		assert.Equal(t, datemath.Format(today.AddDate(0, 0, 7)), got, "weekday %s", name)
	}
}
