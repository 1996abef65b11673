package datemath

import (
	"regexp"
	"time"
)

// Layout is the canonical calendar-date format produced by the resolver.
const Layout = "2006-01-02"

// weekdayKeyword maps a folded Portuguese weekday stem to its time.Weekday.
type weekdayKeyword struct {
	keyword string
	weekday time.Weekday
}

// weekdays is checked in order; the first stem contained in the expression wins.
var weekdays = []weekdayKeyword{
	{"segunda", time.Monday},
	{"terca", time.Tuesday},
	{"quarta", time.Wednesday},
	{"quinta", time.Thursday},
	{"sexta", time.Friday},
	{"sabado", time.Saturday},
	{"domingo", time.Sunday},
}

const (
	keywordTomorrow = "amanha"
	keywordToday    = "hoje"
	keywordNextWeek = "proxima semana"
)

// explicitPattern is one numeric date layout. Groups hold year, month and day
// positions inside the match.
type explicitPattern struct {
	re                  *regexp.Regexp
	year, month, dayIdx int
}

// explicitPatterns are tried in order: DD/MM/YYYY, YYYY-MM-DD, DD-MM-YYYY.
var explicitPatterns = []explicitPattern{
	{re: regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`), year: 3, month: 2, dayIdx: 1},
	{re: regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`), year: 1, month: 2, dayIdx: 3},
	{re: regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`), year: 3, month: 2, dayIdx: 1},
}

// durationPattern matches "daqui a 2 semanas", "em 3 dias", "1 mes" after folding.
var durationPattern = regexp.MustCompile(`\b(\d+|um|uma|dois|duas|tres)\s+(dias?|semanas?|mes|meses)\b`)

var numberWords = map[string]int{
	"um":   1,
	"uma":  1,
	"dois": 2,
	"duas": 2,
	"tres": 3,
}
