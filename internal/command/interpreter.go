package command

import (
	"fmt"
	"strings"
	"time"

	"assistente-gestao/pkg/datemath"
)

// Interpreter turns Portuguese commands into structured actions. The rule
// table is read-only after New, so one Interpreter can serve concurrent callers.
type Interpreter struct {
	rules    []rule
	now      func() time.Time
	location *time.Location
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithClock sets the function Parse reads the reference time from.
func WithClock(now func() time.Time) Option {
	return func(i *Interpreter) {
		if now != nil {
			i.now = now
		}
	}
}

// WithLocation sets the timezone used to derive today's calendar day.
func WithLocation(loc *time.Location) Option {
	return func(i *Interpreter) {
		if loc != nil {
			i.location = loc
		}
	}
}

// New creates an Interpreter with the built-in grammar.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		rules:    defaultRules,
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Now reads the interpreter's clock.
func (i *Interpreter) Now() time.Time {
	return i.now()
}

// Today returns the reference day Parse resolves dates against.
func (i *Interpreter) Today() time.Time {
	return datemath.TodayIn(i.now(), i.location)
}

// Parse interprets text relative to the interpreter's clock.
func (i *Interpreter) Parse(text string) Result {
	return i.ParseAt(text, i.Today())
}

// ParseAt interprets text with relative dates resolved against today.
// The first rule whose trigger matches decides the outcome; later rules are
// never consulted, even when the matched rule fails to extract.
func (i *Interpreter) ParseAt(text string, today time.Time) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return failure(ReasonEmpty)
	}

	for _, r := range i.rules {
		m := r.trigger.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}

		payload, err := r.run(m, today)
		if err != nil {
			return failure(ReasonExtractionPrefix + err.Error())
		}
		return success(r.kind, payload, trimmed)
	}

	return failure(ReasonNotRecognized)
}

// run calls the extractor, converting a panic into an error.
func (r rule) run(m []string, today time.Time) (payload Payload, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			payload = nil
			err = fmt.Errorf("%v", rec)
		}
	}()
	return r.extract(m, today)
}
