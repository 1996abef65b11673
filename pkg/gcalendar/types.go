package gcalendar

// DeadlineRequest is the input for an all-day deadline event.
type DeadlineRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string // YYYY-MM-DD
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string
}
