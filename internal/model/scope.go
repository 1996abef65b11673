package model

// Scope identifies who issued a request.
type Scope struct {
	UserID   string
	Username string
	Source   string // "http", "telegram", "cli"
}

// Request sources.
const (
	SourceHTTP     = "http"
	SourceTelegram = "telegram"
	SourceCLI      = "cli"
)
