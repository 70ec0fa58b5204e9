package model

// Wire formats for dates and timestamps. Always rendered in the configured
// civil timezone, never in server-local time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"
)
