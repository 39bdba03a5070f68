package domain

import "time"

// Publisher owns one or more feeds. IsVN marks publishers writing in the native language,
// titles of other publishers are translated before keyword extraction
type Publisher struct {
	ID   int64
	Name string
	IsVN bool
}

// Feed represents a news feed source
type Feed struct {
	ID          int64
	URL         string
	Title       string
	PublisherID int64
	Publisher   string
	IsVN        bool
	LastFetched *time.Time
	ErrorCount  int
	LastError   string
	Enabled     bool
	CreatedAt   time.Time
}
