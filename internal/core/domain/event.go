package domain

import "time"

// ReviewEvent is an audit record of a successful review submission. It is
// written asynchronously and is not part of the review's source of truth.
type ReviewEvent struct {
	PerfumeID string
	AuthorID  string
	Rating    int
	CreatedAt time.Time
}
