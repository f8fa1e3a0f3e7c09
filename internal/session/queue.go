package session

import (
	"time"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// Request is a buffered player input.
type Request struct {
	Action core.Action
	At     time.Time
}

// Queue buffers requests in arrival order until the controller is ready
// for them. It has no capacity limit; staleness keeps it short.
type Queue struct {
	items []Request
}

// Enqueue appends a request.
func (q *Queue) Enqueue(a core.Action, at time.Time) {
	q.items = append(q.items, Request{Action: a, At: at})
}

// Prune drops every request that has waited maxAge or longer at now and
// returns how many were dropped. Survivors keep their order.
func (q *Queue) Prune(now time.Time, maxAge time.Duration) int {
	if len(q.items) == 0 {
		return 0
	}
	kept := make([]Request, 0, len(q.items))
	for _, r := range q.items {
		if now.Sub(r.At) < maxAge {
			kept = append(kept, r)
		}
	}
	dropped := len(q.items) - len(kept)
	q.items = kept
	return dropped
}

// Front returns the oldest request without removing it.
func (q *Queue) Front() (Request, bool) {
	if len(q.items) == 0 {
		return Request{}, false
	}
	return q.items[0], true
}

// Pop removes and returns the oldest request.
func (q *Queue) Pop() (Request, bool) {
	r, ok := q.Front()
	if ok {
		q.items = q.items[1:]
	}
	return r, ok
}

// Clear drops every request.
func (q *Queue) Clear() {
	q.items = nil
}

// Len returns the number of buffered requests.
func (q *Queue) Len() int {
	return len(q.items)
}

// Requests returns a copy of the buffered requests, oldest first.
func (q *Queue) Requests() []Request {
	return append([]Request(nil), q.items...)
}
