// Package tracker implements the application board: a kanban of job
// applications, plus the interviews and tasks hanging off them.
//
// Valid status graph:
//
//	Wishlist ──► Applied ──► Phone Screen ──► Interview ──► Offer
//	    │            │              │              │          │
//	    └────────────┴──────────────┴──────────────┴──────────┴──► Rejected
//
// Offer and Rejected are terminal states.
package tracker

import "fmt"

// Status is an application's board column.
type Status string

const (
	StatusWishlist    Status = "Wishlist"
	StatusApplied     Status = "Applied"
	StatusPhoneScreen Status = "Phone Screen"
	StatusInterview   Status = "Interview"
	StatusOffer       Status = "Offer"
	StatusRejected    Status = "Rejected"
)

// validTransitions lists every allowed (from → to) pair.
var validTransitions = map[Status][]Status{
	StatusWishlist:    {StatusApplied, StatusRejected},
	StatusApplied:     {StatusPhoneScreen, StatusRejected},
	StatusPhoneScreen: {StatusInterview, StatusRejected},
	StatusInterview:   {StatusOffer, StatusRejected},
	StatusOffer:       {StatusRejected},
	// Rejected is terminal — no outgoing transitions
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusWishlist, StatusApplied, StatusPhoneScreen, StatusInterview, StatusOffer, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTransitionAllowed returns true when moving from → to is permitted by the
// state machine.
func IsTransitionAllowed(from, to Status) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsResponded reports whether the status implies the company reacted to the
// application; used by the statistics roll-up.
func IsResponded(s Status) bool {
	switch s {
	case StatusPhoneScreen, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}
