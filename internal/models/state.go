package models

import (
	"fmt"
	"time"
)

// State classifies bookings when listing. It is a query-time filter and is
// never persisted; the persisted field is BookingStatus.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a raw query token to a State. An empty token means ALL.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch s := State(raw); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", fmt.Errorf("unknown state: %s", raw)
	}
}

// BookingFilter is the closed representation of a State evaluated at a
// single moment. Nil fields impose no constraint. Time bounds are
// inclusive of the snapshot on the Before/After side that the state
// definitions require.
type BookingFilter struct {
	Status      *BookingStatus
	StartsBy    *time.Time // start_date <= t
	StartsAfter *time.Time // start_date > t
	EndsBefore  *time.Time // end_date < t
	EndsFrom    *time.Time // end_date >= t
}

// Filter resolves the state against a snapshot of "now". The snapshot is
// taken once per list call so every row is classified against the same
// cutoff.
func (s State) Filter(now time.Time) (BookingFilter, error) {
	switch s {
	case StateAll:
		return BookingFilter{}, nil
	case StateCurrent:
		// start <= now <= end, regardless of status.
		return BookingFilter{StartsBy: &now, EndsFrom: &now}, nil
	case StatePast:
		approved := StatusApproved
		return BookingFilter{EndsBefore: &now, Status: &approved}, nil
	case StateFuture:
		return BookingFilter{StartsAfter: &now}, nil
	case StateWaiting:
		waiting := StatusWaiting
		return BookingFilter{Status: &waiting}, nil
	case StateRejected:
		rejected := StatusRejected
		return BookingFilter{Status: &rejected}, nil
	default:
		return BookingFilter{}, fmt.Errorf("unknown state: %s", s)
	}
}

// Matches reports whether a booking satisfies the filter. It is the pure
// counterpart of the SQL conditions the repository derives from the filter.
func (f BookingFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.StartsBy != nil && b.StartDate.After(*f.StartsBy) {
		return false
	}
	if f.StartsAfter != nil && !b.StartDate.After(*f.StartsAfter) {
		return false
	}
	if f.EndsBefore != nil && !b.EndDate.Before(*f.EndsBefore) {
		return false
	}
	if f.EndsFrom != nil && b.EndDate.Before(*f.EndsFrom) {
		return false
	}
	return true
}
