package model

import (
	"strings"
	"time"
)

// Status is the temporal classification of a challenge. It is derived from
// the current instant on every request and never stored.
type Status string

const (
	// StatusUpcoming means the challenge has not started yet.
	StatusUpcoming Status = "upcoming"
	// StatusActive means now lies within [start, end], both inclusive.
	StatusActive Status = "active"
	// StatusPast means the challenge has ended.
	StatusPast Status = "past"
)

// StatusAt classifies [start, end] relative to now.
func StatusAt(start, end, now time.Time) Status {
	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusPast
	default:
		return StatusActive
	}
}

// Filter selects challenges by their status at query time.
type Filter string

const (
	// FilterAll applies no restriction.
	FilterAll Filter = ""
	// FilterActive keeps challenges with start <= now <= end.
	FilterActive Filter = Filter(StatusActive)
	// FilterPast keeps challenges with end < now.
	FilterPast Filter = Filter(StatusPast)
	// FilterUpcoming keeps challenges with start > now.
	FilterUpcoming Filter = Filter(StatusUpcoming)
)

// ParseFilter maps the filter query parameter onto a Filter.
// Missing or unrecognised values select all challenges.
func ParseFilter(raw string) Filter {
	switch f := Filter(strings.ToLower(strings.TrimSpace(raw))); f {
	case FilterActive, FilterPast, FilterUpcoming:
		return f
	default:
		return FilterAll
	}
}

// Matches reports whether a challenge with the given status passes the filter.
func (f Filter) Matches(s Status) bool {
	return f == FilterAll || Status(f) == s
}
