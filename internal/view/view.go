// Package view computes derived, read-only views over the circle.
// Nothing here mutates the collection.
package view

import (
	"sort"
	"time"

	"github.com/kokorohq/kokoro/internal/model"
)

// Event is a person's important date flattened for display.
type Event struct {
	model.ImportantDate
	PersonID   string `json:"personId"`
	PersonName string `json:"personName"`
}

// startOfDay truncates a time to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextOccurrence returns the nearest date on or after today with the
// given month and day, rolling to next year when this year's occurrence
// has already passed. Feb 29 in a non-leap year normalizes to Mar 1.
func NextOccurrence(now time.Time, month time.Month, day int) time.Time {
	today := startOfDay(now)
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if candidate.Before(today) {
		candidate = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, now.Location())
	}
	return candidate
}

// NextOccurrenceString is NextOccurrence formatted as an ISO date.
func NextOccurrenceString(now time.Time, month time.Month, day int) string {
	return NextOccurrence(now, month, day).Format(model.DateLayout)
}

// flatten collects every person's dates as Events. Dates that do not
// parse are skipped.
func flatten(people []model.Person) []Event {
	var events []Event
	for _, p := range people {
		for _, d := range p.Dates {
			events = append(events, Event{ImportantDate: d, PersonID: p.ID, PersonName: p.Name})
		}
	}
	return events
}

// UpcomingEvents returns up to limit events on or after the start of
// today, ascending by date. Equal dates keep their original relative
// order. A non-positive limit means the default of 5.
func UpcomingEvents(people []model.Person, now time.Time, limit int) []Event {
	if limit <= 0 {
		limit = 5
	}
	// Compare calendar dates as strings so an event dated today survives
	// regardless of the zone now is in; ParseDate would yield UTC
	// midnight, which is before local start-of-day west of UTC.
	today := startOfDay(now).Format(model.DateLayout)

	var upcoming []Event
	for _, e := range flatten(people) {
		if _, err := model.ParseDate(e.Date); err != nil {
			continue
		}
		if e.Date < today {
			continue
		}
		upcoming = append(upcoming, e)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// CalendarBuckets groups events falling in the given month and year by
// day of month. Recurring dates are bucketed by their stored year, not
// rolled forward into the viewed one.
func CalendarBuckets(people []model.Person, year int, month time.Month) map[int][]Event {
	buckets := make(map[int][]Event)
	for _, e := range flatten(people) {
		d, err := model.ParseDate(e.Date)
		if err != nil {
			continue
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		buckets[d.Day()] = append(buckets[d.Day()], e)
	}
	return buckets
}
