// Package timewindow resolves named calendar buckets to concrete instants.
//
// Weeks start on Monday regardless of locale. When now falls on a Sunday,
// both "weekend" and "this_week" resolve to the range ending that day
// rather than starting a new one.
package timewindow

import (
	"time"

	"github.com/managementsnbllc-hub/eventmap-toronto/internal/domain/model"
)

// Window is a resolved [Start, End] pair. Both bounds are inclusive.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Resolve maps a range key to a concrete window. Unknown keys fall back to
// this_week; there is no error path.
func Resolve(key model.TimeRange, opts ...Option) Window {
	r := newResolver(opts...)
	switch key {
	case model.RangeToday:
		return dayWindow(r.now)
	case model.RangeTomorrow:
		return dayWindow(r.now.AddDate(0, 0, 1))
	case model.RangeWeekend:
		return weekendWindow(r.now)
	case model.RangeThisWeek:
		return weekWindow(r.now)
	case model.RangeCustom:
		return customWindow(r.now, r.customStart, r.customEnd)
	default:
		return weekWindow(r.now)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func dayWindow(t time.Time) Window {
	return Window{Start: startOfDay(t), End: endOfDay(t)}
}

// weekendWindow spans the Saturday and Sunday of the week containing now.
// On Sunday the Saturday is yesterday, so the weekend ends today.
func weekendWindow(now time.Time) Window {
	satOffset := 6 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		satOffset = -1
	}
	saturday := now.AddDate(0, 0, satOffset)
	sunday := saturday.AddDate(0, 0, 1)
	return Window{Start: startOfDay(saturday), End: endOfDay(sunday)}
}

// weekWindow spans Monday through Sunday of the week containing now.
func weekWindow(now time.Time) Window {
	mondayOffset := 1 - int(now.Weekday())
	if now.Weekday() == time.Sunday {
		mondayOffset = -6
	}
	monday := now.AddDate(0, 0, mondayOffset)
	sunday := monday.AddDate(0, 0, 6)
	return Window{Start: startOfDay(monday), End: endOfDay(sunday)}
}

// customWindow defaults each missing bound to now's day boundary, not to
// the bound that was supplied. Callers relying on single-bound custom
// ranges get "from that day until today" or "from today until that day".
func customWindow(now time.Time, start, end *time.Time) Window {
	w := dayWindow(now)
	if start != nil {
		w.Start = startOfDay(*start)
	}
	if end != nil {
		w.End = endOfDay(*end)
	}
	return w
}
