// Package clock abstracts wall-clock reads so date-boundary logic can be
// tested with fixed dates.
package clock

import (
	"fmt"
	"math"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// Fixed returns a Clock that always reports t. Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// DayKey formats t as a date-only calendar key, e.g. "2025-09-05".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ISOWeekKey formats t's ISO-8601 week as "YYYY-W##".
//
// The Thursday of the week determines the ISO year: shift the date to
// that Thursday (Monday=1..Sunday=7), then count weeks from January 1st
// of the Thursday's year. January 1st falling on Friday through Sunday
// therefore lands in the last week of the previous ISO year.
func ISOWeekKey(t time.Time) string {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	dayNum := int(d.Weekday())
	if dayNum == 0 {
		dayNum = 7
	}
	thursday := d.AddDate(0, 0, 4-dayNum)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := thursday.Sub(yearStart).Hours() / 24
	week := int(math.Ceil((days + 1) / 7))
	return fmt.Sprintf("%d-W%02d", thursday.Year(), week)
}
