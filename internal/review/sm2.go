// Package review implements a simplified SM-2 spaced-repetition
// interval calculator. The session engine calls it once per correct
// answer; the result is advisory.
package review

import (
	"math"
	"time"

	"github.com/felixgeelhaar/lingo/internal/clock"
)

const (
	DefaultEasinessFactor = 2.5
	MinEasinessFactor     = 1.3
)

// Card is the review input: the last interval in days, the current
// easiness factor, and the answer quality grade (0..5).
type Card struct {
	LastInterval int
	Easiness     float64
	Quality      int
}

// Review is the scheduling outcome for a card.
type Review struct {
	Easiness float64
	Interval int // days
	DueAt    time.Time
}

// Scheduler computes the next review for a card.
type Scheduler interface {
	Next(card Card) Review
}

// SM2 is the simplified SM-2 scheduler.
type SM2 struct {
	clock clock.Clock
}

// NewSM2 creates an SM-2 scheduler using the given clock for due dates.
func NewSM2(clk clock.Clock) *SM2 {
	return &SM2{clock: clk}
}

// Next applies the SM-2 easiness update and grows the interval. First
// reviews (interval < 1) are always due in one day.
func (s *SM2) Next(card Card) Review {
	e := card.Easiness
	if e == 0 {
		e = DefaultEasinessFactor
	}

	q := float64(card.Quality)
	e = math.Max(MinEasinessFactor, e+(0.1-(5-q)*(0.08+(5-q)*0.02)))

	interval := 1
	if card.LastInterval >= 1 {
		interval = int(math.Round(float64(card.LastInterval) * e))
	}

	return Review{
		Easiness: e,
		Interval: interval,
		DueAt:    s.clock.Now().Add(time.Duration(interval) * 24 * time.Hour),
	}
}
