// Package player holds the learner's persistent game state: experience
// points, hearts, and the daily study streak.
package player

import (
	"errors"
	"log/slog"

	"github.com/felixgeelhaar/lingo/internal/clock"
	"github.com/felixgeelhaar/lingo/internal/persist"
	"github.com/felixgeelhaar/lingo/internal/storage/local"
)

const (
	collectionLedgers = "ledgers"
	recordID          = "player"

	// MaxHearts is the refill ceiling and clamp for heart mutations.
	MaxHearts = 5
)

// State is the JSON-serializable player snapshot.
type State struct {
	XP          int    `json:"xp"`
	Hearts      int    `json:"hearts"`
	Streak      int    `json:"streak"`
	LastStudyAt string `json:"last_study_at,omitempty"` // YYYY-MM-DD
}

// Ledger tracks the player's XP, hearts, and streak. Every mutation is
// visible immediately in memory and written through to the store
// asynchronously; a failed write never rolls the mutation back.
type Ledger struct {
	store  *local.Store
	writer *persist.Writer
	clock  clock.Clock
	logger *slog.Logger
	state  State
}

// NewLedger loads the persisted player state, falling back to defaults
// (0 XP, full hearts, no streak) on first run.
func NewLedger(store *local.Store, writer *persist.Writer, clk clock.Clock, logger *slog.Logger) (*Ledger, error) {
	l := &Ledger{
		store:  store,
		writer: writer,
		clock:  clk,
		logger: logger,
		state:  State{Hearts: MaxHearts},
	}

	var saved State
	err := store.Load(collectionLedgers, recordID, &saved)
	switch {
	case err == nil:
		l.state = saved
	case errors.Is(err, local.ErrNotFound):
		// first run, keep defaults
	default:
		return nil, err
	}

	return l, nil
}

// AddXP increments XP by amount. There is no upper bound; a negative
// amount is ignored.
func (l *Ledger) AddXP(amount int) {
	if amount < 0 {
		return
	}
	l.state.XP += amount
	l.persistState()
}

// LoseHeart decrements hearts by one, floored at zero. Calling at zero
// is a no-op, not an error.
func (l *Ledger) LoseHeart() {
	if l.state.Hearts <= 0 {
		l.state.Hearts = 0
		return
	}
	l.state.Hearts--
	l.persistState()
}

// RefillHearts sets hearts back to the maximum unconditionally.
func (l *Ledger) RefillHearts() {
	l.state.Hearts = MaxHearts
	l.persistState()
}

// BumpStreak counts today as a study day. Calling it twice on the same
// calendar date increments the streak exactly once.
//
// A gap of missed days still increments by one rather than resetting:
// the original ships a no-penalty streak and that behavior is kept
// as-is.
func (l *Ledger) BumpStreak() {
	today := clock.DayKey(l.clock.Now())
	if l.state.LastStudyAt == today {
		return
	}
	l.state.Streak++
	l.state.LastStudyAt = today
	l.persistState()
}

// XP returns the cumulative experience points.
func (l *Ledger) XP() int { return l.state.XP }

// Hearts returns the current heart count.
func (l *Ledger) Hearts() int { return l.state.Hearts }

// Streak returns the consecutive-day study counter.
func (l *Ledger) Streak() int { return l.state.Streak }

// LastStudyAt returns the date key of the most recent streak-qualifying
// event, or "" if the player has never studied.
func (l *Ledger) LastStudyAt() string { return l.state.LastStudyAt }

// Snapshot returns a copy of the full player state.
func (l *Ledger) Snapshot() State { return l.state }

func (l *Ledger) persistState() {
	st := l.state
	l.writer.Enqueue("player state", func() error {
		return l.store.Save(collectionLedgers, recordID, st)
	})
}
