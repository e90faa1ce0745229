// Package quest tracks daily and weekly quest windows. The ledger owns
// the windowing and claim bookkeeping only; quest targets and rewards
// are definitions the consumer combines with ledger signals.
package quest

import (
	"errors"
	"log/slog"
	"sort"

	"github.com/felixgeelhaar/lingo/internal/clock"
	"github.com/felixgeelhaar/lingo/internal/persist"
	"github.com/felixgeelhaar/lingo/internal/storage/local"
)

const (
	collectionLedgers = "ledgers"
	recordID          = "quests"
)

// Scope distinguishes the two independent rollover cycles.
type Scope string

const (
	ScopeDaily  Scope = "daily"
	ScopeWeekly Scope = "weekly"
)

// GameSignal carries the player-ledger inputs the quest ledger
// synchronizes against.
type GameSignal struct {
	XP          int
	LastStudyAt string // YYYY-MM-DD, "" if never studied
}

// State is the JSON-serializable quest snapshot.
type State struct {
	DailyKey             string          `json:"daily_key"`  // YYYY-MM-DD
	WeeklyKey            string          `json:"weekly_key"` // YYYY-W##
	XPSnapshot           int             `json:"xp_snapshot"`
	ClaimedDaily         map[string]bool `json:"claimed_daily"`
	ClaimedWeekly        map[string]bool `json:"claimed_weekly"`
	StudiedDatesThisWeek []string        `json:"studied_dates_this_week"`
}

// Ledger re-evaluates its daily and weekly windows lazily on every
// SyncFromGame call; there is no background timer.
type Ledger struct {
	store  *local.Store
	writer *persist.Writer
	clock  clock.Clock
	logger *slog.Logger
	state  State
}

// NewLedger loads the persisted quest state, or starts fresh windows
// keyed to the current day and ISO week.
func NewLedger(store *local.Store, writer *persist.Writer, clk clock.Clock, logger *slog.Logger) (*Ledger, error) {
	now := clk.Now()
	l := &Ledger{
		store:  store,
		writer: writer,
		clock:  clk,
		logger: logger,
		state: State{
			DailyKey:      clock.DayKey(now),
			WeeklyKey:     clock.ISOWeekKey(now),
			ClaimedDaily:  map[string]bool{},
			ClaimedWeekly: map[string]bool{},
		},
	}

	var saved State
	err := store.Load(collectionLedgers, recordID, &saved)
	switch {
	case err == nil:
		if saved.ClaimedDaily == nil {
			saved.ClaimedDaily = map[string]bool{}
		}
		if saved.ClaimedWeekly == nil {
			saved.ClaimedWeekly = map[string]bool{}
		}
		l.state = saved
	case errors.Is(err, local.ErrNotFound):
		// first run, keep fresh windows
	default:
		return nil, err
	}

	return l, nil
}

// SyncFromGame rolls the daily and weekly windows forward against the
// current wall clock and the player ledger's signal. Idempotent when
// called repeatedly within the same day and week with unchanged inputs.
func (l *Ledger) SyncFromGame(game GameSignal) {
	now := l.clock.Now()
	today := clock.DayKey(now)
	week := clock.ISOWeekKey(now)
	changed := false

	if l.state.DailyKey != today {
		// day rollover: new baseline so "today's XP" starts at zero
		l.state.DailyKey = today
		l.state.ClaimedDaily = map[string]bool{}
		l.state.XPSnapshot = game.XP
		changed = true
	} else if l.state.XPSnapshot == 0 && game.XP > 0 {
		// first sync of an already-started day with no snapshot captured
		l.state.XPSnapshot = game.XP
		changed = true
	}

	if l.state.WeeklyKey != week {
		l.state.WeeklyKey = week
		l.state.ClaimedWeekly = map[string]bool{}
		l.state.StudiedDatesThisWeek = nil
		changed = true
	}

	if game.LastStudyAt == today && !l.studied(today) {
		l.state.StudiedDatesThisWeek = append(l.state.StudiedDatesThisWeek, today)
		sort.Strings(l.state.StudiedDatesThisWeek)
		changed = true
	}

	if changed {
		l.persistState()
	}
}

// Claim marks questID claimed within the given scope's current window.
// The caller must already have verified the quest's progress and granted
// the reward; a redundant claim is a no-op write.
func (l *Ledger) Claim(scope Scope, questID string) {
	switch scope {
	case ScopeDaily:
		l.state.ClaimedDaily[questID] = true
	case ScopeWeekly:
		l.state.ClaimedWeekly[questID] = true
	default:
		if l.logger != nil {
			l.logger.Warn("claim with unknown scope", "scope", string(scope), "quest", questID)
		}
		return
	}
	l.persistState()
}

// ResetAll re-keys both windows to now and wipes snapshot, claims, and
// studied days.
func (l *Ledger) ResetAll() {
	now := l.clock.Now()
	l.state = State{
		DailyKey:      clock.DayKey(now),
		WeeklyKey:     clock.ISOWeekKey(now),
		ClaimedDaily:  map[string]bool{},
		ClaimedWeekly: map[string]bool{},
	}
	l.persistState()
}

// DailyKey returns the date key of the current daily window.
func (l *Ledger) DailyKey() string { return l.state.DailyKey }

// WeeklyKey returns the ISO-week key of the current weekly window.
func (l *Ledger) WeeklyKey() string { return l.state.WeeklyKey }

// XPSnapshot returns the XP baseline captured at the start of the daily
// window; "XP earned today" is current XP minus this value.
func (l *Ledger) XPSnapshot() int { return l.state.XPSnapshot }

// Claimed reports whether questID has been claimed in its scope's
// current window.
func (l *Ledger) Claimed(scope Scope, questID string) bool {
	switch scope {
	case ScopeDaily:
		return l.state.ClaimedDaily[questID]
	case ScopeWeekly:
		return l.state.ClaimedWeekly[questID]
	}
	return false
}

// StudiedDatesThisWeek returns the distinct study days accumulated in
// the current ISO week, sorted.
func (l *Ledger) StudiedDatesThisWeek() []string {
	dates := make([]string, len(l.state.StudiedDatesThisWeek))
	copy(dates, l.state.StudiedDatesThisWeek)
	return dates
}

func (l *Ledger) studied(date string) bool {
	for _, d := range l.state.StudiedDatesThisWeek {
		if d == date {
			return true
		}
	}
	return false
}

func (l *Ledger) persistState() {
	st := l.state
	st.ClaimedDaily = copyMap(l.state.ClaimedDaily)
	st.ClaimedWeekly = copyMap(l.state.ClaimedWeekly)
	st.StudiedDatesThisWeek = append([]string(nil), l.state.StudiedDatesThisWeek...)
	l.writer.Enqueue("quest state", func() error {
		return l.store.Save(collectionLedgers, recordID, st)
	})
}

func copyMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
