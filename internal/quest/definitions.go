package quest

import (
	"time"

	"github.com/felixgeelhaar/lingo/internal/clock"
)

// Metric names the ledger signal a quest's progress is computed from.
type Metric string

const (
	// MetricDailyXP measures XP earned since the daily window opened.
	MetricDailyXP Metric = "daily_xp"
	// MetricStudiedToday is 1 once a lesson was completed today.
	MetricStudiedToday Metric = "studied_today"
	// MetricStudyDays counts distinct study days in the ISO week.
	MetricStudyDays Metric = "study_days"
)

// Definition describes one quest: a time-boxed objective with a progress
// target and an XP reward. Definitions live outside the ledger; the
// ledger only tracks windows and claims.
type Definition struct {
	ID       string
	Scope    Scope
	Metric   Metric
	Title    string
	Target   int
	RewardXP int
}

// DefaultDefinitions is the built-in quest board.
func DefaultDefinitions() []Definition {
	return []Definition{
		{ID: "d_xp_30", Scope: ScopeDaily, Metric: MetricDailyXP, Title: "Earn 30 XP today", Target: 30, RewardXP: 10},
		{ID: "d_study_1", Scope: ScopeDaily, Metric: MetricStudiedToday, Title: "Complete 1 lesson today", Target: 1, RewardXP: 15},
		{ID: "w_days_5", Scope: ScopeWeekly, Metric: MetricStudyDays, Title: "Study on 5 days this week", Target: 5, RewardXP: 50},
	}
}

// Status is a definition combined with its current progress and claim
// state.
type Status struct {
	Definition
	Progress int
	Claimed  bool
}

// Done reports whether the quest's target has been reached.
func (s Status) Done() bool { return s.Progress >= s.Target }

// Evaluate combines quest definitions with the ledger's signals and the
// player's current state into claimable statuses. The caller should
// SyncFromGame first so the windows are current.
func Evaluate(defs []Definition, ledger *Ledger, game GameSignal, now time.Time) []Status {
	xpToday := game.XP - ledger.XPSnapshot()
	if xpToday < 0 {
		xpToday = 0
	}
	studiedToday := game.LastStudyAt != "" && game.LastStudyAt == clock.DayKey(now)

	statuses := make([]Status, 0, len(defs))
	for _, def := range defs {
		st := Status{Definition: def, Claimed: ledger.Claimed(def.Scope, def.ID)}
		switch def.Metric {
		case MetricDailyXP:
			st.Progress = xpToday
		case MetricStudiedToday:
			if studiedToday {
				st.Progress = 1
			}
		case MetricStudyDays:
			st.Progress = len(ledger.StudiedDatesThisWeek())
		}
		statuses = append(statuses, st)
	}
	return statuses
}
