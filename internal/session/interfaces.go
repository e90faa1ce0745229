package session

// PlayerLedger is the subset of the player ledger the engine mutates on
// answer outcomes and lesson completion.
type PlayerLedger interface {
	AddXP(amount int)
	LoseHeart()
	BumpStreak()
}

// ProgressStore persists per-lesson completion ratios.
type ProgressStore interface {
	Save(lessonID string, ratio float64) error
	All() (map[string]float64, error)
}
