package sqlite

import (
	"github.com/felixgeelhaar/lingo/internal/session"
)

// Ensure SQLite stores implement the storage interfaces.
var (
	_ session.ProgressStore = (*ProgressStore)(nil)
)
