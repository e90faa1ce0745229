package catalog

import (
	"fmt"
	"sync"

	"github.com/felixgeelhaar/lingo/internal/domain"
)

// Registry provides read-only access to the loaded catalog. Lessons keep
// their document order; the catalog is never mutated after Load.
type Registry struct {
	loader    *Loader
	mu        sync.RWMutex
	lessons   []domain.Lesson
	byID      map[string]*domain.Lesson
	greetings []domain.Phrase
	loaded    bool
}

// NewRegistry creates a registry backed by the given loader.
func NewRegistry(loader *Loader) *Registry {
	return &Registry{
		loader: loader,
		byID:   make(map[string]*domain.Lesson),
	}
}

// Load reads the catalog into memory.
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.loader.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	r.lessons = file.Lessons
	r.greetings = file.Greetings
	r.byID = make(map[string]*domain.Lesson, len(file.Lessons))
	for i := range r.lessons {
		r.byID[r.lessons[i].ID] = &r.lessons[i]
	}

	r.loaded = true
	return nil
}

// Lesson returns the lesson with the given id, or nil if unknown.
func (r *Registry) Lesson(id string) *domain.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// Lessons returns all lessons in catalog order.
func (r *Registry) Lessons() []domain.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lessons := make([]domain.Lesson, len(r.lessons))
	copy(lessons, r.lessons)
	return lessons
}

// Greetings returns the phrasebook in catalog order.
func (r *Registry) Greetings() []domain.Phrase {
	r.mu.RLock()
	defer r.mu.RUnlock()

	phrases := make([]domain.Phrase, len(r.greetings))
	copy(phrases, r.greetings)
	return phrases
}

// Stats returns counts of the loaded catalog.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := RegistryStats{
		LessonCount: len(r.lessons),
		PhraseCount: len(r.greetings),
	}
	for _, l := range r.lessons {
		stats.ExerciseCount += len(l.Exercises)
	}
	return stats
}

// RegistryStats holds counts about the loaded catalog.
type RegistryStats struct {
	LessonCount   int
	ExerciseCount int
	PhraseCount   int
}
