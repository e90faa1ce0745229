package catalog

import (
	"testing"
)

func loadedRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry(NewLoader(writeCatalog(t, testCatalog)))
	if err := registry.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return registry
}

func TestRegistry_Lesson(t *testing.T) {
	r := loadedRegistry(t)

	if l := r.Lesson("basics-1"); l == nil || l.Title != "Basics 1" {
		t.Errorf("Lesson(basics-1) = %v; want Basics 1", l)
	}
	if l := r.Lesson("missing"); l != nil {
		t.Errorf("Lesson(missing) = %v; want nil", l)
	}
}

func TestRegistry_LessonsKeepCatalogOrder(t *testing.T) {
	r := loadedRegistry(t)

	lessons := r.Lessons()
	if len(lessons) != 2 {
		t.Fatalf("Lessons() = %d; want 2", len(lessons))
	}
	if lessons[0].ID != "basics-1" || lessons[1].ID != "greetings-1" {
		t.Errorf("order = %s, %s; want basics-1, greetings-1", lessons[0].ID, lessons[1].ID)
	}
}

func TestRegistry_Greetings(t *testing.T) {
	r := loadedRegistry(t)

	phrases := r.Greetings()
	if len(phrases) != 2 {
		t.Fatalf("Greetings() = %d; want 2", len(phrases))
	}
	if phrases[0].Text != "Olá" || phrases[0].Translation != "Hello" {
		t.Errorf("first phrase = %+v", phrases[0])
	}
}

func TestRegistry_Stats(t *testing.T) {
	r := loadedRegistry(t)

	stats := r.Stats()
	if stats.LessonCount != 2 || stats.ExerciseCount != 3 || stats.PhraseCount != 2 {
		t.Errorf("Stats() = %+v; want 2 lessons, 3 exercises, 2 phrases", stats)
	}
}

func TestRegistry_LoadFailure(t *testing.T) {
	registry := NewRegistry(NewLoader("/nonexistent/catalog.yaml"))
	if err := registry.Load(); err == nil {
		t.Error("Load() error = nil; want failure")
	}
}
