package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/lingo/internal/catalog"
	"github.com/felixgeelhaar/lingo/internal/persist"
	"github.com/felixgeelhaar/lingo/internal/review"
)

const testCatalog = `
lessons:
  - id: basics-1
    title: Basics 1
    exercises:
      - id: e1
        type: select
        prompt: Which one means "Hello"?
        answer: "Olá"
        options:
          - { id: a, text: "Olá", correct: true }
          - { id: b, text: "Adeus" }
      - id: e2
        type: type
        prompt: Type "Hello" in Portuguese
        answer: "Olá"
      - id: e3
        type: translate
        prompt: 'Translate: "Goodbye"'
        answer: "Adeus"
  - id: empty-1
    title: Empty
    exercises: []
`

// fakePlayer records ledger delegations.
type fakePlayer struct {
	xpAdded     int
	heartsLost  int
	streakBumps int
}

func (f *fakePlayer) AddXP(amount int) { f.xpAdded += amount }
func (f *fakePlayer) LoseHeart()       { f.heartsLost++ }
func (f *fakePlayer) BumpStreak()      { f.streakBumps++ }

// fakeScheduler records review invocations.
type fakeScheduler struct {
	calls []review.Card
}

func (f *fakeScheduler) Next(card review.Card) review.Review {
	f.calls = append(f.calls, card)
	return review.Review{Easiness: card.Easiness, Interval: 1}
}

// memProgress is an in-memory progress store.
type memProgress struct {
	saved map[string]float64
}

func newMemProgress() *memProgress {
	return &memProgress{saved: map[string]float64{}}
}

func (m *memProgress) Save(lessonID string, ratio float64) error {
	m.saved[lessonID] = ratio
	return nil
}

func (m *memProgress) All() (map[string]float64, error) {
	out := make(map[string]float64, len(m.saved))
	for k, v := range m.saved {
		out[k] = v
	}
	return out, nil
}

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	registry := catalog.NewRegistry(catalog.NewLoader(path))
	if err := registry.Load(); err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return registry
}

type testEnv struct {
	engine    *Engine
	player    *fakePlayer
	scheduler *fakeScheduler
	progress  *memProgress
	writer    *persist.Writer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		player:    &fakePlayer{},
		scheduler: &fakeScheduler{},
		progress:  newMemProgress(),
		writer:    persist.NewWriter(nil),
	}
	t.Cleanup(env.writer.Close)

	engine, err := NewEngine(testRegistry(t), env.player, env.scheduler, env.progress, env.writer, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	env.engine = engine
	return env
}

func TestStartLesson(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine

	e.StartLesson("basics-1")
	if e.CurrentLessonID() != "basics-1" {
		t.Errorf("CurrentLessonID = %q; want basics-1", e.CurrentLessonID())
	}
	if e.Index() != 0 {
		t.Errorf("Index = %d; want 0", e.Index())
	}
	if ex := e.CurrentExercise(); ex == nil || ex.ID != "e1" {
		t.Errorf("CurrentExercise = %v; want e1", ex)
	}
	if e.IsFinished() {
		t.Error("IsFinished = true right after start")
	}
	if e.SessionID() == "" {
		t.Error("SessionID empty after start")
	}
}

func TestStartLesson_UnknownIDIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine

	e.StartLesson("nope")
	if e.CurrentLessonID() != "" || e.CurrentExercise() != nil {
		t.Error("unknown lesson id changed session state")
	}

	// an unknown id must not discard a running session either
	e.StartLesson("basics-1")
	e.StartLesson("nope")
	if e.CurrentLessonID() != "basics-1" {
		t.Errorf("CurrentLessonID = %q; want basics-1 preserved", e.CurrentLessonID())
	}
}

func TestStartLesson_RestartDiscardsSession(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine

	e.StartLesson("basics-1")
	first := e.SessionID()
	e.Next()
	e.Next()
	e.Next() // finished

	e.StartLesson("basics-1")
	if e.Index() != 0 || e.IsFinished() {
		t.Errorf("restart: index=%d finished=%v; want 0/false", e.Index(), e.IsFinished())
	}
	if e.SessionID() == first {
		t.Error("restart kept the old session id")
	}
}

func TestSubmitAnswer_NoActiveExercise(t *testing.T) {
	env := newTestEnv(t)

	res := env.engine.SubmitAnswer(Answer{Text: "Olá"})
	if res.Correct || res.Finished {
		t.Errorf("result = %+v; want zero value", res)
	}
	if env.player.xpAdded != 0 || env.player.heartsLost != 0 {
		t.Error("idle SubmitAnswer touched the player ledger")
	}
}

func TestSubmitAnswer_SelectGrading(t *testing.T) {
	tests := []struct {
		name     string
		optionID string
		correct  bool
	}{
		{"correct option", "a", true},
		{"wrong option", "b", false},
		{"unmatched option id", "zzz", false},
		{"missing option id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.engine.StartLesson("basics-1")

			res := env.engine.SubmitAnswer(Answer{OptionID: tt.optionID})
			if res.Correct != tt.correct {
				t.Errorf("Correct = %v; want %v", res.Correct, tt.correct)
			}
		})
	}
}

func TestSubmitAnswer_FreeTextNormalization(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		correct bool
	}{
		{"exact", "Olá", true},
		{"no diacritics, padded, lowercase", "  ola  ", true},
		{"uppercase", "OLÁ", true},
		{"wrong word", "adeus", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			e := env.engine
			e.StartLesson("basics-1")
			e.Next() // e2, type "type", answer "Olá"

			res := e.SubmitAnswer(Answer{Text: tt.text})
			if res.Correct != tt.correct {
				t.Errorf("Correct = %v; want %v", res.Correct, tt.correct)
			}
		})
	}
}

func TestSubmitAnswer_CorrectGrantsXPAndSchedulesReview(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	e.SubmitAnswer(Answer{OptionID: "a"})
	if env.player.xpAdded != CorrectXP {
		t.Errorf("xp added = %d; want %d", env.player.xpAdded, CorrectXP)
	}
	if env.player.heartsLost != 0 {
		t.Errorf("hearts lost = %d; want 0", env.player.heartsLost)
	}
	if len(env.scheduler.calls) != 1 {
		t.Fatalf("scheduler calls = %d; want 1", len(env.scheduler.calls))
	}
	card := env.scheduler.calls[0]
	if card.LastInterval != 1 || card.Easiness != review.DefaultEasinessFactor || card.Quality != 4 {
		t.Errorf("review card = %+v; want {1 2.5 4}", card)
	}
}

func TestSubmitAnswer_IncorrectCostsHeart(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	e.SubmitAnswer(Answer{OptionID: "b"})
	if env.player.heartsLost != 1 {
		t.Errorf("hearts lost = %d; want 1", env.player.heartsLost)
	}
	if env.player.xpAdded != 0 {
		t.Errorf("xp added = %d; want 0", env.player.xpAdded)
	}
	if len(env.scheduler.calls) != 0 {
		t.Error("incorrect answer scheduled a review")
	}
}

func TestSubmitAnswer_FinishedFlagIndependentOfCorrectness(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	if res := e.SubmitAnswer(Answer{OptionID: "a"}); res.Finished {
		t.Error("Finished = true on first of three exercises")
	}
	e.Next()
	e.Next() // e3, the last exercise

	// incorrect on the final exercise still reports Finished
	res := e.SubmitAnswer(Answer{Text: "wrong"})
	if res.Correct {
		t.Error("Correct = true for a wrong answer")
	}
	if !res.Finished {
		t.Error("Finished = false on the last exercise")
	}
	// the flag reports without advancing
	if e.IsFinished() {
		t.Error("SubmitAnswer advanced the session")
	}
}

func TestNext_ProgressMonotonicity(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	want := []float64{1.0 / 3, 2.0 / 3, 1}
	prev := 0.0
	for i, w := range want {
		e.Next()
		got := e.Progress("basics-1")
		if got != w {
			t.Errorf("after %d Next() calls: progress = %v; want %v", i+1, got, w)
		}
		if got < prev {
			t.Errorf("progress decreased: %v -> %v", prev, got)
		}
		prev = got
	}
}

func TestNext_FinishBumpsStreakAndPersists(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	e.Next()
	e.Next()
	e.Next()

	if !e.IsFinished() {
		t.Fatal("IsFinished = false after walking past the end")
	}
	if e.CurrentExercise() != nil {
		t.Error("CurrentExercise set after finish")
	}
	if env.player.streakBumps != 1 {
		t.Errorf("streak bumps = %d; want 1", env.player.streakBumps)
	}

	env.writer.Close() // drain writes
	if env.progress.saved["basics-1"] != 1 {
		t.Errorf("persisted ratio = %v; want 1", env.progress.saved["basics-1"])
	}
}

func TestFinishedFlagConsistency(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	for i := 0; i < 4; i++ {
		if e.IsFinished() != (e.CurrentExercise() == nil) {
			t.Fatalf("after %d Next() calls: IsFinished=%v but CurrentExercise nil=%v",
				i, e.IsFinished(), e.CurrentExercise() == nil)
		}
		e.Next()
	}
}

func TestTitleForCurrent(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine

	if got := e.TitleForCurrent(); got != "Lesson" {
		t.Errorf("idle TitleForCurrent = %q; want fallback", got)
	}

	e.StartLesson("basics-1")
	if got := e.TitleForCurrent(); got != "Basics 1" {
		t.Errorf("TitleForCurrent = %q; want Basics 1", got)
	}
}

func TestStartLesson_EmptyLessonCannotStart(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine

	e.StartLesson("empty-1")
	if e.CurrentLessonID() != "" || e.CurrentExercise() != nil {
		t.Error("empty lesson started a session")
	}
}

func TestEngine_HydratesProgressFromStore(t *testing.T) {
	progress := newMemProgress()
	progress.saved["basics-1"] = 0.5

	writer := persist.NewWriter(nil)
	defer writer.Close()

	e, err := NewEngine(testRegistry(t), &fakePlayer{}, &fakeScheduler{}, progress, writer, nil)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if e.Progress("basics-1") != 0.5 {
		t.Errorf("Progress = %v; want 0.5 hydrated from store", e.Progress("basics-1"))
	}
}

func TestEndToEndLessonScenario(t *testing.T) {
	env := newTestEnv(t)
	e := env.engine
	e.StartLesson("basics-1")

	// exercise 1 correct: +10 XP, no heart loss
	if res := e.SubmitAnswer(Answer{OptionID: "a"}); !res.Correct || res.Finished {
		t.Fatalf("exercise 1: result = %+v", res)
	}
	e.Next()
	if got := e.Progress("basics-1"); got != 1.0/3 {
		t.Errorf("progress = %v; want 1/3", got)
	}

	// exercise 2 incorrect: -1 heart, XP unchanged
	if res := e.SubmitAnswer(Answer{Text: "nope"}); res.Correct {
		t.Fatal("exercise 2 graded correct")
	}
	if env.player.xpAdded != CorrectXP {
		t.Errorf("xp after wrong answer = %d; want %d", env.player.xpAdded, CorrectXP)
	}
	if env.player.heartsLost != 1 {
		t.Errorf("hearts lost = %d; want 1", env.player.heartsLost)
	}
	e.Next()
	if got := e.Progress("basics-1"); got != 2.0/3 {
		t.Errorf("progress = %v; want 2/3", got)
	}

	// exercise 3 correct, lesson done
	res := e.SubmitAnswer(Answer{Text: "adeus"})
	if !res.Correct || !res.Finished {
		t.Fatalf("exercise 3: result = %+v; want correct and finished", res)
	}
	e.Next()

	if !e.IsFinished() {
		t.Error("lesson not finished")
	}
	if got := e.Progress("basics-1"); got != 1 {
		t.Errorf("progress = %v; want 1", got)
	}
	if env.player.streakBumps != 1 {
		t.Errorf("streak bumps = %d; want 1", env.player.streakBumps)
	}
	if env.player.xpAdded != 2*CorrectXP {
		t.Errorf("total xp = %d; want %d", env.player.xpAdded, 2*CorrectXP)
	}
}
