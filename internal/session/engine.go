// Package session drives one active lesson: the current exercise
// pointer, answer grading, progress-ratio tracking, and delegation to
// the player ledger on each outcome.
package session

import (
	"log/slog"

	"github.com/felixgeelhaar/lingo/internal/catalog"
	"github.com/felixgeelhaar/lingo/internal/domain"
	"github.com/felixgeelhaar/lingo/internal/persist"
	"github.com/felixgeelhaar/lingo/internal/review"
	"github.com/google/uuid"
)

// CorrectXP is granted per correctly answered exercise.
const CorrectXP = 10

const fallbackTitle = "Lesson"

// Answer is a submission for the current exercise: an option id for
// select exercises, free text for everything else.
type Answer struct {
	OptionID string
	Text     string
}

// Result reports the grading outcome. Finished reflects whether the
// current exercise is the lesson's last one, computed before advancing
// and independent of Correct: an incorrect answer on the final exercise
// yields {Correct: false, Finished: true} and the caller decides policy.
type Result struct {
	Correct  bool
	Finished bool
}

// Engine is the lesson session state machine: Idle -> InProgress ->
// Finished, re-enterable via StartLesson. There is exactly one session;
// starting a lesson discards any in-flight one.
type Engine struct {
	registry  *catalog.Registry
	player    PlayerLedger
	scheduler review.Scheduler
	progress  ProgressStore
	writer    *persist.Writer
	logger    *slog.Logger

	sessionID string
	lesson    *domain.Lesson
	index     int
	current   *domain.Exercise
	finished  bool

	progressByLesson map[string]float64
}

// NewEngine creates the engine and hydrates the progress map from the
// progress store.
func NewEngine(registry *catalog.Registry, player PlayerLedger, scheduler review.Scheduler, progress ProgressStore, writer *persist.Writer, logger *slog.Logger) (*Engine, error) {
	saved, err := progress.All()
	if err != nil {
		return nil, err
	}
	return &Engine{
		registry:         registry,
		player:           player,
		scheduler:        scheduler,
		progress:         progress,
		writer:           writer,
		logger:           logger,
		progressByLesson: saved,
	}, nil
}

// StartLesson begins (or restarts) the lesson with the given id,
// resetting the exercise pointer to the first exercise. An unknown id
// is a silent no-op: no transition, no error. A lesson with no
// exercises cannot be started.
func (e *Engine) StartLesson(id string) {
	lesson := e.registry.Lesson(id)
	if lesson == nil || len(lesson.Exercises) == 0 {
		if e.logger != nil {
			e.logger.Debug("start lesson ignored", "lesson", id)
		}
		return
	}

	e.sessionID = uuid.New().String()
	e.lesson = lesson
	e.index = 0
	e.current = &lesson.Exercises[0]
	e.finished = false
}

// SubmitAnswer grades the submission against the current exercise. With
// no active exercise it returns the zero Result without side effects.
// A correct answer grants XP and schedules a review; an incorrect one
// costs a heart.
func (e *Engine) SubmitAnswer(ans Answer) Result {
	ex := e.current
	if ex == nil {
		return Result{}
	}

	var correct bool
	if ex.Type == domain.TypeSelect && len(ex.Options) > 0 {
		opt := ex.OptionByID(ans.OptionID)
		correct = opt != nil && opt.IsCorrect
	} else {
		correct = normalizeText(ans.Text) == normalizeText(ex.Answer)
	}

	if correct {
		e.player.AddXP(CorrectXP)
		rev := e.scheduler.Next(review.Card{LastInterval: 1, Easiness: review.DefaultEasinessFactor, Quality: 4})
		if e.logger != nil {
			e.logger.Debug("review scheduled", "exercise", ex.ID, "interval_days", rev.Interval)
		}
	} else {
		e.player.LoseHeart()
	}

	return Result{
		Correct:  correct,
		Finished: e.index+1 >= len(e.lesson.Exercises),
	}
}

// Next advances to the following exercise, or finishes the lesson when
// the pointer moves past the last one. The lesson's completion ratio is
// written through after every transition; completion also bumps the
// study streak.
func (e *Engine) Next() {
	if e.lesson == nil {
		return
	}

	i := e.index + 1
	total := len(e.lesson.Exercises)
	if i >= total {
		e.finished = true
		e.current = nil
		e.setProgress(e.lesson.ID, 1)
		e.player.BumpStreak()
		return
	}

	e.index = i
	e.current = &e.lesson.Exercises[i]
	e.setProgress(e.lesson.ID, float64(i)/float64(total))
}

// TitleForCurrent returns the active lesson's title, or a placeholder
// when no lesson is active.
func (e *Engine) TitleForCurrent() string {
	if e.lesson == nil {
		return fallbackTitle
	}
	return e.lesson.Title
}

// CurrentExercise returns the active exercise, or nil when idle or
// finished.
func (e *Engine) CurrentExercise() *domain.Exercise { return e.current }

// CurrentLessonID returns the active lesson's id, or "".
func (e *Engine) CurrentLessonID() string {
	if e.lesson == nil {
		return ""
	}
	return e.lesson.ID
}

// SessionID identifies the current session run; it changes on every
// StartLesson.
func (e *Engine) SessionID() string { return e.sessionID }

// Index returns the current exercise pointer.
func (e *Engine) Index() int { return e.index }

// IsFinished reports whether the active lesson has been completed.
func (e *Engine) IsFinished() bool { return e.finished }

// Progress returns the stored completion ratio for a lesson (0 if never
// started).
func (e *Engine) Progress(lessonID string) float64 {
	return e.progressByLesson[lessonID]
}

// ProgressByLesson returns a copy of all completion ratios.
func (e *Engine) ProgressByLesson() map[string]float64 {
	out := make(map[string]float64, len(e.progressByLesson))
	for k, v := range e.progressByLesson {
		out[k] = v
	}
	return out
}

func (e *Engine) setProgress(lessonID string, ratio float64) {
	e.progressByLesson[lessonID] = ratio
	e.writer.Enqueue("lesson progress", func() error {
		return e.progress.Save(lessonID, ratio)
	})
}
