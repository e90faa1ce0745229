package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/felixgeelhaar/lingo/internal/domain"
	"github.com/felixgeelhaar/lingo/internal/session"
)

func cmdLesson(args []string) error {
	subCmd := "list"
	if len(args) > 0 {
		subCmd = args[0]
	}

	switch subCmd {
	case "list", "":
		return cmdLessonList()
	case "start":
		if len(args) < 2 {
			return fmt.Errorf("usage: lingo lesson start <id>")
		}
		return cmdLessonStart(args[1])
	default:
		return fmt.Errorf("unknown lesson command: %s (valid: list, start)", subCmd)
	}
}

func cmdLessonList() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	lessons := a.registry.Lessons()
	if len(lessons) == 0 {
		fmt.Println("No lessons in the catalog.")
		return nil
	}

	fmt.Println("Lessons")
	fmt.Println("=======")
	for _, l := range lessons {
		ratio := a.engine.Progress(l.ID)
		fmt.Printf("%-12s %-28s %3.0f%%  (%d exercises)\n", l.ID, l.Title, ratio*100, len(l.Exercises))
	}
	return nil
}

func cmdLessonStart(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// hearts gating lives at the shell, not inside the engine
	if a.player.Hearts() <= 0 {
		return fmt.Errorf("out of hearts: run 'lingo refill' and come back")
	}

	a.engine.StartLesson(id)
	if a.engine.CurrentExercise() == nil {
		return fmt.Errorf("unknown lesson: %s", id)
	}

	lesson := a.registry.Lesson(id)
	total := len(lesson.Exercises)
	fmt.Printf("%s\n", a.engine.TitleForCurrent())
	fmt.Println(strings.Repeat("=", len(a.engine.TitleForCurrent())))

	scanner := bufio.NewScanner(os.Stdin)
	for !a.engine.IsFinished() {
		ex := a.engine.CurrentExercise()
		fmt.Printf("\n[%d/%d] %s\n", a.engine.Index()+1, total, ex.Prompt)

		if ex.Type == domain.TypeListen && ex.AudioKey != "" {
			a.audio.Play(context.Background(), ex.AudioKey)
		}
		if ex.Type == domain.TypeSelect {
			for _, opt := range ex.Options {
				fmt.Printf("  %s) %s\n", opt.ID, opt.Text)
			}
		}

		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println("\nLesson abandoned.")
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		var ans session.Answer
		if ex.Type == domain.TypeSelect {
			ans.OptionID = input
		} else {
			ans.Text = input
		}

		res := a.engine.SubmitAnswer(ans)
		if res.Correct {
			fmt.Printf("Correct! +%d XP\n", session.CorrectXP)
		} else {
			fmt.Printf("Not quite, the answer was %q. -1 heart (%d left)\n", ex.Answer, a.player.Hearts())
			if a.player.Hearts() <= 0 {
				fmt.Println("\nYou are out of hearts. Run 'lingo refill' and try again.")
				return nil
			}
		}

		// advance regardless of correctness, including on the final
		// exercise of the lesson
		a.engine.Next()
	}

	fmt.Printf("\nLesson complete! Streak: %d day(s), XP: %d\n", a.player.Streak(), a.player.XP())
	return nil
}
