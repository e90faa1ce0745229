package main

import (
	"fmt"

	"github.com/felixgeelhaar/lingo/internal/player"
)

// cmdStats shows player stats and lesson progress
func cmdStats() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("Player")
	fmt.Println("======")
	fmt.Printf("XP:         %d\n", a.player.XP())
	fmt.Printf("Hearts:     %d/%d\n", a.player.Hearts(), player.MaxHearts)
	fmt.Printf("Streak:     %d day(s)\n", a.player.Streak())
	if last := a.player.LastStudyAt(); last != "" {
		fmt.Printf("Last study: %s\n", last)
	}

	lessons := a.registry.Lessons()
	if len(lessons) == 0 {
		return nil
	}

	fmt.Println("\nProgress")
	fmt.Println("========")
	for _, l := range lessons {
		fmt.Printf("%-28s %s %3.0f%%\n", l.Title, progressBar(a.engine.Progress(l.ID), 20), a.engine.Progress(l.ID)*100)
	}
	return nil
}

func progressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return "[" + string(bar) + "]"
}
