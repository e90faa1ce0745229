package main

import (
	"context"
	"fmt"
)

func cmdGreetings(args []string) error {
	subCmd := "list"
	if len(args) > 0 {
		subCmd = args[0]
	}

	switch subCmd {
	case "list", "":
		return cmdGreetingsList()
	case "play":
		if len(args) < 2 {
			return fmt.Errorf("usage: lingo greetings play <id>")
		}
		return cmdGreetingsPlay(args[1])
	default:
		return fmt.Errorf("unknown greetings command: %s (valid: list, play)", subCmd)
	}
}

func cmdGreetingsList() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	phrases := a.registry.Greetings()
	if len(phrases) == 0 {
		fmt.Println("No greetings in the catalog.")
		return nil
	}

	fmt.Println("Greetings")
	fmt.Println("=========")
	for _, p := range phrases {
		fmt.Printf("%-4s %-24s %s\n", p.ID, p.Text, p.Translation)
	}
	return nil
}

func cmdGreetingsPlay(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, p := range a.registry.Greetings() {
		if p.ID != id {
			continue
		}
		ctx := context.Background()
		if p.AudioKey != "" {
			if err := a.audio.Play(ctx, p.AudioKey); err != nil {
				return fmt.Errorf("play %s: %w", p.AudioKey, err)
			}
		} else if err := a.audio.Speak(ctx, p.Translation); err != nil {
			return fmt.Errorf("speak phrase: %w", err)
		}
		fmt.Printf("%s - %s\n", p.Text, p.Translation)
		return nil
	}
	return fmt.Errorf("unknown greeting: %s", id)
}
