package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "lesson":
		err = cmdLesson(os.Args[2:])
	case "quests":
		err = cmdQuests(os.Args[2:])
	case "stats":
		err = cmdStats()
	case "greetings":
		err = cmdGreetings(os.Args[2:])
	case "refill":
		err = cmdRefill()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("lingo %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Lingo - Language learning from the terminal

Usage:
  lingo <command> [arguments]

Lesson Commands:
  lesson list          List lessons and your progress
  lesson start <id>    Work through a lesson

Quest Commands:
  quests               Show daily and weekly quests
  quests claim <id>    Claim a completed quest's reward
  quests reset         Reset all quest windows

Player Commands:
  stats                Show XP, hearts, streak, and progress
  refill               Refill hearts

Phrasebook Commands:
  greetings            List greeting phrases
  greetings play <id>  Play a greeting phrase

Other:
  version              Show version
  help                 Show this help`)
}
