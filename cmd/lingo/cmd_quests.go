package main

import (
	"fmt"

	"github.com/felixgeelhaar/lingo/internal/quest"
)

func cmdQuests(args []string) error {
	subCmd := "list"
	if len(args) > 0 {
		subCmd = args[0]
	}

	switch subCmd {
	case "list", "":
		return cmdQuestsList()
	case "claim":
		if len(args) < 2 {
			return fmt.Errorf("usage: lingo quests claim <id>")
		}
		return cmdQuestsClaim(args[1])
	case "reset":
		return cmdQuestsReset()
	default:
		return fmt.Errorf("unknown quests command: %s (valid: list, claim, reset)", subCmd)
	}
}

func questStatuses(a *app) []quest.Status {
	game := quest.GameSignal{XP: a.player.XP(), LastStudyAt: a.player.LastStudyAt()}
	a.quests.SyncFromGame(game)
	return quest.Evaluate(quest.DefaultDefinitions(), a.quests, game, a.clock.Now())
}

func cmdQuestsList() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	statuses := questStatuses(a)

	fmt.Println("Quests")
	fmt.Println("======")
	for _, scope := range []quest.Scope{quest.ScopeDaily, quest.ScopeWeekly} {
		if scope == quest.ScopeDaily {
			fmt.Printf("\nDaily (%s)\n", a.quests.DailyKey())
		} else {
			fmt.Printf("\nWeekly (%s)\n", a.quests.WeeklyKey())
		}
		for _, st := range statuses {
			if st.Scope != scope {
				continue
			}
			progress := st.Progress
			if progress > st.Target {
				progress = st.Target
			}
			state := "in progress"
			if st.Claimed {
				state = "claimed"
			} else if st.Done() {
				state = "ready to claim"
			}
			fmt.Printf("  %-10s %-28s %d/%d  +%d XP  [%s]\n", st.ID, st.Title, progress, st.Target, st.RewardXP, state)
		}
	}
	return nil
}

func cmdQuestsClaim(id string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	for _, st := range questStatuses(a) {
		if st.ID != id {
			continue
		}
		if st.Claimed {
			return fmt.Errorf("quest %s already claimed this window", id)
		}
		if !st.Done() {
			return fmt.Errorf("quest %s not complete yet (%d/%d)", id, st.Progress, st.Target)
		}
		// pay out first, then record the claim
		a.player.AddXP(st.RewardXP)
		a.quests.Claim(st.Scope, st.ID)
		fmt.Printf("Claimed %q: +%d XP (total %d)\n", st.Title, st.RewardXP, a.player.XP())
		return nil
	}
	return fmt.Errorf("unknown quest: %s", id)
}

func cmdQuestsReset() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.quests.ResetAll()
	fmt.Println("Quest windows reset.")
	return nil
}
