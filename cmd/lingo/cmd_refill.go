package main

import (
	"fmt"

	"github.com/felixgeelhaar/lingo/internal/player"
)

// cmdRefill restores the player's hearts
func cmdRefill() error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	a.player.RefillHearts()
	fmt.Printf("Hearts refilled: %d/%d\n", a.player.Hearts(), player.MaxHearts)
	return nil
}
