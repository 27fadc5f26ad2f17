package commands

import (
	"fmt"
	"sort"
)

// AddPlayerCommand registers a player by name.
func AddPlayerCommand(args []string) error {
	if err := requireArgs(args, 1, "player-add <name>"); err != nil {
		return err
	}
	name := args[0]

	if err := playService.AddPlayer(name); err != nil {
		return err
	}
	fmt.Printf("Registered player %s\n", name)
	return nil
}

// RemovePlayerCommand removes a player record.
func RemovePlayerCommand(args []string) error {
	if err := requireArgs(args, 1, "player-remove <name>"); err != nil {
		return err
	}
	name := args[0]

	if err := playService.RemovePlayer(name); err != nil {
		return err
	}
	fmt.Printf("Removed player %s\n", name)
	return nil
}

// ListPlayersCommand lists the registered players sorted by name.
func ListPlayersCommand(args []string) error {
	if len(svc.Store.Players) == 0 {
		fmt.Println("No players registered")
		return nil
	}

	names := make([]string, 0, len(svc.Store.Players))
	for name := range svc.Store.Players {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		player := svc.Store.Players[name]
		if player.Notes != "" {
			fmt.Printf("%s  (%s)\n", name, player.Notes)
		} else {
			fmt.Println(name)
		}
	}
	return nil
}
