package commands

import (
	"fmt"

	"github.com/latoulicious/meeple/pkg/tracker"
	"github.com/latoulicious/meeple/pkg/tracker/service"
)

// Package-level service state, set once during application initialization.
var (
	svc         *tracker.Service
	gameService tracker.GameServiceInterface
	playService tracker.PlayServiceInterface
	syncService tracker.SyncServiceInterface
	locale      string
)

// InitializeCommands wires the command handlers to the shared service.
func InitializeCommands(s *tracker.Service, displayLocale string) {
	svc = s
	gameService = service.NewGameService(s)
	playService = service.NewPlayService(s)
	syncService = service.NewSyncService(s)
	locale = displayLocale
}

// Handler is the signature every CLI command implements.
type Handler func(args []string) error

// Command describes one CLI subcommand.
type Command struct {
	Name        string
	Usage       string
	Description string
	Handler     Handler
}

// All returns the registered commands in display order.
func All() []Command {
	return []Command{
		{"search", "search <query>", "Search the remote catalog by name", SearchCommand},
		{"add", "add <game-id>", "Register a catalog game in the library", AddGameCommand},
		{"refresh", "refresh <game-id>", "Re-fetch one game's catalog metadata", RefreshGameCommand},
		{"refresh-all", "refresh-all", "Re-fetch every registered game", RefreshAllCommand},
		{"remove", "remove <game-id>", "Remove a game from the library", RemoveGameCommand},
		{"games", "games", "List the registered games", ListGamesCommand},
		{"player-add", "player-add <name>", "Register a player", AddPlayerCommand},
		{"player-remove", "player-remove <name>", "Remove a player", RemovePlayerCommand},
		{"players", "players", "List the registered players", ListPlayersCommand},
		{"record", "record <play.yaml>", "Record a play session from a YAML file", RecordPlayCommand},
		{"plays", "plays [game-id]", "List recorded plays", ListPlaysCommand},
		{"leaderboard", "leaderboard <play-id>", "Show tie-aware ranks for one play", LeaderboardCommand},
		{"sheet", "sheet <game-id> <sheet.yaml>", "Attach a score sheet to a game", SetSheetCommand},
		{"game-stats", "game-stats <game-id>", "Show statistics for one game", GameStatsCommand},
		{"player-stats", "player-stats <name>", "Show statistics for one player", PlayerStatsCommand},
		{"overview", "overview", "Show overall play statistics", OverviewCommand},
		{"data", "data", "Show the data files backing the store", DataInfoCommand},
		{"version", "version", "Show version information", VersionCommand},
	}
}

// Lookup finds a command by name.
func Lookup(name string) (Command, bool) {
	for _, cmd := range All() {
		if cmd.Name == name {
			return cmd, true
		}
	}
	return Command{}, false
}

func requireArgs(args []string, n int, usage string) error {
	if len(args) < n {
		return fmt.Errorf("usage: meeple %s", usage)
	}
	return nil
}
