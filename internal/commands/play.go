package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/latoulicious/meeple/pkg/logging"
	"github.com/latoulicious/meeple/pkg/store"
	"gopkg.in/yaml.v3"
)

// RecordPlayCommand records a play session described by a YAML file.
//
// The file carries a single play record:
//
//	game_id: "13"
//	date: "2026-08-30"
//	duration: 75
//	participants: [Alice, Bob]
//	scores: {Alice: 10, Bob: 8}
func RecordPlayCommand(args []string) error {
	if err := requireArgs(args, 1, "record <play.yaml>"); err != nil {
		return err
	}
	path := args[0]

	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("record")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read play file: %w", err)
	}

	var play store.PlayRecord
	if err := yaml.Unmarshal(data, &play); err != nil {
		return fmt.Errorf("failed to parse play file: %w", err)
	}

	saved, err := playService.RecordPlay(play)
	if err != nil {
		return err
	}

	logger.Info("Play recorded", map[string]interface{}{
		"play_id": saved.ID,
		"game_id": saved.GameID,
		"players": len(saved.Participants),
	})

	fmt.Printf("Recorded play #%d of %s (%d players, %s)\n",
		saved.ID, gameService.DisplayName(saved.GameID, locale),
		len(saved.Participants), saved.Mode)
	return nil
}

// ListPlaysCommand lists recorded plays, optionally filtered by game.
func ListPlaysCommand(args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
	}

	shown := 0
	for _, play := range svc.Store.Plays {
		if gameID != "" && play.GameID != gameID {
			continue
		}
		fmt.Printf("#%-4d %s  %s  %d players, %d min, %s\n",
			play.ID, play.Date, gameService.DisplayName(play.GameID, locale),
			len(play.Participants), play.Duration, play.Mode)
		shown++
	}
	if shown == 0 {
		fmt.Println("No plays recorded")
	}
	return nil
}

// LeaderboardCommand prints the tie-aware ranks for one play.
func LeaderboardCommand(args []string) error {
	if err := requireArgs(args, 1, "leaderboard <play-id>"); err != nil {
		return err
	}
	playID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid play id: %s", args[0])
	}

	ranks, err := playService.Leaderboard(playID)
	if err != nil {
		return err
	}

	play := svc.Store.Plays[playID]
	names := make([]string, 0, len(ranks))
	for name := range ranks {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if ranks[names[i]] != ranks[names[j]] {
			return ranks[names[i]] < ranks[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		fmt.Printf("%d. %s (%.1f)\n", ranks[name], name, play.Scores[name])
	}
	return nil
}

// SetSheetCommand attaches a score sheet to a game. The sheet is either the
// built-in generic sheet ("generic") or a custom definition in a YAML file.
func SetSheetCommand(args []string) error {
	if err := requireArgs(args, 2, "sheet <game-id> <sheet.yaml|generic>"); err != nil {
		return err
	}
	gameID := args[0]

	var sheet store.ScoreSheet
	if args[1] == "generic" {
		sheet = store.NewGenericSheet()
	} else {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read sheet file: %w", err)
		}
		if err := yaml.Unmarshal(data, &sheet); err != nil {
			return fmt.Errorf("failed to parse sheet file: %w", err)
		}
	}

	if err := svc.Store.SetScoreSheet(gameID, sheet); err != nil {
		return err
	}
	fmt.Printf("Attached sheet %q to %s\n", sheet.Name, gameService.DisplayName(gameID, locale))
	return nil
}
