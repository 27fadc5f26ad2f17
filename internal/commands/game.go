package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/latoulicious/meeple/pkg/bgg"
	"github.com/latoulicious/meeple/pkg/logging"
)

// SearchCommand queries the remote catalog by free text.
func SearchCommand(args []string) error {
	if err := requireArgs(args, 1, "search <query>"); err != nil {
		return err
	}
	query := strings.Join(args, " ")

	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("search")
	logger.Info("Search command executed", map[string]interface{}{
		"query": query,
	})

	results, err := gameService.SearchGames(query)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("No results for %q\n", query)
		return nil
	}

	for _, result := range results {
		year := result.Year
		if year == "" {
			year = "?"
		}
		fmt.Printf("%-8s  %s (%s)\n", result.ID, result.Name, year)
	}
	return nil
}

// AddGameCommand registers a catalog game in the library.
func AddGameCommand(args []string) error {
	if err := requireArgs(args, 1, "add <game-id>"); err != nil {
		return err
	}
	gameID := args[0]

	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("add")
	logger.Info("Add command executed", map[string]interface{}{
		"game_id": gameID,
	})

	record, err := gameService.AddGame(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s (%s)\n", record.Names.Display(locale), record.ID)
	printRecordSummary(record.ID)
	return nil
}

// RefreshGameCommand re-fetches a registered game from the catalog.
func RefreshGameCommand(args []string) error {
	if err := requireArgs(args, 1, "refresh <game-id>"); err != nil {
		return err
	}
	gameID := args[0]

	record, err := gameService.RefreshGame(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Refreshed %s (%s)\n", record.Names.Display(locale), record.ID)
	printRecordSummary(record.ID)
	return nil
}

// RefreshAllCommand re-fetches every registered game.
func RefreshAllCommand(args []string) error {
	if err := syncService.RefreshAllGames(); err != nil {
		return err
	}
	fmt.Printf("Refreshed %d games\n", len(svc.Store.Games))
	return nil
}

// RemoveGameCommand removes a game from the library.
func RemoveGameCommand(args []string) error {
	if err := requireArgs(args, 1, "remove <game-id>"); err != nil {
		return err
	}
	gameID := args[0]
	name := gameService.DisplayName(gameID, locale)

	if err := gameService.RemoveGame(gameID); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", name)
	return nil
}

// ListGamesCommand lists the registered games sorted by id.
func ListGamesCommand(args []string) error {
	if len(svc.Store.Games) == 0 {
		fmt.Println("No games registered")
		return nil
	}

	gameIDs := make([]string, 0, len(svc.Store.Games))
	for gameID := range svc.Store.Games {
		gameIDs = append(gameIDs, gameID)
	}
	sort.Strings(gameIDs)

	for _, gameID := range gameIDs {
		record := svc.Store.Games[gameID]
		fmt.Printf("%-8s  %s  %d-%d players, %d min, rating %.1f\n",
			record.ID, record.Names.Display(locale),
			record.MinPlayers, record.MaxPlayers, record.PlayingTime, record.Rating)
	}
	return nil
}

func printRecordSummary(gameID string) {
	record, exists := svc.Store.Games[gameID]
	if !exists {
		return
	}

	fmt.Printf("  players: %d-%d", record.MinPlayers, record.MaxPlayers)
	if record.BestPlayerCount != "" {
		fmt.Printf(" (best %s)", record.BestPlayerCount)
	}
	fmt.Printf(", playtime: %d min, rating: %.1f\n", record.PlayingTime, record.Rating)

	if len(record.Ranking) > 0 {
		categories := make([]string, 0, len(record.Ranking))
		for category := range record.Ranking {
			categories = append(categories, string(category))
		}
		sort.Strings(categories)
		parts := make([]string, 0, len(categories))
		for _, category := range categories {
			parts = append(parts, fmt.Sprintf("%s #%d", category, record.Ranking[bgg.RankCategory(category)]))
		}
		fmt.Printf("  ranks: %s\n", strings.Join(parts, ", "))
	}
}
