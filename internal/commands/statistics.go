package commands

import (
	"fmt"
	"sort"
)

// GameStatsCommand prints the aggregated statistics of one game.
func GameStatsCommand(args []string) error {
	if err := requireArgs(args, 1, "game-stats <game-id>"); err != nil {
		return err
	}
	gameID := args[0]

	result := playService.GameStats(gameID)
	fmt.Printf("%s\n", gameService.DisplayName(gameID, locale))
	fmt.Printf("  plays:         %d\n", result.TotalPlays)
	fmt.Printf("  total players: %d\n", result.TotalPlayers)
	fmt.Printf("  avg duration:  %.1f min\n", result.AvgDuration)
	return nil
}

// PlayerStatsCommand prints the aggregated statistics of one player.
func PlayerStatsCommand(args []string) error {
	if err := requireArgs(args, 1, "player-stats <name>"); err != nil {
		return err
	}
	name := args[0]

	result := playService.PlayerStats(name)
	fmt.Printf("%s\n", name)
	fmt.Printf("  plays:    %d\n", result.Plays)
	fmt.Printf("  wins:     %d\n", result.Wins)
	fmt.Printf("  win rate: %.1f%%\n", result.WinRate)
	return nil
}

// OverviewCommand prints statistics over the whole play log.
func OverviewCommand(args []string) error {
	result := playService.OverallStats()

	fmt.Printf("plays:          %d\n", result.TotalPlays)
	fmt.Printf("unique games:   %d\n", result.UniqueGames)
	fmt.Printf("total duration: %d min\n", result.TotalDuration)
	fmt.Printf("avg duration:   %.1f min\n", result.AvgDuration)

	if len(result.MonthlyPlays) > 0 {
		months := make([]string, 0, len(result.MonthlyPlays))
		for month := range result.MonthlyPlays {
			months = append(months, month)
		}
		sort.Strings(months)

		fmt.Println("by month:")
		for _, month := range months {
			fmt.Printf("  %s  %d\n", month, result.MonthlyPlays[month])
		}
	}
	return nil
}
