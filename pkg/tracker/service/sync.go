package service

import (
	"sort"

	"github.com/latoulicious/meeple/pkg/logging"
	"github.com/latoulicious/meeple/pkg/tracker"
)

type SyncService struct {
	service *tracker.Service
	logger  logging.Logger
}

var _ tracker.SyncServiceInterface = (*SyncService)(nil)

func NewSyncService(s *tracker.Service) tracker.SyncServiceInterface {
	return &SyncService{
		service: s,
		logger:  logging.GetGlobalLoggerFactory().CreateLogger("sync"),
	}
}

// RefreshAllGames re-fetches every registered game from the catalog and
// overwrites the stored records in place. Individual failures are logged
// and skipped so one broken item does not stall the whole pass.
func (ss *SyncService) RefreshAllGames() error {
	gameIDs := make([]string, 0, len(ss.service.Store.Games))
	for gameID := range ss.service.Store.Games {
		gameIDs = append(gameIDs, gameID)
	}
	sort.Strings(gameIDs)

	ss.logger.Info("Starting catalog refresh", map[string]interface{}{
		"games_count": len(gameIDs),
	})

	gameService := NewGameService(ss.service)
	successCount := 0
	errorCount := 0

	for _, gameID := range gameIDs {
		if _, err := gameService.RefreshGame(gameID); err != nil {
			// Log error but continue with other games
			ss.logger.Error("Failed to refresh game", err, map[string]interface{}{
				"game_id": gameID,
			})
			errorCount++
		} else {
			successCount++
		}
	}

	ss.logger.Info("Catalog refresh completed", map[string]interface{}{
		"games_count":   len(gameIDs),
		"success_count": successCount,
		"error_count":   errorCount,
	})

	return nil
}
