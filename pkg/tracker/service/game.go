package service

import (
	"fmt"

	"github.com/latoulicious/meeple/pkg/bgg"
	"github.com/latoulicious/meeple/pkg/logging"
	"github.com/latoulicious/meeple/pkg/tracker"
)

type GameService struct {
	service *tracker.Service
	logger  logging.Logger
}

var _ tracker.GameServiceInterface = (*GameService)(nil)

func NewGameService(s *tracker.Service) tracker.GameServiceInterface {
	return &GameService{
		service: s,
		logger:  logging.GetGlobalLoggerFactory().CreateLogger("games"),
	}
}

// SearchGames queries the remote catalog by free text.
func (gs *GameService) SearchGames(query string) ([]bgg.SearchResult, error) {
	results, err := gs.service.Catalog.SearchGames(query)
	if err != nil {
		gs.logger.Error("Catalog search failed", err, map[string]interface{}{
			"query": query,
		})
		return nil, err
	}
	return results, nil
}

// AddGame registers a catalog game in the library, checking the cache
// database first and falling back to the remote API.
func (gs *GameService) AddGame(gameID string) (*bgg.GameRecord, error) {
	if _, exists := gs.service.Store.Games[gameID]; exists {
		return nil, fmt.Errorf("game %s is already registered", gameID)
	}

	record, err := gs.lookupRecord(gameID)
	if err != nil {
		return nil, err
	}

	if err := gs.service.Store.AddGame(record); err != nil {
		return nil, err
	}
	return record, nil
}

// RefreshGame re-fetches a registered game and overwrites its catalog
// fields in place. The game id never changes.
func (gs *GameService) RefreshGame(gameID string) (*bgg.GameRecord, error) {
	if _, exists := gs.service.Store.Games[gameID]; !exists {
		return nil, fmt.Errorf("game %s is not registered", gameID)
	}

	record, err := gs.service.Catalog.GetGameDetails(gameID)
	if err != nil {
		gs.logger.Error("Catalog refresh failed", err, map[string]interface{}{
			"game_id": gameID,
		})
		return nil, err
	}

	gs.cacheRecord(record)

	if err := gs.service.Store.UpdateGame(record); err != nil {
		return nil, err
	}

	gs.logger.Info("Refreshed game from catalog", map[string]interface{}{
		"game_id": gameID,
		"primary": record.Names.Primary,
	})
	return record, nil
}

// RemoveGame deletes a game from the library. The store refuses while play
// records still reference it; the catalog cache entry is kept.
func (gs *GameService) RemoveGame(gameID string) error {
	return gs.service.Store.DeleteGame(gameID)
}

// DisplayName resolves the localized display name of a registered game,
// falling back to the game id for unknown games.
func (gs *GameService) DisplayName(gameID, locale string) string {
	record, exists := gs.service.Store.Games[gameID]
	if !exists || record == nil {
		return gameID
	}
	if name := record.Names.Display(locale); name != "" {
		return name
	}
	return gameID
}

// lookupRecord finds a catalog record cache-first, then via the API.
func (gs *GameService) lookupRecord(gameID string) (*bgg.GameRecord, error) {
	if gs.service.GameRepo != nil {
		cached, err := gs.service.GameRepo.GetGameByGameID(gameID)
		if err != nil {
			gs.logger.Warn("Cache lookup failed, falling back to API", map[string]interface{}{
				"game_id": gameID,
				"error":   err.Error(),
			})
		} else if cached != nil {
			gs.logger.Debug("Found game in cache", map[string]interface{}{
				"game_id": gameID,
			})
			return cached, nil
		}
	}

	record, err := gs.service.Catalog.GetGameDetails(gameID)
	if err != nil {
		return nil, err
	}

	gs.cacheRecord(record)
	return record, nil
}

// cacheRecord saves a fetched record to the cache database. Cache failures
// are logged but never fail the operation.
func (gs *GameService) cacheRecord(record *bgg.GameRecord) {
	if gs.service.GameRepo == nil {
		return
	}
	if err := gs.service.GameRepo.SaveGame(record); err != nil {
		gs.logger.Warn("Failed to save game to cache", map[string]interface{}{
			"game_id": record.ID,
			"error":   err.Error(),
		})
	}
}
