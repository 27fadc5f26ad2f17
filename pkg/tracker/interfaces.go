package tracker

import (
	"github.com/latoulicious/meeple/pkg/bgg"
	"github.com/latoulicious/meeple/pkg/database/repository"
	"github.com/latoulicious/meeple/pkg/stats"
	"github.com/latoulicious/meeple/pkg/store"
)

// Service represents the main service that holds all dependencies.
// GameRepo is nil when the catalog cache database is disabled; services
// fall through to the remote API in that case.
type Service struct {
	Store    *store.Store
	GameRepo *repository.GameRepository
	Catalog  *bgg.Client
	Stats    *stats.Engine
}

// GameServiceInterface defines the interface for game library operations
type GameServiceInterface interface {
	SearchGames(query string) ([]bgg.SearchResult, error)
	AddGame(gameID string) (*bgg.GameRecord, error)
	RefreshGame(gameID string) (*bgg.GameRecord, error)
	RemoveGame(gameID string) error
	DisplayName(gameID, locale string) string
}

// PlayServiceInterface defines the interface for play recording and
// statistics queries
type PlayServiceInterface interface {
	RecordPlay(play store.PlayRecord) (store.PlayRecord, error)
	AddPlayer(name string) error
	RemovePlayer(name string) error
	GameStats(gameID string) stats.GameStatsResult
	PlayerStats(name string) stats.PlayerStatsResult
	OverallStats() stats.OverallStatsResult
	Leaderboard(playID int) (map[string]int, error)
}

// SyncServiceInterface defines the interface for catalog refresh operations
type SyncServiceInterface interface {
	RefreshAllGames() error
}

// NewService creates a new Service instance with all dependencies
func NewService(
	st *store.Store,
	gameRepo *repository.GameRepository,
	catalog *bgg.Client,
	engine *stats.Engine,
) *Service {
	return &Service{
		Store:    st,
		GameRepo: gameRepo,
		Catalog:  catalog,
		Stats:    engine,
	}
}
