package repository

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/latoulicious/meeple/pkg/bgg"
	"github.com/latoulicious/meeple/pkg/database/models"
)

// GameRepository handles database operations for the catalog cache
type GameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// GetGameByGameID returns the cached record for a catalog id, or nil when
// the id has not been cached yet.
func (r *GameRepository) GetGameByGameID(gameID string) (*bgg.GameRecord, error) {
	var game models.Game
	err := r.db.Preload("Ranks").Where("game_id = ?", gameID).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toRecord(&game), nil
}

// SaveGame inserts or replaces the cache entry for a catalog record,
// including its ranking rows.
func (r *GameRepository) SaveGame(record *bgg.GameRecord) error {
	game, err := toModel(record)
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Game
		err := tx.Where("game_id = ?", record.ID).First(&existing).Error
		switch {
		case err == nil:
			game.ID = existing.ID
			game.CreatedAt = existing.CreatedAt
			if err := tx.Where("game_db_id = ?", existing.ID).Delete(&models.GameRank{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&existing).Select(
				"NamePrimary", "NameJp", "NameEn", "Alternates", "Rating",
				"MinPlayers", "MaxPlayers", "PlayingTime", "BestPlayerCount", "ImageURL",
			).Updates(game).Error; err != nil {
				return err
			}
			for i := range game.Ranks {
				game.Ranks[i].GameDBID = existing.ID
				if err := tx.Create(&game.Ranks[i]).Error; err != nil {
					return err
				}
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(game).Error
		default:
			return err
		}
	})
}

// DeleteGame drops the cache entry for a catalog id.
func (r *GameRepository) DeleteGame(gameID string) error {
	return r.db.Where("game_id = ?", gameID).Delete(&models.Game{}).Error
}

// GetAllGames returns every cached catalog record.
func (r *GameRepository) GetAllGames() ([]*bgg.GameRecord, error) {
	var games []models.Game
	if err := r.db.Preload("Ranks").Find(&games).Error; err != nil {
		return nil, err
	}

	records := make([]*bgg.GameRecord, 0, len(games))
	for i := range games {
		records = append(records, toRecord(&games[i]))
	}
	return records, nil
}

// toModel converts a catalog record to its database shape.
func toModel(record *bgg.GameRecord) (*models.Game, error) {
	alternates, err := json.Marshal(record.Names.Alternates)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		GameID:          record.ID,
		NamePrimary:     record.Names.Primary,
		NameJp:          record.Names.Japanese,
		NameEn:          record.Names.English,
		Alternates:      string(alternates),
		Rating:          record.Rating,
		MinPlayers:      record.MinPlayers,
		MaxPlayers:      record.MaxPlayers,
		PlayingTime:     record.PlayingTime,
		BestPlayerCount: record.BestPlayerCount,
		ImageURL:        record.ImageURL,
	}

	for category, position := range record.Ranking {
		game.Ranks = append(game.Ranks, models.GameRank{
			Category: string(category),
			Position: position,
		})
	}
	return game, nil
}

// toRecord converts a database row back to a catalog record.
func toRecord(game *models.Game) *bgg.GameRecord {
	record := &bgg.GameRecord{
		ID: game.GameID,
		Names: bgg.NameSet{
			Primary:  game.NamePrimary,
			Japanese: game.NameJp,
			English:  game.NameEn,
		},
		Rating:          game.Rating,
		Ranking:         make(bgg.RankingSet),
		MinPlayers:      game.MinPlayers,
		MaxPlayers:      game.MaxPlayers,
		PlayingTime:     game.PlayingTime,
		BestPlayerCount: game.BestPlayerCount,
		ImageURL:        game.ImageURL,
	}

	if game.Alternates != "" {
		// Ignore decode failures; alternates are display-only.
		_ = json.Unmarshal([]byte(game.Alternates), &record.Names.Alternates)
	}

	for _, rank := range game.Ranks {
		record.Ranking[bgg.RankCategory(rank.Category)] = rank.Position
	}
	return record
}
