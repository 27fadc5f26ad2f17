package service

import (
	"fmt"

	"github.com/latoulicious/meeple/pkg/logging"
	"github.com/latoulicious/meeple/pkg/stats"
	"github.com/latoulicious/meeple/pkg/store"
	"github.com/latoulicious/meeple/pkg/tracker"
)

type PlayService struct {
	service *tracker.Service
	logger  logging.Logger
}

var _ tracker.PlayServiceInterface = (*PlayService)(nil)

func NewPlayService(s *tracker.Service) tracker.PlayServiceInterface {
	return &PlayService{
		service: s,
		logger:  logging.GetGlobalLoggerFactory().CreateLogger("plays"),
	}
}

// RecordPlay validates and appends a play session to the log.
//
// The game must be registered and every participant must carry a score.
// Participants mentioned for the first time are registered as players.
// When the play does not carry a mode, the game's score sheet decides;
// sheetless games default to competitive.
func (ps *PlayService) RecordPlay(play store.PlayRecord) (store.PlayRecord, error) {
	if _, exists := ps.service.Store.Games[play.GameID]; !exists {
		return store.PlayRecord{}, fmt.Errorf("game %s is not registered", play.GameID)
	}
	if len(play.Participants) == 0 {
		return store.PlayRecord{}, fmt.Errorf("play has no participants")
	}

	seen := make(map[string]bool, len(play.Participants))
	for _, name := range play.Participants {
		if seen[name] {
			return store.PlayRecord{}, fmt.Errorf("player %s is listed twice", name)
		}
		seen[name] = true

		if _, ok := play.Scores[name]; !ok {
			return store.PlayRecord{}, fmt.Errorf("participant %s has no score", name)
		}
	}

	if play.Mode == "" {
		play.Mode = store.ModeCompetitive
		if sheet, ok := ps.service.Store.SheetFor(play.GameID); ok {
			play.Mode = sheet.Mode
			play.SheetUsed = sheet.Name
		}
	}

	for _, name := range play.Participants {
		if _, err := ps.service.Store.AddPlayer(name); err != nil {
			return store.PlayRecord{}, err
		}
	}

	return ps.service.Store.AddPlay(play)
}

// AddPlayer registers a player by name.
func (ps *PlayService) AddPlayer(name string) error {
	created, err := ps.service.Store.AddPlayer(name)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("player %s is already registered", name)
	}
	return nil
}

// RemovePlayer deletes a player record. Existing plays keep referencing
// the name; statistics tolerate the vanished key.
func (ps *PlayService) RemovePlayer(name string) error {
	return ps.service.Store.DeletePlayer(name)
}

// GameStats aggregates the plays of one game.
func (ps *PlayService) GameStats(gameID string) stats.GameStatsResult {
	return ps.service.Stats.GameStats(ps.service.Store.Plays, gameID)
}

// PlayerStats aggregates one player's plays and wins.
func (ps *PlayService) PlayerStats(name string) stats.PlayerStatsResult {
	return ps.service.Stats.PlayerStats(ps.service.Store.Plays, name)
}

// OverallStats aggregates the whole play log.
func (ps *PlayService) OverallStats() stats.OverallStatsResult {
	return ps.service.Stats.OverallStats(ps.service.Store.Plays)
}

// Leaderboard returns tie-aware dense ranks for the scores of one play.
func (ps *PlayService) Leaderboard(playID int) (map[string]int, error) {
	if playID < 0 || playID >= len(ps.service.Store.Plays) {
		return nil, fmt.Errorf("play %d does not exist", playID)
	}
	return stats.DenseRanks(ps.service.Store.Plays[playID].Scores), nil
}
