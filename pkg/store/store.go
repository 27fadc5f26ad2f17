package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/latoulicious/meeple/pkg/bgg"
	"github.com/latoulicious/meeple/pkg/logging"
)

// Store persists the game library, players, play log and score sheets as
// separate flat YAML files under one data directory. Each mutation saves
// only the file it touched.
type Store struct {
	dataDir string
	files   map[string]string
	logger  logging.Logger

	Games   map[string]*bgg.GameRecord
	Players map[string]PlayerRecord
	Plays   []PlayRecord
	Sheets  map[string]ScoreSheet
}

// FileInfo describes one data file for diagnostics.
type FileInfo struct {
	Path        string
	SizeBytes   int64
	ModifiedAt  time.Time
	RecordCount int
}

// Open creates the data directory if needed and loads all data files.
// Missing or empty files load as empty collections.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dataDir: dataDir,
		files: map[string]string{
			"games":        filepath.Join(dataDir, "games.yaml"),
			"players":      filepath.Join(dataDir, "players.yaml"),
			"plays":        filepath.Join(dataDir, "plays.yaml"),
			"score_sheets": filepath.Join(dataDir, "score_sheets.yaml"),
		},
		logger:  logging.GetGlobalLoggerFactory().CreateStoreLogger(dataDir),
		Games:   make(map[string]*bgg.GameRecord),
		Players: make(map[string]PlayerRecord),
		Sheets:  make(map[string]ScoreSheet),
	}

	if err := s.loadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) loadAll() error {
	if err := s.loadFile("games", &s.Games); err != nil {
		return err
	}
	if err := s.loadFile("players", &s.Players); err != nil {
		return err
	}
	if err := s.loadFile("plays", &s.Plays); err != nil {
		return err
	}
	if err := s.loadFile("score_sheets", &s.Sheets); err != nil {
		return err
	}

	// A nil map after decoding an empty file would break later writes.
	if s.Games == nil {
		s.Games = make(map[string]*bgg.GameRecord)
	}
	if s.Players == nil {
		s.Players = make(map[string]PlayerRecord)
	}
	if s.Sheets == nil {
		s.Sheets = make(map[string]ScoreSheet)
	}

	s.logger.Info("Loaded data files", map[string]interface{}{
		"games":   len(s.Games),
		"players": len(s.Players),
		"plays":   len(s.Plays),
		"sheets":  len(s.Sheets),
	})
	return nil
}

func (s *Store) loadFile(name string, out interface{}) error {
	path := s.files[name]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func (s *Store) saveFile(name string, in interface{}) error {
	path := s.files[name]
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaveGames writes the game library file.
func (s *Store) SaveGames() error { return s.saveFile("games", s.Games) }

// SavePlayers writes the players file.
func (s *Store) SavePlayers() error { return s.saveFile("players", s.Players) }

// SavePlays writes the play log file.
func (s *Store) SavePlays() error { return s.saveFile("plays", s.Plays) }

// SaveSheets writes the score sheets file.
func (s *Store) SaveSheets() error { return s.saveFile("score_sheets", s.Sheets) }

// AddGame registers a fetched game. Records without an id or name are
// rejected, as are ids already in the library.
func (s *Store) AddGame(record *bgg.GameRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("game record has no id")
	}
	if record.Names.Primary == "" {
		return fmt.Errorf("game %s has no usable name", record.ID)
	}
	if _, exists := s.Games[record.ID]; exists {
		return fmt.Errorf("game %s is already registered", record.ID)
	}

	s.Games[record.ID] = record
	if err := s.SaveGames(); err != nil {
		return err
	}

	s.logger.Info("Registered game", map[string]interface{}{
		"game_id": record.ID,
		"primary": record.Names.Primary,
	})
	return nil
}

// UpdateGame overwrites a registered game's catalog fields in place after a
// re-fetch. The id never changes.
func (s *Store) UpdateGame(record *bgg.GameRecord) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("game record has no id")
	}
	if _, exists := s.Games[record.ID]; !exists {
		return fmt.Errorf("game %s is not registered", record.ID)
	}
	s.Games[record.ID] = record
	return s.SaveGames()
}

// DeleteGame removes a game and its score sheet. Deletion is refused while
// any play still references the game.
func (s *Store) DeleteGame(gameID string) error {
	if _, exists := s.Games[gameID]; !exists {
		return fmt.Errorf("game %s is not registered", gameID)
	}

	related := 0
	for _, play := range s.Plays {
		if play.GameID == gameID {
			related++
		}
	}
	if related > 0 {
		return fmt.Errorf("game %s has %d play records and cannot be deleted", gameID, related)
	}

	delete(s.Games, gameID)
	if err := s.SaveGames(); err != nil {
		return err
	}

	if _, ok := s.Sheets[gameID]; ok {
		delete(s.Sheets, gameID)
		if err := s.SaveSheets(); err != nil {
			return err
		}
	}

	s.logger.Info("Deleted game", map[string]interface{}{"game_id": gameID})
	return nil
}

// AddPlayer registers a player if the name is new. Returns whether a record
// was created.
func (s *Store) AddPlayer(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("player name is empty")
	}
	if _, exists := s.Players[name]; exists {
		return false, nil
	}

	s.Players[name] = PlayerRecord{
		Name:      name,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	return true, s.SavePlayers()
}

// DeletePlayer removes a player record. Plays referencing the name are kept
// untouched; statistics tolerate vanished player keys.
func (s *Store) DeletePlayer(name string) error {
	if _, exists := s.Players[name]; !exists {
		return fmt.Errorf("player %s is not registered", name)
	}
	delete(s.Players, name)
	return s.SavePlayers()
}

// AddPlay appends a play to the log, assigning its sequence id and
// creation timestamp.
func (s *Store) AddPlay(play PlayRecord) (PlayRecord, error) {
	play.ID = len(s.Plays)
	play.CreatedAt = time.Now().Format(time.RFC3339)
	s.Plays = append(s.Plays, play)
	if err := s.SavePlays(); err != nil {
		return PlayRecord{}, err
	}

	s.logger.Info("Recorded play", map[string]interface{}{
		"play_id": play.ID,
		"game_id": play.GameID,
		"players": len(play.Scores),
	})
	return play, nil
}

// SetScoreSheet installs or replaces the score sheet of a game.
func (s *Store) SetScoreSheet(gameID string, sheet ScoreSheet) error {
	s.Sheets[gameID] = sheet
	return s.SaveSheets()
}

// SheetFor returns the score sheet of a game, if one is defined.
func (s *Store) SheetFor(gameID string) (ScoreSheet, bool) {
	sheet, ok := s.Sheets[gameID]
	return sheet, ok
}

// DataInfo reports per-file sizes, modification times and record counts.
func (s *Store) DataInfo() map[string]FileInfo {
	counts := map[string]int{
		"games":        len(s.Games),
		"players":      len(s.Players),
		"plays":        len(s.Plays),
		"score_sheets": len(s.Sheets),
	}

	info := make(map[string]FileInfo, len(s.files))
	for name, path := range s.files {
		entry := FileInfo{Path: path, RecordCount: counts[name]}
		if stat, err := os.Stat(path); err == nil {
			entry.SizeBytes = stat.Size()
			entry.ModifiedAt = stat.ModTime()
		}
		info[name] = entry
	}
	return info
}
