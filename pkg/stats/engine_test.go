package stats

import (
	"testing"

	"github.com/latoulicious/meeple/pkg/store"
	"github.com/stretchr/testify/assert"
)

func competitivePlay(gameID, date string, duration int, participants []string, scores map[string]float64) store.PlayRecord {
	return store.PlayRecord{
		GameID:       gameID,
		Date:         date,
		Duration:     duration,
		Participants: participants,
		Scores:       scores,
		Mode:         store.ModeCompetitive,
	}
}

func cooperativePlay(gameID string, scores map[string]float64, global map[string]interface{}) store.PlayRecord {
	return store.PlayRecord{
		GameID: gameID,
		Date:   "2026-08-30",
		Scores: scores,
		Mode:   store.ModeCooperative,
		Detailed: &store.DetailedScores{
			Global: global,
		},
	}
}

func TestGameStats(t *testing.T) {
	engine := NewEngine()
	plays := []store.PlayRecord{
		competitivePlay("13", "2026-08-01", 90, []string{"Alice", "Bob"}, map[string]float64{"Alice": 10, "Bob": 8}),
		competitivePlay("13", "2026-08-15", 60, []string{"Alice", "Bob", "Carol"}, map[string]float64{"Alice": 7, "Bob": 9, "Carol": 5}),
		competitivePlay("99", "2026-08-20", 30, []string{"Alice"}, map[string]float64{"Alice": 1}),
	}

	result := engine.GameStats(plays, "13")
	assert.Equal(t, 2, result.TotalPlays)
	assert.Equal(t, 5, result.TotalPlayers)
	assert.Equal(t, 75.0, result.AvgDuration)
}

func TestGameStatsNoPlays(t *testing.T) {
	engine := NewEngine()

	result := engine.GameStats(nil, "13")
	assert.Equal(t, GameStatsResult{}, result)
}

func TestGameStatsRoundsAverage(t *testing.T) {
	engine := NewEngine()
	plays := []store.PlayRecord{
		competitivePlay("13", "2026-08-01", 50, nil, map[string]float64{"Alice": 1}),
		competitivePlay("13", "2026-08-02", 50, nil, map[string]float64{"Alice": 1}),
		competitivePlay("13", "2026-08-03", 51, nil, map[string]float64{"Alice": 1}),
	}

	result := engine.GameStats(plays, "13")
	assert.Equal(t, 50.3, result.AvgDuration)
}

func TestPlayerStatsCompetitive(t *testing.T) {
	engine := NewEngine()
	plays := []store.PlayRecord{
		competitivePlay("13", "2026-08-01", 90, []string{"Alice", "Bob"}, map[string]float64{"Alice": 10, "Bob": 8}),
		competitivePlay("13", "2026-08-02", 90, []string{"Alice", "Bob"}, map[string]float64{"Alice": 5, "Bob": 9}),
		competitivePlay("99", "2026-08-03", 30, []string{"Bob", "Carol"}, map[string]float64{"Bob": 3, "Carol": 4}),
	}

	alice := engine.PlayerStats(plays, "Alice")
	assert.Equal(t, 2, alice.Plays)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 50.0, alice.WinRate)

	bob := engine.PlayerStats(plays, "Bob")
	assert.Equal(t, 3, bob.Plays)
	assert.Equal(t, 1, bob.Wins)
	assert.Equal(t, 33.3, bob.WinRate)
}

func TestPlayerStatsTieGoesToFirstParticipant(t *testing.T) {
	engine := NewEngine()
	plays := []store.PlayRecord{
		competitivePlay("13", "2026-08-01", 60, []string{"Bob", "Alice"}, map[string]float64{"Alice": 50, "Bob": 50}),
	}

	assert.Equal(t, 1, engine.PlayerStats(plays, "Bob").Wins)
	assert.Equal(t, 0, engine.PlayerStats(plays, "Alice").Wins)
}

func TestPlayerStatsCooperative(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name   string
		global map[string]interface{}
		won    bool
	}{
		{"japanese victory marker", map[string]interface{}{"結果": "勝利！"}, true},
		{"english victory marker", map[string]interface{}{"Result": "Victory"}, true},
		{"win marker", map[string]interface{}{"Result": "Win by a hair"}, true},
		{"defeat", map[string]interface{}{"結果": "敗北"}, false},
		{"no result field", map[string]interface{}{"Rounds": "12"}, false},
		{"non-string result", map[string]interface{}{"Result": 42}, false},
		{"no global fields", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plays := []store.PlayRecord{
				cooperativePlay("77", map[string]float64{"Alice": 0, "Bob": 0}, tt.global),
			}

			expected := 0
			if tt.won {
				expected = 1
			}
			// A shared outcome credits or denies every participant alike.
			assert.Equal(t, expected, engine.PlayerStats(plays, "Alice").Wins)
			assert.Equal(t, expected, engine.PlayerStats(plays, "Bob").Wins)
		})
	}
}

func TestPlayerStatsSkipsNonParticipants(t *testing.T) {
	engine := NewEngine()
	plays := []store.PlayRecord{
		competitivePlay("13", "2026-08-01", 60, []string{"Alice"}, map[string]float64{"Alice": 10}),
	}

	result := engine.PlayerStats(plays, "Mallory")
	assert.Equal(t, PlayerStatsResult{}, result)
}

func TestOverallStats(t *testing.T) {
	engine := NewEngine()
	plays := []store.PlayRecord{
		competitivePlay("13", "2026-07-20", 90, nil, map[string]float64{"Alice": 1}),
		competitivePlay("13", "2026-08-01", 60, nil, map[string]float64{"Alice": 1}),
		competitivePlay("99", "2026-08-15", 30, nil, map[string]float64{"Alice": 1}),
	}

	result := engine.OverallStats(plays)
	assert.Equal(t, 3, result.TotalPlays)
	assert.Equal(t, 180, result.TotalDuration)
	assert.Equal(t, 60.0, result.AvgDuration)
	assert.Equal(t, 2, result.UniqueGames)
	assert.Equal(t, map[string]int{"2026-07": 1, "2026-08": 2}, result.MonthlyPlays)
}

func TestOverallStatsEmptyLog(t *testing.T) {
	engine := NewEngine()

	result := engine.OverallStats(nil)
	assert.Equal(t, 0, result.TotalPlays)
	assert.Equal(t, 0.0, result.AvgDuration)
	assert.Empty(t, result.MonthlyPlays)
}

func TestDenseRanks(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[string]float64
		expected map[string]int
	}{
		{
			"tied leaders share rank one",
			map[string]float64{"Alice": 50, "Bob": 50, "Carol": 30},
			map[string]int{"Alice": 1, "Bob": 1, "Carol": 3},
		},
		{
			"distinct scores rank in order",
			map[string]float64{"Alice": 10, "Bob": 30, "Carol": 20},
			map[string]int{"Bob": 1, "Carol": 2, "Alice": 3},
		},
		{
			"all tied",
			map[string]float64{"Alice": 5, "Bob": 5},
			map[string]int{"Alice": 1, "Bob": 1},
		},
		{
			"single player",
			map[string]float64{"Alice": 0},
			map[string]int{"Alice": 1},
		},
		{
			"empty",
			map[string]float64{},
			map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DenseRanks(tt.scores))
		})
	}
}
