package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/latoulicious/meeple/pkg/logging"
	"github.com/latoulicious/meeple/pkg/store"
)

// victoryMarkers mark a cooperative play as won when one of them appears in
// the shared result field. The result text is locale-dependent, so both the
// Japanese and English markers are checked.
var victoryMarkers = []string{"勝利", "Victory", "Win"}

// resultFieldMarkers identify the shared field holding a cooperative play's
// outcome.
var resultFieldMarkers = []string{"結果", "Result"}

// GameStatsResult aggregates the plays of one game. All fields are zero
// when the game has no plays, which is not an error.
type GameStatsResult struct {
	TotalPlays   int
	TotalPlayers int
	AvgDuration  float64
}

// PlayerStatsResult aggregates one player's plays and wins.
type PlayerStatsResult struct {
	Plays   int
	Wins    int
	WinRate float64
}

// OverallStatsResult aggregates the whole play log.
type OverallStatsResult struct {
	TotalPlays    int
	TotalDuration int
	AvgDuration   float64
	UniqueGames   int
	// MonthlyPlays counts plays per "YYYY-MM" month key.
	MonthlyPlays map[string]int
}

// Engine answers statistics queries over a caller-supplied play log
// snapshot. It never mutates its inputs.
type Engine struct {
	logger logging.Logger
}

// NewEngine creates a statistics engine.
func NewEngine() *Engine {
	return &Engine{
		logger: logging.GetGlobalLoggerFactory().CreateStatsLogger(),
	}
}

// GameStats filters the play log by game id and returns play count, summed
// participant count and mean duration rounded to one decimal.
func (e *Engine) GameStats(plays []store.PlayRecord, gameID string) GameStatsResult {
	var result GameStatsResult
	totalDuration := 0

	for _, play := range plays {
		if play.GameID != gameID {
			continue
		}
		result.TotalPlays++
		result.TotalPlayers += len(play.Scores)
		totalDuration += play.Duration
	}

	if result.TotalPlays > 0 {
		result.AvgDuration = round1(float64(totalDuration) / float64(result.TotalPlays))
	}
	return result
}

// PlayerStats counts plays and wins for one player across the log.
//
// Competitive plays credit the single player holding the maximum score;
// among tied maxima the first participant in entry order wins. Cooperative
// plays share one outcome: a victory marker in the shared result field
// credits every participant, anything else credits no one.
func (e *Engine) PlayerStats(plays []store.PlayRecord, player string) PlayerStatsResult {
	var result PlayerStatsResult

	for _, play := range plays {
		if _, participated := play.Scores[player]; !participated {
			continue
		}
		result.Plays++

		switch play.Mode {
		case store.ModeCooperative:
			if cooperativeWin(play) {
				result.Wins++
			}
		default:
			if competitiveWinner(play) == player {
				result.Wins++
			}
		}
	}

	if result.Plays > 0 {
		result.WinRate = round1(float64(result.Wins) / float64(result.Plays) * 100)
	}
	return result
}

// OverallStats aggregates the entire play log.
func (e *Engine) OverallStats(plays []store.PlayRecord) OverallStatsResult {
	result := OverallStatsResult{MonthlyPlays: make(map[string]int)}
	games := make(map[string]bool)

	for _, play := range plays {
		result.TotalPlays++
		result.TotalDuration += play.Duration
		games[play.GameID] = true

		if len(play.Date) >= 7 {
			result.MonthlyPlays[play.Date[:7]]++
		}
	}

	result.UniqueGames = len(games)
	if result.TotalPlays > 0 {
		result.AvgDuration = round1(float64(result.TotalDuration) / float64(result.TotalPlays))
	}

	e.logger.Debug("Computed overall statistics", map[string]interface{}{
		"total_plays":  result.TotalPlays,
		"unique_games": result.UniqueGames,
	})
	return result
}

// competitiveWinner returns the winner of a competitive play: the first
// participant in entry order holding the maximum score. Plays recorded
// without an explicit participant order fall back to sorted player names.
func competitiveWinner(play store.PlayRecord) string {
	if len(play.Scores) == 0 {
		return ""
	}

	order := play.Participants
	if len(order) == 0 {
		order = make([]string, 0, len(play.Scores))
		for name := range play.Scores {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	winner := ""
	best := math.Inf(-1)
	for _, name := range order {
		score, ok := play.Scores[name]
		if !ok {
			continue
		}
		if score > best {
			best = score
			winner = name
		}
	}
	return winner
}

// cooperativeWin reads the shared outcome of a cooperative play.
func cooperativeWin(play store.PlayRecord) bool {
	if play.Detailed == nil || len(play.Detailed.Global) == 0 {
		return false
	}

	keys := make([]string, 0, len(play.Detailed.Global))
	for key := range play.Detailed.Global {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !isResultField(key) {
			continue
		}
		text, ok := play.Detailed.Global[key].(string)
		if !ok {
			continue
		}
		for _, marker := range victoryMarkers {
			if strings.Contains(text, marker) {
				return true
			}
		}
		return false
	}
	return false
}

func isResultField(key string) bool {
	for _, marker := range resultFieldMarkers {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}

// DenseRanks assigns tie-aware leaderboard ranks to scores, descending.
// Equal scores share a rank and the next distinct score takes the rank of
// its 1-based position, so [50 50 30] ranks as [1 1 3].
func DenseRanks(scores map[string]float64) map[string]int {
	type entry struct {
		name  string
		score float64
	}

	entries := make([]entry, 0, len(scores))
	for name, score := range scores {
		entries = append(entries, entry{name, score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		return entries[i].name < entries[j].name
	})

	ranks := make(map[string]int, len(entries))
	currentRank := 1
	for i, e := range entries {
		if i > 0 && e.score != entries[i-1].score {
			currentRank = i + 1
		}
		ranks[e.name] = currentRank
	}
	return ranks
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
