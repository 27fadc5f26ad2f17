package bgg

import (
	"strconv"
	"strings"
)

// RankCategory is a catalog ranking category.
type RankCategory string

const (
	RankOverall      RankCategory = "overall"
	RankStrategy     RankCategory = "strategy"
	RankFamily       RankCategory = "family"
	RankParty        RankCategory = "party"
	RankAbstract     RankCategory = "abstract"
	RankThematic     RankCategory = "thematic"
	RankWar          RankCategory = "war"
	RankCustomizable RankCategory = "customizable"
)

// familyCategories are matched as case-insensitive substrings of the rank
// name attribute, in this order.
var familyCategories = []RankCategory{
	RankStrategy,
	RankFamily,
	RankParty,
	RankAbstract,
	RankThematic,
	RankWar,
	RankCustomizable,
}

// RankingSet maps a category to its rank position. A missing key means the
// game is unranked in that category.
type RankingSet map[RankCategory]int

// GameRecord is a normalized catalog game entry.
type GameRecord struct {
	ID              string     `yaml:"id"`
	Names           NameSet    `yaml:"names"`
	Rating          float64    `yaml:"rating"`
	Ranking         RankingSet `yaml:"ranking,omitempty"`
	MinPlayers      int        `yaml:"min_players"`
	MaxPlayers      int        `yaml:"max_players"`
	PlayingTime     int        `yaml:"playing_time"`
	BestPlayerCount string     `yaml:"best_player_count,omitempty"`
	ImageURL        string     `yaml:"image_url,omitempty"`
}

// Defaults for missing optional item fields.
const (
	defaultMinPlayers  = 1
	defaultMaxPlayers  = 4
	defaultPlayingTime = 60
)

// Poll thresholds: a player-count bucket needs at least minPollVotes votes
// to count, is "best" above bestShare and "recommended" above
// recommendedShare of its total.
const (
	minPollVotes     = 5
	bestShare        = 0.5
	recommendedShare = 0.7
)

// ParseItem normalizes a single catalog item into a GameRecord.
//
// Missing optional fields (rating, ranks, poll, image, player counts)
// degrade to documented defaults and never fail the parse. The only hard
// failure is a missing name, which rejects the item via ErrNoNameFound.
func ParseItem(item *ThingItem) (*GameRecord, error) {
	candidates := make([]NameCandidate, 0, len(item.Names))
	for _, n := range item.Names {
		candidates = append(candidates, NameCandidate{Value: n.Value, Type: n.Type})
	}

	names, err := ResolveNames(candidates)
	if err != nil {
		return nil, err
	}

	record := &GameRecord{
		ID:              item.ID,
		Names:           names,
		MinPlayers:      intAttrOr(item.MinPlayers, defaultMinPlayers),
		MaxPlayers:      intAttrOr(item.MaxPlayers, defaultMaxPlayers),
		PlayingTime:     intAttrOr(item.PlayingTime, defaultPlayingTime),
		BestPlayerCount: bestPlayerCount(item.Polls),
		ImageURL:        imageURL(item),
	}
	record.Rating, record.Ranking = ratingAndRanking(item.Statistics)

	return record, nil
}

// imageURL prefers the full image and falls back to the thumbnail.
func imageURL(item *ThingItem) string {
	if url := strings.TrimSpace(item.Image); url != "" {
		return url
	}
	return strings.TrimSpace(item.Thumbnail)
}

// ratingAndRanking extracts the average rating and per-category rankings.
// A rank value that is not a plain digit string ("Not Ranked") leaves the
// category absent. The first entry per category wins in document order.
func ratingAndRanking(stats *statsBlock) (float64, RankingSet) {
	rating := 0.0
	ranking := make(RankingSet)

	if stats == nil || stats.Ratings == nil {
		return rating, ranking
	}

	if avg := stats.Ratings.Average; avg != nil {
		if v, err := strconv.ParseFloat(avg.Value, 64); err == nil {
			rating = v
		}
	}

	for _, rank := range stats.Ratings.Ranks {
		category, ok := classifyRank(rank.Type, rank.Name)
		if !ok {
			continue
		}
		if _, taken := ranking[category]; taken {
			continue
		}
		if !isDigits(rank.Value) {
			continue
		}
		if v, err := strconv.Atoi(rank.Value); err == nil {
			ranking[category] = v
		}
	}

	return rating, ranking
}

func classifyRank(rankType, rankName string) (RankCategory, bool) {
	if rankType == "subtype" && rankName == "boardgame" {
		return RankOverall, true
	}
	if rankType != "family" {
		return "", false
	}
	lower := strings.ToLower(rankName)
	for _, category := range familyCategories {
		if strings.Contains(lower, string(category)) {
			return category, true
		}
	}
	return "", false
}

// bestPlayerCount derives the recommended player count from the community
// poll. Buckets with fewer than minPollVotes votes are skipped. A bucket is
// "best" when Best votes exceed half its total, otherwise "recommended"
// when Best plus Recommended exceed 70%. The result is the single count or
// the min-max range over the strongest qualifying tier, or "" when nothing
// qualifies, which is common and not an error.
func bestPlayerCount(polls []pollTag) string {
	var poll *pollTag
	for i := range polls {
		if polls[i].Name == "suggested_numplayers" {
			poll = &polls[i]
			break
		}
	}
	if poll == nil {
		return ""
	}

	var bestCounts, recommendedCounts []int
	for _, results := range poll.Results {
		count, ok := parsePlayerBucket(results.NumPlayers)
		if !ok {
			continue
		}

		var best, recommended, notRecommended int
		for _, result := range results.Results {
			votes, err := strconv.Atoi(result.NumVotes)
			if err != nil {
				continue
			}
			switch result.Value {
			case "Best":
				best = votes
			case "Recommended":
				recommended = votes
			case "Not Recommended":
				notRecommended = votes
			}
		}

		total := best + recommended + notRecommended
		if total < minPollVotes {
			continue
		}

		if float64(best) > float64(total)*bestShare {
			bestCounts = append(bestCounts, count)
		} else if float64(best+recommended) > float64(total)*recommendedShare {
			recommendedCounts = append(recommendedCounts, count)
		}
	}

	if len(bestCounts) > 0 {
		return formatCountRange(bestCounts)
	}
	if len(recommendedCounts) > 0 {
		return formatCountRange(recommendedCounts)
	}
	return ""
}

// parsePlayerBucket reads the numeric player count of a poll bucket.
// Open-ended buckets like "4+" use their leading number.
func parsePlayerBucket(label string) (int, bool) {
	label = strings.TrimSuffix(strings.TrimSpace(label), "+")
	if label == "" {
		return 0, false
	}
	count, err := strconv.Atoi(label)
	if err != nil {
		return 0, false
	}
	return count, true
}

func formatCountRange(counts []int) string {
	lo, hi := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}

func intAttrOr(attr *attrValue, def int) int {
	if attr == nil {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return def
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
