package store

// GameMode distinguishes the two score-sheet structures.
type GameMode string

const (
	ModeCompetitive GameMode = "competitive"
	ModeCooperative GameMode = "cooperative"
)

// PlayerRecord is a registered player. Players are created on first
// mention; deleting one never cascades into the play log.
type PlayerRecord struct {
	Name      string `yaml:"name"`
	Notes     string `yaml:"notes,omitempty"`
	CreatedAt string `yaml:"created_at"`
}

// PlayRecord is one play session in the append-only log. Its ID is its
// position in the log.
type PlayRecord struct {
	ID       int    `yaml:"id"`
	GameID   string `yaml:"game_id"`
	Date     string `yaml:"date"`
	Duration int    `yaml:"duration"`
	Location string `yaml:"location,omitempty"`
	Notes    string `yaml:"notes,omitempty"`
	// Participants keeps the entry order of the scores mapping, which
	// decides tie-breaks for competitive plays.
	Participants []string           `yaml:"participants,flow"`
	Scores       map[string]float64 `yaml:"scores"`
	Detailed     *DetailedScores    `yaml:"detailed_scores,omitempty"`
	Mode         GameMode           `yaml:"game_mode"`
	SheetUsed    string             `yaml:"score_sheet_used,omitempty"`
	CreatedAt    string             `yaml:"created_at"`
}

// DetailedScores holds per-field score data. Competitive plays fill only
// Players; cooperative plays additionally share one Global block.
type DetailedScores struct {
	Global  map[string]interface{}            `yaml:"global,omitempty"`
	Players map[string]map[string]interface{} `yaml:"players,omitempty"`
}

// SheetField is one entry column of a score sheet.
type SheetField struct {
	Name string `yaml:"name"`
	// Type is "number", "checkbox" or "choice".
	Type    string      `yaml:"type"`
	Default interface{} `yaml:"default,omitempty"`
	// Points is added to the total when a checkbox field is checked.
	Points  float64  `yaml:"points,omitempty"`
	Options []string `yaml:"options,omitempty,flow"`
	// Global marks fields shared by all players of a cooperative play.
	Global bool `yaml:"global,omitempty"`
}

// ScoreSheet defines how plays of a game are scored.
type ScoreSheet struct {
	Name       string       `yaml:"name"`
	Mode       GameMode     `yaml:"game_type"`
	Fields     []SheetField `yaml:"fields"`
	TotalField string       `yaml:"total_field,omitempty"`
}

// NewGenericSheet returns the fallback competitive sheet with a single
// score column.
func NewGenericSheet() ScoreSheet {
	return ScoreSheet{
		Name: "Generic",
		Mode: ModeCompetitive,
		Fields: []SheetField{
			{Name: "Score", Type: "number", Default: 0},
		},
		TotalField: "Total",
	}
}

// NewCustomSheet builds a sheet for one game from its field list.
func NewCustomSheet(gameName string, mode GameMode, fields []SheetField) ScoreSheet {
	return ScoreSheet{
		Name:       gameName + " Sheet",
		Mode:       mode,
		Fields:     fields,
		TotalField: "Total",
	}
}

// CompetitiveTotal sums a player's field values for this sheet: number
// fields add their value, checked checkbox fields add their points.
func (s ScoreSheet) CompetitiveTotal(values map[string]interface{}) float64 {
	total := 0.0
	for _, field := range s.Fields {
		value, ok := values[field.Name]
		if !ok {
			continue
		}
		switch field.Type {
		case "number":
			total += toFloat(value)
		case "checkbox":
			if checked, ok := value.(bool); ok && checked {
				total += field.Points
			}
		}
	}
	return total
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
