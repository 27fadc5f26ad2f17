package models

import (
	"time"

	"github.com/google/uuid"
)

// Game caches a normalized catalog item so repeated lookups skip the
// remote API.
type Game struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	GameID      string    `gorm:"uniqueIndex;not null"` // catalog id
	NamePrimary string    `gorm:"index;not null"`
	NameJp      string    `gorm:"index"`
	NameEn      string    `gorm:"index"`
	// Alternates is a JSON-encoded string list.
	Alternates      string `gorm:"type:text"`
	Rating          float64
	MinPlayers      int
	MaxPlayers      int
	PlayingTime     int
	BestPlayerCount string
	ImageURL        string
	CreatedAt       time.Time `gorm:"default:now()"`
	UpdatedAt       time.Time `gorm:"default:now()"`

	// Relationships
	Ranks []GameRank `gorm:"foreignKey:GameDBID;constraint:OnDelete:CASCADE"`
}

// GameRank is one ranking category position of a cached game.
type GameRank struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	GameDBID uuid.UUID `gorm:"type:uuid;not null;index"`
	Category string    `gorm:"index;not null"`
	Position int       `gorm:"not null"`

	// Relationships
	Game Game `gorm:"foreignKey:GameDBID;constraint:OnDelete:CASCADE"`
}
