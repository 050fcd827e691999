package playerdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Olympics represents one competition run grouping challenges, players and totals.
type Olympics struct {
	bun.BaseModel `bun:"table:olympics,alias:o"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// Player represents a participant in an olympics instance. Submissions
// reference players by display name; the name is unique within an olympics.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	OlympicsID    int64     `bun:"olympics_id,notnull" json:"olympics_id"`
	Name          string    `bun:"name,notnull" json:"name"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
