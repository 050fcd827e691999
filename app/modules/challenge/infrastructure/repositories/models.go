package challengedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Challenge represents a single competitive event within the olympics.
// Challenges are immutable once created; the core only reads them.
type Challenge struct {
	bun.BaseModel `bun:"table:challenges,alias:c"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Description   string    `bun:"description" json:"description"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
