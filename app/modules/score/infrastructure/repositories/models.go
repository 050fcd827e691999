package scoredb

import (
	"time"

	"github.com/uptrace/bun"
)

// ChallengeScore is the persisted score for one player in one challenge.
// The (challenge_id, player_id) pair is unique: resubmissions mutate the
// existing row instead of creating a second one.
type ChallengeScore struct {
	bun.BaseModel `bun:"table:challenge_scores,alias:cs"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	ChallengeID   int64     `bun:"challenge_id,notnull" json:"challenge_id"`
	PlayerID      int64     `bun:"player_id,notnull" json:"player_id"`
	Score         int       `bun:"score,notnull" json:"score"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// TotalScore is a player's summed score across all challenges in an olympics
// instance. Derived data: fully recomputed from challenge_scores on every
// mutation, never incrementally maintained.
type TotalScore struct {
	bun.BaseModel `bun:"table:total_scores,alias:ts"`
	PlayerID      int64     `bun:"player_id,pk" json:"player_id"`
	OlympicsID    int64     `bun:"olympics_id,notnull" json:"olympics_id"`
	TotalScore    int       `bun:"total_score,notnull" json:"total_score"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}

// ScoreEntry is one resolved (challenge, player, score) triple ready to be
// written. Transient; built per submission.
type ScoreEntry struct {
	ChallengeID int64
	PlayerID    int64
	Score       int
}

// Rank is a derived (position, name, score) view produced by the ranking
// queries. Never persisted.
type Rank struct {
	Rank       int    `bun:"rank" json:"rank"`
	PlayerName string `bun:"player_name" json:"playerName"`
	Score      int    `bun:"score" json:"score"`
}
