package scoremigrations

import (
	"context"

	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().
			Model((*scoredb.ChallengeScore)(nil)).
			IfNotExists().
			ForeignKey(`("challenge_id") REFERENCES "challenges" ("id") ON DELETE CASCADE`).
			ForeignKey(`("player_id") REFERENCES "players" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		// One score per (challenge, player) pair. The upsert path and the
		// duplicate-prevention guarantee under concurrent submissions both
		// hang off this constraint.
		if _, err := db.NewCreateIndex().
			Model((*scoredb.ChallengeScore)(nil)).
			Index("challenge_scores_challenge_player_key").
			Unique().
			IfNotExists().
			Column("challenge_id", "player_id").
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().
			Model((*scoredb.TotalScore)(nil)).
			IfNotExists().
			ForeignKey(`("player_id") REFERENCES "players" ("id") ON DELETE CASCADE`).
			ForeignKey(`("olympics_id") REFERENCES "olympics" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*scoredb.TotalScore)(nil)).
			Index("total_scores_olympics_idx").
			IfNotExists().
			Column("olympics_id").
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewDropTable().Model((*scoredb.TotalScore)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*scoredb.ChallengeScore)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
