package challengemigrations

import (
	"context"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		catalog := []challengedb.Challenge{
			{Name: "Chair Race", Description: "Relay across the open floor on office chairs."},
			{Name: "Trash-Can Basketball", Description: "Paper-ball free throws into the recycling bin."},
			{Name: "Rubber Band Archery", Description: "Knock down the sticky-note targets."},
			{Name: "Desk Putt", Description: "Mini golf across three desks."},
			{Name: "Synchronized Typing", Description: "Fastest accurate transcription wins."},
		}

		_, err := db.NewInsert().Model(&catalog).Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDelete().Model((*challengedb.Challenge)(nil)).Where("1=1").Exec(ctx)
		return err
	})
}
