package challengemigrations

import (
	"context"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*challengedb.Challenge)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewDropTable().Model((*challengedb.Challenge)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
