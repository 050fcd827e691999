package playermigrations

import (
	"context"

	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*playerdb.Olympics)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().
			Model((*playerdb.Player)(nil)).
			IfNotExists().
			ForeignKey(`("olympics_id") REFERENCES "olympics" ("id") ON DELETE CASCADE`).
			Exec(ctx); err != nil {
			return err
		}

		// A submission references players by display name, so the name must be
		// unambiguous within one olympics.
		if _, err := db.NewCreateIndex().
			Model((*playerdb.Player)(nil)).
			Index("players_olympics_name_key").
			Unique().
			IfNotExists().
			Column("olympics_id", "name").
			Exec(ctx); err != nil {
			return err
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewDropTable().Model((*playerdb.Player)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*playerdb.Olympics)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
