package bootstrap

import (
	"context"
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/tagalong/ramp/pkg/structs"
)

// MigrateStage applies all pending schema migrations, in order, against the
// configured database.
//
// Re-running against an already-migrated schema is a no-op and succeeds, so
// a redeploy of an unchanged release can never fail here.
type MigrateStage struct {
	dir   string
	dbURL string
}

func NewMigrateStage(dir, dbURL string) *MigrateStage {
	return &MigrateStage{dir: dir, dbURL: dbURL}
}

func (s *MigrateStage) Kind() structs.Stage {
	return structs.StageMigrate
}

func (s *MigrateStage) Run(ctx context.Context) error {
	db, err := sql.Open("postgres", s.dbURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+s.dir, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("schema already up to date")
		return nil
	}
	return err
}
