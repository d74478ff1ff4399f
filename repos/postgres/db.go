package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/juho05/log"
	"github.com/juho05/wavedial"
	"github.com/juho05/wavedial/config"
	"github.com/juho05/wavedial/repos"
	migrate "github.com/rubenv/sql-migrate"
)

type executer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type DB struct {
	db     *sqlx.DB
	tx     *sqlx.Tx
	config config.Config
}

func NewDB(dsn string, conf config.Config) (*DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: postgres: %w", err)
	}
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("open db: postgres: %w", err)
	}

	if conf.AutoMigrate {
		err = autoMigrate(db.DB)
		if err != nil {
			return nil, fmt.Errorf("open db: postgres: %w", err)
		}
	}

	return &DB{
		db:     db,
		config: conf,
	}, nil
}

func autoMigrate(db *sql.DB) error {
	migrations := &migrate.HttpFileSystemMigrationSource{
		FileSystem: http.FS(wavedial.MigrationsFS),
	}
	log.Trace("Migrating database...")
	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Tracef("Applied %d migrations!", n)
	return nil
}

func (d *DB) executer() executer {
	if d.tx != nil {
		return d.tx
	}
	return d.db
}

func (d *DB) User() repos.UserRepository {
	return userRepository{
		db: d.executer(),
	}
}

func (d *DB) Station() repos.StationRepository {
	return stationRepository{
		db: d.executer(),
	}
}

func (d *DB) Favorite() repos.FavoriteRepository {
	return favoriteRepository{
		db: d.executer(),
	}
}

func (d *DB) Session() repos.SessionRepository {
	return sessionRepository{
		db: d.executer(),
	}
}

func (d *DB) Transaction(ctx context.Context, fn func(tx repos.Tx) error) error {
	if d.db == nil {
		return repos.NewError("create transaction", repos.ErrNestedTransaction, nil)
	}
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() {
		err = tx.Rollback()
		if err != nil {
			if errors.Is(err, sql.ErrTxDone) {
				return
			}
			log.Errorf("rollback transaction: %s", err)
		}
	}()
	err = fn(&DB{
		tx: tx,
	})
	if err != nil {
		return err
	}
	return wrapErr("commit transaction", tx.Commit())
}

func (d *DB) NewTransaction(ctx context.Context) (repos.Transaction, error) {
	if d.db == nil {
		return nil, repos.NewError("create transaction", repos.ErrNestedTransaction, nil)
	}
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	return &DB{
		tx: tx,
	}, nil
}

func (d *DB) Commit() error {
	if d.tx != nil {
		return d.tx.Commit()
	}
	return nil
}

func (d *DB) Rollback() error {
	if d.tx != nil {
		err := d.tx.Rollback()
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			return err
		}
	}
	return nil
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
