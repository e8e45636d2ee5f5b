package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type (
	// Control mediates all access to a catalog database,
	// one instance per opened catalog file.
	Control struct {
		db        *sql.DB
		writeable bool
	}
)

func openCatalogDatabase(ctx context.Context, path string, readwrite bool) (*sql.DB, error) {
	var connstr string
	if readwrite {
		connstr = fmt.Sprintf("file:%v?_journal=wal&_foreign_keys=on&mode=rwc", path)
	} else {
		connstr = fmt.Sprintf("file:%v?_foreign_keys=on&mode=ro", path)
	}
	conn, err := sql.Open("sqlite3", connstr)
	if err != nil {
		return nil, fmt.Errorf("unable to open %v, cause %w", path, err)
	}
	err = conn.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to ping catalog %v, cause %w", path, err)
	}
	return conn, nil
}

// Open loads the catalog at the given path, creating the schema when
// the catalog is opened for writing and the schema is missing.
func Open(ctx context.Context, path string, readwrite bool) (*Control, error) {
	conn, err := openCatalogDatabase(ctx, path, readwrite)
	if err != nil {
		return nil, err
	}
	c := &Control{db: conn, writeable: readwrite}
	if readwrite {
		err = c.init(ctx)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("unable to init catalog %v, cause %w", path, err)
		}
	}
	return c, nil
}

func (c *Control) Writeable() bool { return c.writeable }

func (c *Control) init(ctx context.Context) error {
	for _, cmd := range []string{
		`create table if not exists users(
			user_id integer not null primary key autoincrement,
			first_name text not null,
			last_name text not null,
			email text not null unique,
			password text not null
		)`,
		`create table if not exists courses(
			course_id integer not null primary key autoincrement,
			user_id integer not null,
			title text not null,
			description text not null,
			estimated_time text,
			materials_needed text,
			foreign key (user_id) references users(user_id)
		)`,
		`create index if not exists idx_courses_user_id
			on courses(user_id)
		`,
	} {
		_, err := c.db.ExecContext(ctx, cmd)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Control) Close() error {
	return c.db.Close()
}
