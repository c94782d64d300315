package diggpager

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type tDialect struct {
	name string
	open func(conn *sql.DB) gorm.Dialector
}

var _dialects = []tDialect{
	{
		name: "mysql",
		open: func(conn *sql.DB) gorm.Dialector {
			return mysql.New(mysql.Config{
				Conn:                      conn,
				SkipInitializeWithVersion: true,
			})
		},
	},
	{
		name: "postgres",
		open: func(conn *sql.DB) gorm.Dialector {
			return postgres.New(postgres.Config{Conn: conn})
		},
	},
}

// newGORMMock opens a gorm connection backed by sqlmock for the given dialect.
func newGORMMock(t *testing.T, dialect tDialect) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(dialect.open(conn), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	return db.Debug(), mock
}
