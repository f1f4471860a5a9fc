// Package apply executes a generated seed script against a live database.
// It does not create or check the schema; the target tables must exist.
package apply

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/hotseed/internal/sqlgen"
	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// DriverName maps a dialect to its database/sql driver.
func DriverName(d sqlgen.Dialect) string {
	switch d {
	case sqlgen.MySQL:
		return "mysql"
	case sqlgen.SQLite:
		return "sqlite3"
	default:
		return "pgx"
	}
}

// Open connects and pings the database behind url.
func Open(ctx context.Context, d sqlgen.Dialect, url string) (*sql.DB, error) {
	db, err := sql.Open(DriverName(d), url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

type TableCount struct {
	Table    string
	Inserted int
	Rows     int64
}

type Report struct {
	Statements int
	Tables     []TableCount
}

type Executor struct {
	db      *sql.DB
	dialect sqlgen.Dialect
	qb      squirrel.StatementBuilderType
}

func New(db *sql.DB, d sqlgen.Dialect) *Executor {
	var format squirrel.PlaceholderFormat = squirrel.Question
	if d == sqlgen.Postgres {
		format = squirrel.Dollar
	}
	return &Executor{
		db:      db,
		dialect: d,
		qb:      squirrel.StatementBuilder.PlaceholderFormat(format),
	}
}

// Run executes the script's statements in one transaction, then its trailer,
// then counts the rows now present in every table the script touched.
func (e *Executor) Run(ctx context.Context, script *sqlgen.Script) (*Report, error) {
	stmts, err := script.Statements()
	if err != nil {
		return nil, err
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return nil, fmt.Errorf("statement %d failed and rollback failed: %v (original: %w)", i+1, rbErr, err)
			}
			return nil, fmt.Errorf("statement %d failed: %w\n  %s", i+1, err, stmt)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for _, stmt := range script.Trailer() {
		if _, err := e.db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	report := &Report{Statements: len(stmts)}
	for _, table := range script.Tables() {
		rows, err := e.CountRows(ctx, table)
		if err != nil {
			return nil, err
		}
		report.Tables = append(report.Tables, TableCount{
			Table:    table,
			Inserted: script.Count(table),
			Rows:     rows,
		})
	}

	return report, nil
}

func (e *Executor) CountRows(ctx context.Context, table string) (int64, error) {
	query, args, err := e.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var n int64
	if err := e.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return n, nil
}
