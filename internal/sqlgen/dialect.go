package sqlgen

import (
	"fmt"
	"strings"
)

// Dialect selects the SQL flavour of the rendered script.
type Dialect string

const (
	Postgres Dialect = "postgresql"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
)

var SupportedDialects = []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}

// ParseDialect accepts the provider names used in config files.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "postgresql", "postgres":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported dialect: %s. Supported dialects: %v", name, SupportedDialects)
	}
}

func (d Dialect) Begin() string {
	if d == MySQL {
		return "START TRANSACTION;"
	}
	return "BEGIN;"
}

func (d Dialect) Commit() string {
	return "COMMIT;"
}

// QuoteString renders s as a string literal. Single quotes are doubled;
// MySQL additionally treats backslash as an escape character.
func (d Dialect) QuoteString(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	if d == MySQL {
		escaped = strings.ReplaceAll(escaped, `\`, `\\`)
	}
	return "'" + escaped + "'"
}

// Sequence records the last identifier handed out for a table.
type Sequence struct {
	Table  string
	Column string
	Last   int
}

// Name follows the PostgreSQL serial naming convention <table>_<column>_seq.
func (s Sequence) Name() string {
	return s.Table + "_" + s.Column + "_seq"
}

// Analyze returns the statistics refresh directive for tables.
func (d Dialect) Analyze(tables []string) string {
	if d == MySQL && len(tables) > 0 {
		return "ANALYZE TABLE " + strings.Join(tables, ", ") + ";"
	}
	return "ANALYZE;"
}
