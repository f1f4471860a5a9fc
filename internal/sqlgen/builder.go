package sqlgen

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Raw is emitted verbatim, e.g. a pre-formatted numeric literal.
type Raw string

// Literal renders v as a SQL literal for dialect d.
func (d Dialect) Literal(v interface{}) string {
	if v == nil {
		return "NULL"
	}
	switch val := v.(type) {
	case Raw:
		return string(val)
	case string:
		return d.QuoteString(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case decimal.Decimal:
		return val.String()
	case time.Time:
		return d.QuoteString(val.Format("2006-01-02"))
	default:
		return d.QuoteString(fmt.Sprintf("%v", val))
	}
}

// Insert builds a single-row INSERT with every value inlined as a literal.
func (d Dialect) Insert(table string, columns []string, values ...interface{}) (string, error) {
	if !validIdentifier.MatchString(table) {
		return "", fmt.Errorf("invalid table name: %s", table)
	}
	for _, col := range columns {
		if !validIdentifier.MatchString(col) {
			return "", fmt.Errorf("invalid column name in table %s: %s", table, col)
		}
	}
	if len(columns) != len(values) {
		return "", fmt.Errorf("table %s: %d columns but %d values", table, len(columns), len(values))
	}

	literals := make([]interface{}, len(values))
	for i, v := range values {
		literals[i] = squirrel.Expr(d.Literal(v))
	}

	query, args, err := squirrel.Insert(table).Columns(columns...).Values(literals...).ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build insert for %s: %w", table, err)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("insert for %s left %d bound arguments", table, len(args))
	}
	return query + ";", nil
}

// AdvanceSequence returns the statement that moves a table's identifier
// generator past s.Last, or "" when the dialect tracks it on its own.
func (d Dialect) AdvanceSequence(s Sequence) (string, error) {
	switch d {
	case MySQL:
		return fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = %d;", s.Table, s.Last+1), nil
	case SQLite:
		return "", nil
	}

	// setval rejects 0; the three-argument form makes the next value 1.
	call := fmt.Sprintf("setval(%s, %d)", d.QuoteString(s.Name()), s.Last)
	if s.Last < 1 {
		call = fmt.Sprintf("setval(%s, 1, false)", d.QuoteString(s.Name()))
	}
	query, _, err := squirrel.Select(call).ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build setval for %s: %w", s.Name(), err)
	}
	return query + ";", nil
}
