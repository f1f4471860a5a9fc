package sqlgen

import (
	"fmt"
	"io"
	"strings"
)

type lineKind int

const (
	commentLine lineKind = iota
	blankLine
	statementLine
)

type line struct {
	kind  lineKind
	text  string
	table string
}

// Script accumulates the seed output in emission order. Build errors are
// sticky: the first one is kept and returned by Err and Render.
type Script struct {
	dialect   Dialect
	header    []string
	lines     []line
	sequences []Sequence
	tables    []string
	seen      map[string]bool
	counts    map[string]int
	err       error
}

func NewScript(d Dialect) *Script {
	return &Script{
		dialect: d,
		seen:    make(map[string]bool),
		counts:  make(map[string]int),
	}
}

func (s *Script) Dialect() Dialect {
	return s.dialect
}

// Header adds a comment line above the transaction block.
func (s *Script) Header(format string, args ...interface{}) {
	s.header = append(s.header, "-- "+fmt.Sprintf(format, args...))
}

func (s *Script) Comment(format string, args ...interface{}) {
	s.lines = append(s.lines, line{kind: commentLine, text: "-- " + fmt.Sprintf(format, args...)})
}

func (s *Script) Blank() {
	s.lines = append(s.lines, line{kind: blankLine})
}

// Insert appends one INSERT statement for table.
func (s *Script) Insert(table string, columns []string, values ...interface{}) {
	if s.err != nil {
		return
	}
	stmt, err := s.dialect.Insert(table, columns, values...)
	if err != nil {
		s.err = err
		return
	}
	if !s.seen[table] {
		s.seen[table] = true
		s.tables = append(s.tables, table)
	}
	s.counts[table]++
	s.lines = append(s.lines, line{kind: statementLine, text: stmt, table: table})
}

// Sequence registers the last identifier allocated for table.column.
func (s *Script) Sequence(table, column string, last int) {
	s.sequences = append(s.sequences, Sequence{Table: table, Column: column, Last: last})
}

func (s *Script) Err() error {
	return s.err
}

// Tables lists tables in the order their first row was emitted.
func (s *Script) Tables() []string {
	return append([]string(nil), s.tables...)
}

// Count reports how many rows were emitted for table.
func (s *Script) Count(table string) int {
	return s.counts[table]
}

func (s *Script) Sequences() []Sequence {
	return append([]Sequence(nil), s.sequences...)
}

// Statements returns everything executed inside the transaction: inserts
// followed by sequence advancement.
func (s *Script) Statements() ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []string
	for _, l := range s.lines {
		if l.kind == statementLine {
			out = append(out, l.text)
		}
	}
	seqs, err := s.sequenceStatements()
	if err != nil {
		return nil, err
	}
	return append(out, seqs...), nil
}

// Trailer returns the statements that run after COMMIT.
func (s *Script) Trailer() []string {
	return []string{s.dialect.Analyze(s.tables)}
}

func (s *Script) sequenceStatements() ([]string, error) {
	var out []string
	for _, seq := range s.sequences {
		stmt, err := s.dialect.AdvanceSequence(seq)
		if err != nil {
			return nil, err
		}
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out, nil
}

// Render writes the complete script: header, transaction block with the
// emitted lines and sequence updates, then the statistics refresh.
func (s *Script) Render(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	seqs, err := s.sequenceStatements()
	if err != nil {
		return err
	}

	var out []string
	out = append(out, s.header...)
	if len(s.header) > 0 {
		out = append(out, "")
	}
	out = append(out, s.dialect.Begin(), "")
	for _, l := range s.lines {
		out = append(out, l.text)
	}
	out = append(out, "", "-- Update sequences to current values")
	if len(seqs) == 0 && len(s.sequences) > 0 {
		out = append(out, "-- identifiers were inserted explicitly; nothing to advance")
	}
	out = append(out, seqs...)
	out = append(out,
		"",
		s.dialect.Commit(),
		"",
		"-- Analyze tables for query optimization",
	)
	out = append(out, s.Trailer()...)

	if _, err := io.WriteString(w, strings.Join(out, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}
