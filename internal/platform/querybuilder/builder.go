package querybuilder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// statement accumulates SQL text and its positional arguments. Placeholders
// are numbered in the order arguments are bound.
type statement struct {
	buf  *bytebufferpool.ByteBuffer
	args []any
}

func newStatement() *statement {
	return &statement{buf: bytebufferpool.Get()}
}

func (s *statement) write(parts ...string) {
	for _, part := range parts {
		_, _ = s.buf.WriteString(part)
	}
}

func (s *statement) bind(value any) {
	s.args = append(s.args, value)
	s.write("$", strconv.Itoa(len(s.args)))
}

func (s *statement) bindList(values []any) {
	s.write("(")
	for i, value := range values {
		if i > 0 {
			s.write(", ")
		}
		s.bind(value)
	}
	s.write(")")
}

// bindExpr replaces each '?' in expr with the next value. Surplus '?' are
// written through unchanged.
func (s *statement) bindExpr(expr string, values []any) {
	next := 0
	for {
		idx := strings.IndexByte(expr, '?')
		if idx < 0 || next >= len(values) {
			s.write(expr)
			return
		}
		s.write(expr[:idx])
		s.bind(values[next])
		next++
		expr = expr[idx+1:]
	}
}

func (s *statement) where(conditions []Condition) {
	for i, cond := range conditions {
		if i == 0 {
			s.write(" WHERE ")
		} else {
			s.write(" AND ")
		}
		cond(s)
	}
}

func (s *statement) finish() (string, []any) {
	query := s.buf.String()
	bytebufferpool.Put(s.buf)
	s.buf = nil
	return query, s.args
}

// Condition renders one predicate of a WHERE clause. Conditions are joined
// with AND.
type Condition func(s *statement)

func Eq(column string, value any) Condition {
	return func(s *statement) {
		s.write(column, " = ")
		s.bind(value)
	}
}

// In matches nothing when values is empty.
func In(column string, values []any) Condition {
	return func(s *statement) {
		if len(values) == 0 {
			s.write("1=0")
			return
		}
		s.write(column, " IN ")
		s.bindList(values)
	}
}

// NotIn matches every row when values is empty.
func NotIn(column string, values []any) Condition {
	return func(s *statement) {
		if len(values) == 0 {
			s.write("1=1")
			return
		}
		s.write(column, " NOT IN ")
		s.bindList(values)
	}
}

// Expr embeds raw SQL, binding '?' markers to args in order.
func Expr(expr string, args ...any) Condition {
	return func(s *statement) {
		s.bindExpr(expr, args)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, columns...)
	return b
}

func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, columns...)
	return b
}

// Limit of zero or less leaves the query unbounded.
func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	s := newStatement()
	s.write("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	s.where(b.where)
	if len(b.groupBy) > 0 {
		s.write(" GROUP BY ", strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		s.write(" ORDER BY ", strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.write(" LIMIT ", strconv.Itoa(b.limit))
	}

	query, args := s.finish()
	return query, args, nil
}

// InsertBuilder writes one multi-row INSERT. Repositories chunk large
// batches themselves to stay under the postgres parameter limit.
type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix is appended verbatim, typically an ON CONFLICT or RETURNING clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
	}

	s := newStatement()
	s.write("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for i, row := range b.rows {
		if i > 0 {
			s.write(", ")
		}
		s.bindList(row)
	}
	if b.suffix != "" {
		s.write(" ", b.suffix)
	}

	query, args := s.finish()
	return query, args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

// ToSQL refuses to build an unfiltered delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete conditions are required")
	}

	s := newStatement()
	s.write("DELETE FROM ", b.table)
	s.where(b.where)

	query, args := s.finish()
	return query, args, nil
}
