package query

import (
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

type orderTerm struct {
	column    string
	direction Direction
}

// Builder constructs SQL SELECT queries for Cloud Spanner.
// Every method returns a modified copy, so a base builder can be shared
// between the row query and its COUNT(*) variant. Parameter names are
// generated (@p0, @p1, ...) in the order conditions were added.
type Builder struct {
	table        string
	selectCols   []string
	whereClauses []Condition
	orderBy      *orderTerm
	limitVal     int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{
		table:        table,
		selectCols:   []string{},
		whereClauses: []Condition{},
	}
}

// Select appends columns to retrieve. No columns selects *.
func (b *Builder) Select(columns ...string) *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = append(newBuilder.selectCols, columns...)
	return newBuilder
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, condition)
	return newBuilder
}

// OrderBy sets the ordering column. A later call replaces it.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderBy = &orderTerm{column: column, direction: direction}
	return newBuilder
}

// Limit sets the maximum number of rows to return. Zero means no limit.
func (b *Builder) Limit(limit int64) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Count returns a builder for SELECT COUNT(*) with the same FROM and WHERE.
func (b *Builder) Count() *Builder {
	newBuilder := b.clone()
	newBuilder.selectCols = []string{"COUNT(*)"}
	newBuilder.limitVal = 0
	newBuilder.orderBy = nil
	return newBuilder
}

// Build constructs the final spanner.Statement with SQL and parameters.
func (b *Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		whereParts := make([]string, 0, len(b.whereClauses))
		paramIndex := 0
		for _, condition := range b.whereClauses {
			fragment, condParams := condition.SQL(paramIndex)
			whereParts = append(whereParts, fragment)
			for k, v := range condParams {
				params[k] = v
			}
			paramIndex += len(condParams)
		}
		sql.WriteString(strings.Join(whereParts, " AND "))
	}

	if b.orderBy != nil {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderBy.column)
		if b.orderBy.direction == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limitVal > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limitVal
	}

	return spanner.Statement{
		SQL:    sql.String(),
		Params: params,
	}
}

func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderBy:      b.orderBy,
		limitVal:     b.limitVal,
	}
	copy(newBuilder.selectCols, b.selectCols)
	copy(newBuilder.whereClauses, b.whereClauses)
	return newBuilder
}
