// Package query provides a fluent SQL builder over per-table projection maps
// with automatic parameter numbering.
package query

import (
	"fmt"
	"strings"
)

type condition struct {
	clause string
	args   []any
}

// Builder constructs SELECT statements for a single projected table.
type Builder struct {
	projection *ProjectionMap
	conditions []condition
	sort       SortField
}

// NewBuilder creates a Builder for the given projection with a default sort field.
func NewBuilder(projection *ProjectionMap, defaultSort SortField) *Builder {
	return &Builder{
		projection: projection,
		conditions: make([]condition, 0),
		sort:       defaultSort,
	}
}

// WhereEquals adds an equality condition.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s = $%%d", col),
		args:   []any{value},
	})
	return b
}

// WhereContains adds a case-insensitive ILIKE condition.
func (b *Builder) WhereContains(field, value string) *Builder {
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s ILIKE $%%d", col),
		args:   []any{"%" + value + "%"},
	})
	return b
}

// WhereGte adds a greater-than-or-equal condition.
func (b *Builder) WhereGte(field string, value any) *Builder {
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s >= $%%d", col),
		args:   []any{value},
	})
	return b
}

// WhereLte adds a less-than-or-equal condition.
func (b *Builder) WhereLte(field string, value any) *Builder {
	col := b.projection.Column(field)
	b.conditions = append(b.conditions, condition{
		clause: fmt.Sprintf("%s <= $%%d", col),
		args:   []any{value},
	})
	return b
}

// WhereAnyContains adds an OR group of case-insensitive ILIKE conditions
// matching the same value across multiple fields.
func (b *Builder) WhereAnyContains(value string, fields ...string) *Builder {
	if len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	pattern := "%" + value + "%"

	for i, field := range fields {
		clauses[i] = fmt.Sprintf("%s ILIKE $%%d", b.projection.Column(field))
		args[i] = pattern
	}

	b.conditions = append(b.conditions, condition{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	})
	return b
}

// OrderBy overrides the default sort field and direction.
func (b *Builder) OrderBy(sort SortField) *Builder {
	if sort.Field != "" {
		b.sort = sort
	}
	return b
}

// BuildList returns a SELECT statement with the accumulated conditions,
// ordering, and a row limit.
func (b *Builder) BuildList(limit int) (string, []any) {
	where, args := b.buildWhere()

	sql := fmt.Sprintf(
		"SELECT %s FROM %s%s%s LIMIT %d",
		b.projection.Columns(),
		b.projection.Table(),
		where,
		b.buildOrderBy(),
		limit,
	)

	return sql, args
}

// BuildSingle returns a SELECT statement for a single record by key field.
func (b *Builder) BuildSingle(field string, value any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.Table(),
		b.projection.Column(field),
	)
	return sql, []any{value}
}

func (b *Builder) buildOrderBy() string {
	dir := "ASC"
	if b.sort.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", b.projection.Column(b.sort.Field), dir)
}

func (b *Builder) buildWhere() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0)
	param := 1

	for _, cond := range b.conditions {
		clause := cond.clause
		for _, arg := range cond.args {
			clause = strings.Replace(clause, "$%d", fmt.Sprintf("$%d", param), 1)
			args = append(args, arg)
			param++
		}
		clauses = append(clauses, clause)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}
