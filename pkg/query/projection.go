package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps logical field names to table columns for a single table.
// It provides the column list and aliasing used by the Builder.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	fields []string
	cols   map[string]string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		cols:   make(map[string]string),
	}
}

// Project registers a column under a logical field name. Registration order
// determines column order in generated SELECT statements.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields = append(p.fields, field)
	p.cols[field] = fmt.Sprintf("%s.%s", p.alias, column)
	return p
}

// Table returns the aliased table reference.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the aliased column for a logical field name.
// Unknown fields panic: projections are process-start constants and an
// unknown field is a programming error.
func (p *ProjectionMap) Column(field string) string {
	col, ok := p.cols[field]
	if !ok {
		panic(fmt.Sprintf("query: field %q not projected on %s.%s", field, p.schema, p.table))
	}
	return col
}

// Columns returns the comma-separated column list in registration order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.fields))
	for i, f := range p.fields {
		cols[i] = p.cols[f]
	}
	return strings.Join(cols, ", ")
}

// SortField identifies a logical field and sort direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}
