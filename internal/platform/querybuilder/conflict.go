package querybuilder

import "strings"

// ConflictClause renders an INSERT ... ON CONFLICT suffix.
type ConflictClause struct {
	target  string
	where   string
	columns []string
	exprs   []string
}

// OnConflict targets the given columns, e.g. OnConflict("team_public_id", "year").
func OnConflict(columns ...string) *ConflictClause {
	return &ConflictClause{target: strings.Join(columns, ", ")}
}

// Where restricts the conflict target to a partial unique index.
func (c *ConflictClause) Where(predicate string) *ConflictClause {
	c.where = strings.TrimSpace(predicate)
	return c
}

// UpdateExcluded copies each column from the rejected row.
func (c *ConflictClause) UpdateExcluded(columns ...string) *ConflictClause {
	c.columns = append(c.columns, columns...)
	return c
}

// Set appends a raw assignment such as "updated_at = NOW()".
func (c *ConflictClause) Set(assignment string) *ConflictClause {
	c.exprs = append(c.exprs, assignment)
	return c
}

// String renders DO NOTHING when no assignments were added.
func (c *ConflictClause) String() string {
	var buf strings.Builder
	buf.WriteString("ON CONFLICT (")
	buf.WriteString(c.target)
	buf.WriteString(")")
	if c.where != "" {
		buf.WriteString(" WHERE ")
		buf.WriteString(c.where)
	}
	if len(c.columns) == 0 && len(c.exprs) == 0 {
		buf.WriteString(" DO NOTHING")
		return buf.String()
	}

	buf.WriteString(" DO UPDATE SET ")
	n := 0
	for _, col := range c.columns {
		if n > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(col)
		buf.WriteString(" = EXCLUDED.")
		buf.WriteString(col)
		n++
	}
	for _, expr := range c.exprs {
		if n > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(expr)
		n++
	}
	return buf.String()
}
