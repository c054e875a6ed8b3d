package querier

import (
	"fmt"
	"strconv"
	"strings"
)

// SetClause accumulates the assignments of an UPDATE. Only columns that were
// actually supplied are added, so anything left out keeps its stored value.
type SetClause struct {
	assignments []string
	columns     []string
	args        []any
}

func NewSetClause() *SetClause {
	return &SetClause{}
}

func (s *SetClause) Add(column string, value any) {
	s.args = append(s.args, value)
	s.columns = append(s.columns, column)
	s.assignments = append(s.assignments, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// Raw appends an assignment that takes no parameter, such as "updated_at = now()".
// It does not count as a supplied column.
func (s *SetClause) Raw(assignment string) {
	s.assignments = append(s.assignments, assignment)
}

// Text adds the column unless the value is absent or blank.
func (s *SetClause) Text(column string, value *string) {
	if value == nil {
		return
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return
	}
	s.Add(column, trimmed)
}

func Value[T any](s *SetClause, column string, value *T) {
	if value == nil {
		return
	}
	s.Add(column, *value)
}

// Columns returns the supplied columns in the order they were added.
func (s *SetClause) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *SetClause) Empty() bool {
	return len(s.columns) == 0
}

func (s *SetClause) SQL() string {
	return strings.Join(s.assignments, ", ")
}

// Args returns the parameters followed by extra trailing ones (usually the row id).
func (s *SetClause) Args(extra ...any) []any {
	out := make([]any, 0, len(s.args)+len(extra))
	out = append(out, s.args...)
	return append(out, extra...)
}

// Next is the placeholder index for the first parameter after the assignments.
func (s *SetClause) Next() int {
	return len(s.args) + 1
}

// Placeholder renders Next as "$n", for the WHERE clause that follows the SET list.
func (s *SetClause) Placeholder() string {
	return "$" + strconv.Itoa(s.Next())
}
