package sqlite

import (
	"database/sql"
	"strings"

	"github.com/clinsuite/endotrace/internal/endotrace/store"
)

// requireRow maps a zero-row UPDATE/DELETE result to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// placeholders returns "?, ?, ..." with n entries for IN clauses.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// orderBy builds a deterministic ORDER BY clause: the requested column (when
// whitelisted) with an id tie-break, or plain insertion order. The whitelist
// keeps user-supplied sort keys out of the SQL text.
func orderBy(sortBy string, desc bool, whitelist map[string]bool) (string, error) {
	if sortBy == "" {
		return " ORDER BY id", nil
	}
	if !whitelist[sortBy] {
		return "", store.ErrInvalidSortKey
	}

	direction := " ASC"
	if desc {
		direction = " DESC"
	}
	return " ORDER BY " + sortBy + direction + ", id" + direction, nil
}

// inClause appends "col IN (?, ...)" and its arguments when values is
// non-empty. Multiple values within one field are OR'd by the IN.
func inClause[T ~string](conds *[]string, args *[]any, col string, values []T) {
	if len(values) == 0 {
		return
	}
	*conds = append(*conds, col+" IN ("+placeholders(len(values))+")")
	for _, v := range values {
		*args = append(*args, string(v))
	}
}

// whereClause joins conditions with AND, or returns "" when unfiltered.
func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
