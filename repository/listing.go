package repository

import (
	"database/sql"
	"fmt"
	"strings"
)

const PageSize = 10

type ListParams struct {
	Keyword string
	Page    int
}

func (p ListParams) PageNumber() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}

func (p ListParams) offset() int {
	return (p.PageNumber() - 1) * PageSize
}

// listQuery is the keyword/paginate query shared by every resource: a
// case-insensitive substring match OR-ed across the searchable columns,
// a deterministic sort, and COUNT plus LIMIT/OFFSET over the same filter.
type listQuery struct {
	table   string
	columns string
	search  []string
	orderBy string
}

func (q listQuery) whereClause(p ListParams) (string, []any) {
	if p.Keyword == "" {
		return "", nil
	}
	matches := make([]string, len(q.search))
	for i, col := range q.search {
		matches[i] = "LOWER(CAST(" + col + " AS TEXT)) LIKE $1"
	}
	return " WHERE (" + strings.Join(matches, " OR ") + ")", []any{"%" + strings.ToLower(p.Keyword) + "%"}
}

func (q listQuery) count(db *sql.DB, p ListParams) (total int, err error) {
	where, args := q.whereClause(p)
	err = db.QueryRow("SELECT COUNT(*) FROM "+q.table+where, args...).Scan(&total)
	return
}

func (q listQuery) rows(db *sql.DB, p ListParams) (*sql.Rows, error) {
	where, args := q.whereClause(p)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT %d OFFSET %d",
		q.columns, q.table, where, q.orderBy, PageSize, p.offset())
	return db.Query(query, args...)
}
