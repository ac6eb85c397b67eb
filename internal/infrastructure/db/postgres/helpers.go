package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// deleteByID removes one row by primary key and reports notFound when no row
// matched.
func deleteByID(ctx context.Context, db DBInterface, table string, id int64, notFound error) error {
	query, args, err := squirrel.Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
