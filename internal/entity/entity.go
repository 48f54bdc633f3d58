// Package entity provides the generic per-table store the circulation
// repositories are built on: keyed get/create/update/remove plus filtered,
// paginated reads over a declared column set. Query construction goes through
// goqu so repositories can compose the same criteria expressions into their
// own aggregate queries.
package entity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jmoiron/sqlx"

	"gssb-library-backend/internal/domain"
)

const dialectPostgres = "postgres"

// Column declares one column of a table binding. Contains columns are matched
// by substring, Boolean columns coerce string criteria values to bool.
type Column struct {
	Name     string
	Contains bool
	Boolean  bool
}

// Schema is the declaration of one table binding: its table, its columns and
// the natural key used for get/update/remove.
type Schema struct {
	Name       string
	Table      string
	Columns    []Column
	NaturalKey string
}

func (sc Schema) columnNames() []any {
	cols := make([]any, len(sc.Columns))
	for i, c := range sc.Columns {
		cols[i] = c.Name
	}
	return cols
}

// Criteria maps column names to filter values. Unknown keys are ignored so
// transport-level parameters can be passed through unfiltered.
type Criteria map[string]any

// ReadOptions controls pagination of Read. A zero Limit means no limit.
type ReadOptions struct {
	Limit       int
	Offset      int
	ReturnCount bool
}

type Store struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      sqlx.NewDb(db, dialectPostgres),
		dialect: goqu.Dialect(dialectPostgres),
	}
}

// DB exposes the underlying handle for repositories that need hand-written
// join or aggregate SQL next to the generic operations.
func (s *Store) DB() *sqlx.DB { return s.db }

// Get fetches the record with the given natural key into dest, returning
// domain.NotFoundError if it does not exist.
func (s *Store) Get(ctx context.Context, sc Schema, key any, dest any) error {
	query, args, err := s.dialect.From(sc.Table).
		Select(sc.columnNames()...).
		Where(goqu.C(sc.NaturalKey).Eq(key)).
		Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building get query for %s: %w", sc.Name, err)
	}
	if err := s.db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: sc.Name, Key: key}
		}
		return err
	}
	return nil
}

// Find is Get without the not-found error: it reports whether the record
// exists and only fills dest when it does.
func (s *Store) Find(ctx context.Context, sc Schema, key any, dest any) (bool, error) {
	err := s.Get(ctx, sc, key, dest)
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts the given record.
func (s *Store) Create(ctx context.Context, sc Schema, rec map[string]any) error {
	query, args, err := s.dialect.Insert(sc.Table).
		Rows(goqu.Record(rec)).
		Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building insert for %s: %w", sc.Name, err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Update applies a partial update to the record with the given natural key.
func (s *Store) Update(ctx context.Context, sc Schema, key any, changes map[string]any) error {
	query, args, err := s.dialect.Update(sc.Table).
		Set(goqu.Record(changes)).
		Where(goqu.C(sc.NaturalKey).Eq(key)).
		Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building update for %s: %w", sc.Name, err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &domain.NotFoundError{Entity: sc.Name, Key: key}
	}
	return nil
}

// Remove deletes the record with the given natural key.
func (s *Store) Remove(ctx context.Context, sc Schema, key any) error {
	query, args, err := s.dialect.Delete(sc.Table).
		Where(goqu.C(sc.NaturalKey).Eq(key)).
		Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("building delete for %s: %w", sc.Name, err)
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

// Read selects the records matching the criteria into dest (a pointer to a
// slice), ordered by the natural key. It returns the total matching count
// when opt.ReturnCount is set, -1 otherwise.
func (s *Store) Read(ctx context.Context, sc Schema, q Criteria, opt ReadOptions, dest any) (int, error) {
	exps, err := s.Expressions(sc, q, "")
	if err != nil {
		return 0, err
	}

	count := -1
	if opt.ReturnCount {
		query, args, err := s.dialect.From(sc.Table).
			Select(goqu.COUNT(goqu.Star())).
			Where(exps...).
			Prepared(true).ToSQL()
		if err != nil {
			return 0, fmt.Errorf("building count query for %s: %w", sc.Name, err)
		}
		if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
			return 0, err
		}
	}

	ds := s.dialect.From(sc.Table).
		Select(sc.columnNames()...).
		Where(exps...).
		Order(goqu.C(sc.NaturalKey).Asc())
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit))
	}
	if opt.Offset > 0 {
		ds = ds.Offset(uint(opt.Offset))
	}
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("building read query for %s: %w", sc.Name, err)
	}
	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		return 0, err
	}
	return count, nil
}

// Expressions turns filter criteria into goqu expressions, one per declared
// column present in the criteria, iterated in declared order so generated SQL
// is deterministic. The qualifier prefixes column references for use inside
// join queries.
func (s *Store) Expressions(sc Schema, q Criteria, qualifier string) ([]goqu.Expression, error) {
	exps := make([]goqu.Expression, 0, len(q))
	for _, col := range sc.Columns {
		v, ok := q[col.Name]
		if !ok {
			continue
		}
		ident := goqu.C(col.Name)
		if qualifier != "" {
			ident = goqu.I(qualifier + "." + col.Name)
		}
		switch {
		case col.Contains:
			exps = append(exps, ident.ILike("%"+fmt.Sprint(v)+"%"))
		case col.Boolean:
			b, err := coerceBool(v)
			if err != nil {
				return nil, fmt.Errorf("criteria %s.%s: %w", sc.Name, col.Name, err)
			}
			exps = append(exps, ident.Eq(b))
		default:
			exps = append(exps, ident.Eq(v))
		}
	}
	return exps, nil
}

func coerceBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch b {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
	}
	return false, fmt.Errorf("not a boolean value: %v", v)
}
